package logging

import (
	"context"
	"testing"
)

func TestWithProfile(t *testing.T) {
	ctx := WithProfile(context.Background(), "paged")

	if got := GetProfile(ctx); got != "paged" {
		t.Errorf("GetProfile() = %q, want %q", got, "paged")
	}
}

func TestWithTaskID(t *testing.T) {
	ctx := WithTaskID(context.Background(), "task-1")

	if got := GetTaskID(ctx); got != "task-1" {
		t.Errorf("GetTaskID() = %q, want %q", got, "task-1")
	}
}

func TestGetters_Missing(t *testing.T) {
	ctx := context.Background()

	if got := GetProfile(ctx); got != "" {
		t.Errorf("GetProfile() = %q, want empty", got)
	}
	if got := GetTaskID(ctx); got != "" {
		t.Errorf("GetTaskID() = %q, want empty", got)
	}
}
