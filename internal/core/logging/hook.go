package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// ContextHook extracts profile and task_id from the event context.
type ContextHook struct{}

// Run adds contextual fields to the zerolog event.
func (h ContextHook) Run(e *zerolog.Event, level zerolog.Level, msg string) {
	ctx := e.GetCtx()
	if ctx == context.Background() || ctx == nil {
		return
	}

	if profile := GetProfile(ctx); profile != "" {
		e.Str("profile", profile)
	}

	if taskID := GetTaskID(ctx); taskID != "" {
		e.Str("task_id", taskID)
	}
}
