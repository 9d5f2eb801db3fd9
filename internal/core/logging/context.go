package logging

import "context"

type contextKey string

const (
	profileKey contextKey = "profile"
	taskIDKey  contextKey = "task_id"
)

// WithProfile adds the active list profile name to the context.
func WithProfile(ctx context.Context, profile string) context.Context {
	return context.WithValue(ctx, profileKey, profile)
}

// WithTaskID adds a task ID to the context.
func WithTaskID(ctx context.Context, taskID string) context.Context {
	return context.WithValue(ctx, taskIDKey, taskID)
}

// GetProfile retrieves the profile name from the context.
// Returns empty string if not present.
func GetProfile(ctx context.Context) string {
	if p, ok := ctx.Value(profileKey).(string); ok {
		return p
	}
	return ""
}

// GetTaskID retrieves the task ID from the context.
// Returns empty string if not present.
func GetTaskID(ctx context.Context) string {
	if id, ok := ctx.Value(taskIDKey).(string); ok {
		return id
	}
	return ""
}
