// Package notify defines the user-facing notification types shown as toasts.
package notify

import "time"

// Level represents the severity of a notification.
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notification represents a single notification event.
type Notification struct {
	Level     Level
	Message   string
	CreatedAt time.Time
}

// FromError builds an error notification carrying err's full message.
func FromError(err error, now time.Time) Notification {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Notification{Level: LevelError, Message: msg, CreatedAt: now}
}

// Warn builds a warning notification.
func Warn(msg string, now time.Time) Notification {
	return Notification{Level: LevelWarning, Message: msg, CreatedAt: now}
}
