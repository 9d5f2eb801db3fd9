package tui

import (
	"github.com/colonyops/simpletodo/internal/core/notify"
)

const (
	defaultMaxToasts = 3
	toastWidth       = 44
)

type toast struct {
	notification notify.Notification
}

// ToastController manages the stack of active toast notifications. Toasts
// have no timeout; they stay until dismissed or until the next successful
// list mutation clears them.
type ToastController struct {
	toasts []toast
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Push adds a notification to the toast stack. If the stack exceeds
// defaultMaxToasts, the oldest toast is evicted.
func (c *ToastController) Push(n notify.Notification) {
	c.toasts = append(c.toasts, toast{notification: n})
	if len(c.toasts) > defaultMaxToasts {
		c.toasts = c.toasts[len(c.toasts)-defaultMaxToasts:]
	}
}

// DismissAll removes all active toasts.
func (c *ToastController) DismissAll() {
	c.toasts = c.toasts[:0]
}

// HasToasts returns true if there are any active toasts.
func (c *ToastController) HasToasts() bool {
	return len(c.toasts) > 0
}

// Toasts returns the current active toast slice.
func (c *ToastController) Toasts() []toast {
	return c.toasts
}
