package tui

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/simpletodo/internal/core/notify"
)

func TestToastController_Push(t *testing.T) {
	c := NewToastController()

	c.Push(notify.Notification{Level: notify.LevelError, Message: "invalid due date"})

	assert.True(t, c.HasToasts())
	assert.Len(t, c.Toasts(), 1)
	assert.Equal(t, "invalid due date", c.Toasts()[0].notification.Message)
}

func TestToastController_Push_evicts_oldest_at_max(t *testing.T) {
	c := NewToastController()

	for i := range defaultMaxToasts + 2 {
		c.Push(notify.Notification{
			Level:   notify.LevelError,
			Message: fmt.Sprintf("err %d", i),
		})
	}

	assert.Len(t, c.Toasts(), defaultMaxToasts)
	// Oldest two should have been evicted.
	assert.Equal(t, "err 2", c.Toasts()[0].notification.Message)
}

func TestToastController_DismissAll(t *testing.T) {
	c := NewToastController()
	c.Push(notify.Notification{Level: notify.LevelWarning, Message: "a"})
	c.Push(notify.Notification{Level: notify.LevelError, Message: "b"})

	c.DismissAll()

	assert.False(t, c.HasToasts())
	assert.Empty(t, c.Toasts())

	c.DismissAll() // empty stack is fine
	assert.False(t, c.HasToasts())
}
