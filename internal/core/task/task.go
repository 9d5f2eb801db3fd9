// Package task defines the to-do item model and the list controller that owns,
// orders and pages a collection of items.
package task

import "time"

// Task represents a single to-do item.
//
// The completion flag and its timestamp are only changed together through
// SetCompleted, so CompletedAt is present exactly when the task is complete.
type Task struct {
	ID        string
	Name      string
	CreatedAt time.Time
	DueAt     *time.Time // nil means no due date

	completed   bool
	completedAt time.Time
}

// Completed reports whether the task has been marked done.
func (t *Task) Completed() bool {
	return t.completed
}

// CompletedAt returns the time of the most recent transition to completed.
// The second return value is false while the task is incomplete.
func (t *Task) CompletedAt() (time.Time, bool) {
	if !t.completed {
		return time.Time{}, false
	}
	return t.completedAt, true
}

// SetCompleted sets the completion flag. Marking a task complete always
// stamps now, even if it was already complete; marking it incomplete clears
// the stamp.
func (t *Task) SetCompleted(value bool, now time.Time) {
	t.completed = value
	if value {
		t.completedAt = now
		return
	}
	t.completedAt = time.Time{}
}

// HasDue reports whether a due date is set.
func (t *Task) HasDue() bool {
	return t.DueAt != nil
}

// SortKey is the due date when set, otherwise the creation time.
func (t *Task) SortKey() time.Time {
	if t.DueAt != nil {
		return *t.DueAt
	}
	return t.CreatedAt
}
