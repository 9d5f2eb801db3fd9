package task

import "errors"

var (
	// ErrEmptyName is returned when a task name is empty after trimming.
	ErrEmptyName = errors.New("task name is empty")
	// ErrInvalidDueDate is returned when a due date string does not match DueDateLayout.
	ErrInvalidDueDate = errors.New("invalid due date")
	// ErrNotFound is returned when a task is not in the list.
	ErrNotFound = errors.New("task not found")
	// ErrPageOutOfRange is returned when page navigation would leave [0, last page].
	ErrPageOutOfRange = errors.New("page out of range")
)
