package task

import (
	"fmt"
	"strings"
	"time"
)

const (
	// DueDateLayout is the month/day/2-digit-year format due dates are submitted in.
	DueDateLayout = "01/02/06"
	// DueDisplayLayout is used when rendering a due date.
	DueDisplayLayout = "01/02/2006"

	// Two-digit years parse into this window, so only these years survive
	// a FormatDueDate/ParseDueDate round trip.
	MinDueYear = 1969
	MaxDueYear = 2068
)

// ParseDueDate parses s using DueDateLayout in the local time zone.
func ParseDueDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(DueDateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: expected mm/dd/yy", ErrInvalidDueDate, s)
	}
	return t, nil
}

// FormatDueDate renders t in the submission layout accepted by ParseDueDate.
// Dates outside MinDueYear..MaxDueYear cannot be represented and return
// ErrInvalidDueDate.
func FormatDueDate(t time.Time) (string, error) {
	if y := t.Year(); y < MinDueYear || y > MaxDueYear {
		return "", fmt.Errorf("%w %s: year must be between %d and %d",
			ErrInvalidDueDate, DisplayDueDate(t), MinDueYear, MaxDueYear)
	}
	return t.Format(DueDateLayout), nil
}

// DisplayDueDate renders t for humans.
func DisplayDueDate(t time.Time) string {
	return t.Format(DueDisplayLayout)
}
