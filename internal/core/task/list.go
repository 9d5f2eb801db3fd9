package task

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/simpletodo/internal/core/validate"
)

// List owns an in-memory collection of tasks and applies the ordering and
// pagination rules of its Profile. It is not safe for concurrent use.
type List struct {
	profile Profile
	tasks   []*Task // insertion order
	page    int

	now   func() time.Time
	newID func() string
	log   zerolog.Logger
}

// Option configures a List.
type Option func(*List)

// WithClock overrides the time source used for creation and completion stamps.
func WithClock(now func() time.Time) Option {
	return func(l *List) { l.now = now }
}

// WithIDGenerator overrides how task IDs are generated.
func WithIDGenerator(fn func() string) Option {
	return func(l *List) { l.newID = fn }
}

// WithLogger sets the logger used for mutation tracing.
func WithLogger(log zerolog.Logger) Option {
	return func(l *List) { l.log = log }
}

// NewList creates an empty list governed by profile.
func NewList(profile Profile, opts ...Option) *List {
	l := &List{
		profile: profile,
		now:     time.Now,
		newID:   uuid.NewString,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Profile returns the list's profile.
func (l *List) Profile() Profile {
	return l.profile
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.tasks)
}

// Tasks returns the tasks in insertion order.
func (l *List) Tasks() []*Task {
	return slices.Clone(l.tasks)
}

// Get returns the task with the given ID.
func (l *List) Get(id string) (*Task, bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return nil, false
	}
	return l.tasks[idx], true
}

// Add appends a task without a due date.
func (l *List) Add(name string) (*Task, error) {
	return l.AddWithDue(name, nil)
}

// AddWithDueString parses due with DueDateLayout and appends a task. An empty
// due string means no due date. Nothing is added when parsing fails.
func (l *List) AddWithDueString(name, due string) (*Task, error) {
	if strings.TrimSpace(due) == "" {
		return l.AddWithDue(name, nil)
	}

	if err := validate.TaskNameField("name", name); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptyName, err)
	}

	t, err := ParseDueDate(due)
	if err != nil {
		return nil, err
	}
	return l.AddWithDue(name, &t)
}

// AddWithDue appends a task. The due date is dropped when the profile does
// not support due dates.
func (l *List) AddWithDue(name string, due *time.Time) (*Task, error) {
	if err := validate.TaskNameField("name", name); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEmptyName, err)
	}

	t := &Task{
		ID:        l.newID(),
		Name:      strings.TrimSpace(name),
		CreatedAt: l.now(),
	}
	if due != nil && l.profile.DueDates {
		d := *due
		t.DueAt = &d
	}

	l.tasks = append(l.tasks, t)
	l.clampPage()

	l.log.Debug().
		Str("id", t.ID).
		Bool("due", t.HasDue()).
		Int("len", len(l.tasks)).
		Msg("task added")

	return t, nil
}

// Remove deletes the task with the given ID.
func (l *List) Remove(id string) error {
	idx := l.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("remove %s: %w", id, ErrNotFound)
	}

	l.tasks = slices.Delete(l.tasks, idx, idx+1)
	l.clampPage()

	l.log.Debug().Str("id", id).Int("len", len(l.tasks)).Msg("task removed")
	return nil
}

// SetCompleted marks the task complete or incomplete.
func (l *List) SetCompleted(id string, value bool) error {
	t, ok := l.Get(id)
	if !ok {
		return fmt.Errorf("set completed %s: %w", id, ErrNotFound)
	}

	t.SetCompleted(value, l.now())
	l.clampPage()

	l.log.Debug().Str("id", id).Bool("completed", value).Msg("task completion changed")
	return nil
}

// Toggle flips the task's completion flag.
func (l *List) Toggle(id string) error {
	t, ok := l.Get(id)
	if !ok {
		return fmt.Errorf("toggle %s: %w", id, ErrNotFound)
	}
	return l.SetCompleted(id, !t.Completed())
}

// OrderedView returns every task in display order. The underlying insertion
// order is left untouched.
func (l *List) OrderedView() []*Task {
	if l.profile.Ordering == OrderInsertion {
		return slices.Clone(l.tasks)
	}
	return canonicalOrder(l.tasks)
}

// Visible returns the tasks on the current page in display order.
func (l *List) Visible() []*Task {
	ordered := l.OrderedView()
	start, end := pageBounds(len(ordered), l.profile.PageSize, l.page)
	return ordered[start:end]
}

// Page returns the current pagination position.
func (l *List) Page() PageState {
	return PageState{Current: l.page, Last: l.lastPage()}
}

// NextPage advances one page. On the last page it does nothing and returns
// ErrPageOutOfRange.
func (l *List) NextPage() (PageState, error) {
	return l.GotoPage(l.page + 1)
}

// PreviousPage goes back one page. On the first page it does nothing and
// returns ErrPageOutOfRange.
func (l *List) PreviousPage() (PageState, error) {
	return l.GotoPage(l.page - 1)
}

// GotoPage moves to page p. Targets outside [0, last] are rejected rather
// than clamped.
func (l *List) GotoPage(p int) (PageState, error) {
	last := l.lastPage()
	if p < 0 || p > last {
		return l.Page(), fmt.Errorf("goto page %d of [0, %d]: %w", p, last, ErrPageOutOfRange)
	}
	l.page = p
	return l.Page(), nil
}

// PageOf returns the page that holds the task with the given ID.
func (l *List) PageOf(id string) (int, bool) {
	for i, t := range l.OrderedView() {
		if t.ID == id {
			if l.profile.PageSize <= 0 {
				return 0, true
			}
			return i / l.profile.PageSize, true
		}
	}
	return 0, false
}

func (l *List) lastPage() int {
	return LastPage(len(l.tasks), l.profile.PageSize)
}

func (l *List) clampPage() {
	l.page = min(max(l.page, 0), l.lastPage())
}

func (l *List) indexOf(id string) int {
	return slices.IndexFunc(l.tasks, func(t *Task) bool { return t.ID == id })
}
