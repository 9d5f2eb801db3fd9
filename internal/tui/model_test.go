package tui

import (
	"fmt"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/simpletodo/internal/core/notify"
	"github.com/colonyops/simpletodo/internal/core/task"
	"github.com/colonyops/simpletodo/pkg/tuitest"
)

var testNow = time.Date(2024, 4, 12, 9, 0, 0, 0, time.UTC)

func newTestModel(t *testing.T, profile string, opts Opts) Model {
	t.Helper()

	p, ok := task.LookupProfile(profile)
	require.True(t, ok, profile)

	tick := testNow
	seq := 0
	list := task.NewList(p,
		task.WithClock(func() time.Time {
			tick = tick.Add(time.Minute)
			return tick
		}),
		task.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("t%d", seq)
		}),
	)

	opts.Now = func() time.Time { return testNow }
	return New(Deps{List: list}, opts)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func addTask(t *testing.T, m Model, name string) Model {
	t.Helper()
	m = send(t, m, tuitest.Type(name)...)
	return send(t, m, tuitest.KeyEnter())
}

func viewText(m Model) string {
	return tuitest.StripANSI(m.View().Content)
}

func visibleNames(m Model) []string {
	var names []string
	for _, tk := range m.list.Visible() {
		names = append(names, tk.Name)
	}
	return names
}

func TestModel_SubmitAddsTask(t *testing.T) {
	m := newTestModel(t, "paged", Opts{})

	m = addTask(t, m, "buy milk")

	require.Equal(t, 1, m.TaskCount())
	assert.Equal(t, []string{"buy milk"}, visibleNames(m))
	assert.Empty(t, m.input.Value(), "input clears after a successful add")
	assert.Contains(t, viewText(m), "[ ] buy milk")
}

func TestModel_SubmitEmptyNameIsSilent(t *testing.T) {
	m := newTestModel(t, "paged", Opts{})

	m = addTask(t, m, "   ")

	assert.Equal(t, 0, m.TaskCount())
	assert.False(t, m.toastController.HasToasts())
	assert.Contains(t, viewText(m), "No tasks yet")
}

func TestModel_SubmitWithCalendarDue(t *testing.T) {
	m := newTestModel(t, "paged", Opts{CalendarOn: true})

	// Pick the 14th: tab to the calendar, move two days right.
	m = send(t, m, tuitest.KeyTab(), tuitest.KeyPress('l'), tuitest.KeyPress('l'))
	require.Equal(t, focusCalendar, m.focus)
	m = send(t, m, tuitest.KeyTab()) // back to the input; list is empty so it is skipped
	require.Equal(t, focusInput, m.focus)

	m = addTask(t, m, "file taxes")

	tasks := m.list.Visible()
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].DueAt)
	assert.Equal(t, "04/14/2024", task.DisplayDueDate(*tasks[0].DueAt))
	assert.Contains(t, viewText(m), "Due: 04/14/2024")
}

func TestModel_SubmitRejectsDueOutsideYearWindow(t *testing.T) {
	m := newTestModel(t, "paged", Opts{CalendarOn: true})
	m.calendar.Select(time.Date(2070, 3, 1, 0, 0, 0, 0, time.Local))

	m = addTask(t, m, "far future")

	assert.Equal(t, 0, m.TaskCount(), "a date that cannot round trip adds nothing")
	assert.Equal(t, "far future", m.input.Value(), "input keeps its text")
	require.True(t, m.toastController.HasToasts())
	assert.Equal(t, notify.LevelError, m.toastController.Toasts()[0].notification.Level)
	assert.Contains(t, m.toastController.Toasts()[0].notification.Message, "between 1969 and 2068")
}

func TestModel_ToggleCalendar(t *testing.T) {
	t.Run("dated profile", func(t *testing.T) {
		m := newTestModel(t, "dated", Opts{})
		assert.NotContains(t, viewText(m), "April 2024")

		m = send(t, m, tuitest.Ctrl('t'))
		assert.True(t, m.calendarOn)
		assert.Contains(t, viewText(m), "April 2024")

		m = send(t, m, tuitest.KeyTab())
		require.Equal(t, focusCalendar, m.focus)

		m = send(t, m, tuitest.Ctrl('t'))
		assert.False(t, m.calendarOn)
		assert.Equal(t, focusInput, m.focus, "focus leaves a hidden calendar")
	})

	t.Run("basic profile warns", func(t *testing.T) {
		m := newTestModel(t, "basic", Opts{CalendarOn: true})
		assert.False(t, m.calendarOn, "config cannot force the calendar on")

		m = send(t, m, tuitest.Ctrl('t'))
		assert.False(t, m.calendarOn)
		require.True(t, m.toastController.HasToasts())
		assert.Equal(t, "due dates are disabled in the basic profile", m.toastController.Toasts()[0].notification.Message)
		assert.Contains(t, viewText(m), "due dates are")
	})
}

func TestModel_EscDismissesToastsThenQuits(t *testing.T) {
	m := newTestModel(t, "basic", Opts{})
	m = send(t, m, tuitest.Ctrl('t'))
	require.True(t, m.toastController.HasToasts())

	next, cmd := m.Update(tuitest.KeyEsc())
	m = next.(Model)
	assert.Nil(t, cmd)
	assert.False(t, m.toastController.HasToasts())

	_, cmd = m.Update(tuitest.KeyEsc())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := newTestModel(t, "paged", Opts{})

	next, cmd := m.Update(tuitest.Ctrl('c'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, next.(Model).View().Content)
}

func TestModel_ToggleKeepsCursorOnTask(t *testing.T) {
	m := newTestModel(t, "paged", Opts{})
	for _, name := range []string{"a", "b", "c"} {
		m = addTask(t, m, name)
	}

	m = send(t, m, tuitest.KeyTab())
	require.Equal(t, focusList, m.focus)
	require.Equal(t, 0, m.cursor)

	m = send(t, m, tuitest.KeySpace())

	assert.Equal(t, []string{"b", "c", "a"}, visibleNames(m), "completed task sorts last")
	sel, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "a", sel.Name)
	assert.True(t, sel.Completed())

	out := viewText(m)
	assert.Contains(t, out, "[x] "+strikethrough("a"))

	// Toggle back with x.
	m = send(t, m, tuitest.KeyPress('x'))
	assert.Equal(t, []string{"a", "b", "c"}, visibleNames(m))
	sel, _ = m.selected()
	assert.Equal(t, "a", sel.Name)
}

func TestModel_ToggleFollowsTaskAcrossPages(t *testing.T) {
	m := newTestModel(t, "paged", Opts{})
	for i := range 6 {
		m = addTask(t, m, fmt.Sprintf("task %d", i))
	}

	m = send(t, m, tuitest.KeyTab(), tuitest.KeyPress('x'))

	assert.Equal(t, 1, m.list.Page().Current, "completed task moved to the second page")
	sel, ok := m.selected()
	require.True(t, ok)
	assert.Equal(t, "task 0", sel.Name)
}

func TestModel_DeleteClampsCursor(t *testing.T) {
	m := newTestModel(t, "paged", Opts{})
	m = addTask(t, m, "a")
	m = addTask(t, m, "b")

	m = send(t, m, tuitest.KeyTab(), tuitest.KeyDown())
	require.Equal(t, 1, m.cursor)

	m = send(t, m, tuitest.KeyPress('d'))
	assert.Equal(t, []string{"a"}, visibleNames(m))
	assert.Equal(t, 0, m.cursor)

	m = send(t, m, tuitest.KeyPress('d'))
	assert.Equal(t, 0, m.TaskCount())
	assert.Equal(t, focusInput, m.focus, "empty list hands focus back to the input")
}

func TestModel_CursorBounds(t *testing.T) {
	m := newTestModel(t, "paged", Opts{})
	m = addTask(t, m, "a")
	m = addTask(t, m, "b")
	m = send(t, m, tuitest.KeyTab())

	m = send(t, m, tuitest.KeyUp())
	assert.Equal(t, 0, m.cursor)

	m = send(t, m, tuitest.KeyPress('j'), tuitest.KeyPress('j'), tuitest.KeyPress('j'))
	assert.Equal(t, 1, m.cursor)

	m = send(t, m, tuitest.KeyPress('k'))
	assert.Equal(t, 0, m.cursor)
}

func TestModel_Paging(t *testing.T) {
	m := newTestModel(t, "paged", Opts{})
	for i := range 12 {
		m = addTask(t, m, fmt.Sprintf("task %02d", i))
	}

	assert.Contains(t, viewText(m), "page 1/3")
	assert.Len(t, m.list.Visible(), 5)

	m = send(t, m, tuitest.KeyTab(), tuitest.KeyDown(), tuitest.KeyPress('l'))
	assert.Equal(t, 1, m.list.Page().Current)
	assert.Equal(t, 0, m.cursor, "cursor resets on page change")
	assert.Contains(t, viewText(m), "page 2/3")

	m = send(t, m, tuitest.KeyPress('g'), tuitest.KeyPress('3'))
	assert.Equal(t, 2, m.list.Page().Current)
	assert.Equal(t, []string{"task 10", "task 11"}, visibleNames(m))

	// Past the end is ignored.
	m = send(t, m, tuitest.KeyPress('l'))
	assert.Equal(t, 2, m.list.Page().Current)

	// Out of range goto is ignored and the prefix is consumed.
	m = send(t, m, tuitest.KeyPress('g'), tuitest.KeyPress('9'))
	assert.Equal(t, 2, m.list.Page().Current)
	assert.False(t, m.pendingGoto)

	m = send(t, m, tuitest.KeyPress('h'), tuitest.KeyPress('h'), tuitest.KeyPress('h'))
	assert.Equal(t, 0, m.list.Page().Current)
}

func TestModel_UnpagedShowsCount(t *testing.T) {
	m := newTestModel(t, "basic", Opts{})
	m = addTask(t, m, "a")

	out := viewText(m)
	assert.Contains(t, out, "1 task")
	assert.NotContains(t, out, "page 1/1")
}

func TestModel_HelpOverlay(t *testing.T) {
	m := newTestModel(t, "paged", Opts{})
	m = addTask(t, m, "a")

	// ? types into the input while it has focus.
	m = send(t, m, tuitest.KeyPress('?'))
	assert.Equal(t, stateNormal, m.state)
	assert.Equal(t, "?", m.input.Value())

	m = send(t, m, tuitest.KeyTab(), tuitest.KeyPress('?'))
	require.Equal(t, stateShowingHelp, m.state)
	assert.Contains(t, viewText(m), "Keyboard shortcuts")

	// Keys other than close are swallowed while help is open.
	m = send(t, m, tuitest.KeyPress('d'))
	assert.Equal(t, 1, m.TaskCount())

	m = send(t, m, tuitest.KeyEsc())
	assert.Equal(t, stateNormal, m.state)
}

func TestModel_WindowSize(t *testing.T) {
	m := newTestModel(t, "paged", Opts{})
	m = send(t, m, tuitest.WindowSize(120, 40))

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.True(t, m.View().AltScreen)
}

func TestFieldWidth(t *testing.T) {
	assert.Equal(t, inputWidth, fieldWidth(120))
	assert.Equal(t, 22, fieldWidth(30))
	assert.Equal(t, minInputWidth, fieldWidth(12))
}

func TestRenderTask(t *testing.T) {
	today := time.Date(2024, 4, 12, 0, 0, 0, 0, time.UTC)
	due := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)

	open := &task.Task{Name: "pay rent", DueAt: &due}
	assert.Equal(t, "  [ ] pay rent  Due: 04/10/2024", tuitest.StripANSI(renderTask(open, false, today)))

	done := &task.Task{Name: "pay rent"}
	done.SetCompleted(true, today)
	assert.Equal(t, "› [x] "+strikethrough("pay rent"), tuitest.StripANSI(renderTask(done, true, today)))
}

func TestStrikethrough(t *testing.T) {
	assert.Equal(t, "a\u0336b\u0336", strikethrough("ab"))
	assert.Empty(t, strikethrough(""))
}
