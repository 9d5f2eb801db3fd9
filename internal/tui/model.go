package tui

import (
	"context"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/paginator"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/simpletodo/internal/core/logging"
	"github.com/colonyops/simpletodo/internal/core/styles"
	"github.com/colonyops/simpletodo/internal/core/task"
	"github.com/colonyops/simpletodo/internal/tui/components"
)

// UIState represents the current state of the TUI.
type UIState int

const (
	stateNormal UIState = iota
	stateShowingHelp
)

// focusArea is the part of the screen that receives navigation keys.
type focusArea int

const (
	focusInput focusArea = iota
	focusCalendar
	focusList
)

const (
	inputWidth = 36
	helpWidth  = 48

	// Narrowest input that still shows a useful prompt.
	minInputWidth = 10
	// Border and padding around the input panel.
	panelChrome = 8
)

// Deps contains the runtime dependencies of the TUI.
type Deps struct {
	List *task.List
}

// Opts contains presentation options.
type Opts struct {
	// Context carries logging fields (profile) into every log event.
	Context context.Context

	CalendarOn   bool
	FirstWeekday time.Weekday

	// Now defaults to time.Now. It seeds the calendar and stamps toasts.
	Now func() time.Time
}

// Model is the main Bubble Tea model. It owns no task state of its own; every
// frame is rendered from the List.
type Model struct {
	ctx  context.Context
	list *task.List
	now  func() time.Time
	log  zerolog.Logger

	keys       KeyMap
	input      *components.TextField
	calendar   *components.Calendar
	paginator  paginator.Model
	help       help.Model
	helpDialog *components.HelpDialog

	toastController *ToastController
	toastView       *ToastView

	state       UIState
	focus       focusArea
	calendarOn  bool
	cursor      int // index into List.Visible()
	pendingGoto bool
	quitting    bool

	width  int
	height int
}

// New creates a new TUI model.
func New(deps Deps, opts Opts) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	keys := DefaultKeyMap()

	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.ActiveDot = styles.TextPrimaryStyle.Render(iconDot)
	pager.InactiveDot = styles.TextMutedStyle.Render(iconDot)

	toasts := NewToastController()

	m := Model{
		ctx:             ctx,
		list:            deps.List,
		now:             now,
		log:             logging.Component("tui"),
		keys:            keys,
		input:           components.NewTextField("New task", "what needs doing?", inputWidth),
		calendar:        components.NewCalendar(now(), opts.FirstWeekday),
		paginator:       pager,
		help:            help.New(),
		helpDialog:      components.NewHelpDialog("Keyboard shortcuts", keys.HelpSections(), helpWidth),
		toastController: toasts,
		toastView:       NewToastView(toasts),
		calendarOn:      opts.CalendarOn && deps.List.Profile().DueDates,
	}
	m.input.Focus()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.input.Focus()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.SetWidth(msg.Width)
		m.input.SetWidth(fieldWidth(msg.Width))
		return m, nil
	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and paste messages belong to the input.
	return m, m.input.Update(msg)
}

// fieldWidth shrinks the input on narrow terminals.
func fieldWidth(termWidth int) int {
	return max(minInputWidth, min(inputWidth, termWidth-panelChrome))
}

// TaskCount returns the number of tasks in the list.
func (m Model) TaskCount() int {
	return m.list.Len()
}

// selected returns the task under the cursor.
func (m Model) selected() (*task.Task, bool) {
	visible := m.list.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return nil, false
	}
	return visible[m.cursor], true
}

func (m *Model) setFocus(f focusArea) tea.Cmd {
	m.focus = f
	m.input.Blur()
	m.calendar.Blur()

	switch f {
	case focusInput:
		return m.input.Focus()
	case focusCalendar:
		m.calendar.Focus()
	case focusList:
		m.clampCursor()
	}
	return nil
}

// focusOrder lists the areas tab cycles through. Hidden or empty areas are
// skipped.
func (m Model) focusOrder() []focusArea {
	order := []focusArea{focusInput}
	if m.calendarOn {
		order = append(order, focusCalendar)
	}
	if m.list.Len() > 0 {
		order = append(order, focusList)
	}
	return order
}

func (m *Model) clampCursor() {
	n := len(m.list.Visible())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = min(max(m.cursor, 0), n-1)
}

// follow moves the page and cursor to the task with id, which may have been
// re-sorted onto another page.
func (m *Model) follow(id string) {
	if p, ok := m.list.PageOf(id); ok {
		_, _ = m.list.GotoPage(p)
	}
	for i, t := range m.list.Visible() {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
	m.clampCursor()
}
