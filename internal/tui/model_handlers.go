package tui

import (
	"errors"
	"fmt"
	"slices"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/colonyops/simpletodo/internal/core/logging"
	"github.com/colonyops/simpletodo/internal/core/notify"
	"github.com/colonyops/simpletodo/internal/core/task"
)

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state == stateShowingHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Dismiss) {
			m.state = stateNormal
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Dismiss) {
		if m.toastController.HasToasts() {
			m.toastController.DismissAll()
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	if m.pendingGoto {
		m.pendingGoto = false
		m.gotoPage(msg)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.SwitchFocus):
		cmd := m.cycleFocus()
		return m, cmd
	case key.Matches(msg, m.keys.ToggleCalendar):
		cmd := m.toggleCalendar()
		return m, cmd
	case key.Matches(msg, m.keys.Submit) && m.focus != focusList:
		m.submit()
		return m, nil
	}

	switch m.focus {
	case focusCalendar:
		if key.Matches(msg, m.keys.Help) {
			m.state = stateShowingHelp
			return m, nil
		}
		m.calendar.HandleKey(msg)
		return m, nil
	case focusList:
		return m.handleListKey(msg)
	default:
		return m, m.input.Update(msg)
	}
}

func (m Model) handleListKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.state = stateShowingHelp
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.list.Visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.ToggleDone):
		m.toggleSelected()
	case key.Matches(msg, m.keys.Delete):
		cmd := m.removeSelected()
		return m, cmd
	case key.Matches(msg, m.keys.PrevPage):
		m.changePage(m.list.PreviousPage)
	case key.Matches(msg, m.keys.NextPage):
		m.changePage(m.list.NextPage)
	case key.Matches(msg, m.keys.GotoPage):
		m.pendingGoto = true
	}
	return m, nil
}

func (m *Model) cycleFocus() tea.Cmd {
	order := m.focusOrder()
	idx := slices.Index(order, m.focus)
	return m.setFocus(order[(idx+1)%len(order)])
}

func (m *Model) toggleCalendar() tea.Cmd {
	profile := m.list.Profile()
	if !profile.DueDates {
		m.toastController.Push(notify.Warn(
			fmt.Sprintf("due dates are disabled in the %s profile", profile.Name),
			m.now(),
		))
		return nil
	}

	m.calendarOn = !m.calendarOn
	m.log.Debug().Ctx(m.ctx).Bool("calendar_on", m.calendarOn).Msg("calendar toggled")

	if !m.calendarOn && m.focus == focusCalendar {
		return m.setFocus(focusInput)
	}
	return nil
}

// submit adds a task from the input. An empty name is ignored without
// feedback; other rejections become error toasts and keep the input text.
func (m *Model) submit() {
	due := ""
	if m.calendarOn {
		var err error
		due, err = task.FormatDueDate(m.calendar.Selected())
		if err != nil {
			m.log.Info().Ctx(m.ctx).Err(err).Msg("due date out of range")
			m.toastController.Push(notify.FromError(err, m.now()))
			return
		}
	}

	t, err := m.list.AddWithDueString(m.input.Value(), due)
	switch {
	case errors.Is(err, task.ErrEmptyName):
		m.log.Info().Ctx(m.ctx).Msg("ignored empty task name")
		return
	case err != nil:
		m.log.Info().Ctx(m.ctx).Err(err).Str("due", due).Msg("task rejected")
		m.toastController.Push(notify.FromError(err, m.now()))
		return
	}

	m.input.Reset()
	m.toastController.DismissAll()
	m.clampCursor()

	m.log.Debug().
		Ctx(logging.WithTaskID(m.ctx, t.ID)).
		Str("due", due).
		Msg("task added")
}

func (m *Model) toggleSelected() {
	t, ok := m.selected()
	if !ok {
		return
	}

	if err := m.list.Toggle(t.ID); err != nil {
		m.log.Debug().Ctx(logging.WithTaskID(m.ctx, t.ID)).Err(err).Msg("toggle ignored")
		return
	}

	m.toastController.DismissAll()
	m.follow(t.ID)

	m.log.Debug().
		Ctx(logging.WithTaskID(m.ctx, t.ID)).
		Bool("completed", t.Completed()).
		Msg("task toggled")
}

func (m *Model) removeSelected() tea.Cmd {
	t, ok := m.selected()
	if !ok {
		return nil
	}

	if err := m.list.Remove(t.ID); err != nil {
		m.log.Debug().Ctx(logging.WithTaskID(m.ctx, t.ID)).Err(err).Msg("remove ignored")
		return nil
	}

	m.toastController.DismissAll()
	m.clampCursor()

	m.log.Debug().Ctx(logging.WithTaskID(m.ctx, t.ID)).Msg("task removed")

	if m.list.Len() == 0 {
		return m.setFocus(focusInput)
	}
	return nil
}

// changePage runs a page move; moves past either end are ignored.
func (m *Model) changePage(move func() (task.PageState, error)) {
	state, err := move()
	if err != nil {
		m.log.Debug().Ctx(m.ctx).Err(err).Msg("page move ignored")
		return
	}
	m.cursor = 0
	m.log.Debug().Ctx(m.ctx).Int("page", state.Current).Msg("page changed")
}

// gotoPage handles the key after the goto prefix. Digits are 1-based page
// numbers; anything else cancels.
func (m *Model) gotoPage(msg tea.KeyPressMsg) {
	s := msg.String()
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return
	}
	target := int(s[0] - '1')
	m.changePage(func() (task.PageState, error) { return m.list.GotoPage(target) })
}
