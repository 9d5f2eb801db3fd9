package tui

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/simpletodo/internal/core/styles"
	"github.com/colonyops/simpletodo/internal/core/task"
)

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	mainView := m.renderMain()

	// Ensure we have dimensions for overlays
	w, h := m.width, m.height
	if w == 0 {
		w = 80
	}
	if h == 0 {
		h = 24
	}

	content := mainView
	if m.state == stateShowingHelp {
		content = m.helpDialog.Overlay(mainView, w, h)
	}

	if m.toastController.HasToasts() {
		content = m.toastView.Overlay(content, w, h)
	}

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) renderMain() string {
	profile := m.list.Profile()
	title := styles.TitleStyle.Render("simpletodo") +
		styles.TextMutedStyle.Render(" "+iconDot+" "+profile.Name)

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.renderEntry(),
		"",
		m.renderTasks(),
		m.renderPager(),
		styles.HelpBarStyle.Render(m.help.View(focusKeyMap{keys: m.keys, focus: m.focus})),
	)
}

func (m Model) renderEntry() string {
	inputPanel := styles.PanelBlurStyle
	if m.focus == focusInput {
		inputPanel = styles.PanelStyle
	}
	entry := inputPanel.Render(m.input.View())

	if !m.calendarOn {
		return entry
	}

	calPanel := styles.PanelBlurStyle
	if m.focus == focusCalendar {
		calPanel = styles.PanelStyle
	}
	due := styles.TaskDueStyle.Render("Due: " + task.DisplayDueDate(m.calendar.Selected()))
	cal := calPanel.Render(lipgloss.JoinVertical(lipgloss.Left, m.calendar.View(), "", due))

	return lipgloss.JoinHorizontal(lipgloss.Top, entry, " ", cal)
}

func (m Model) renderTasks() string {
	visible := m.list.Visible()
	if len(visible) == 0 {
		return styles.TextMutedStyle.Render("No tasks yet. Type a name and press enter.")
	}

	today := startOfDay(m.now())
	rows := make([]string, 0, len(visible))
	for i, t := range visible {
		rows = append(rows, renderTask(t, m.focus == focusList && i == m.cursor, today))
	}
	return strings.Join(rows, "\n")
}

// renderTask draws one row: cursor, checkbox, name and due date. Completed
// names are struck through and muted.
func renderTask(t *task.Task, selected bool, today time.Time) string {
	prefix := "  "
	if selected {
		prefix = styles.TextPrimaryStyle.Render(iconCursor) + " "
	}

	var check, name string
	switch {
	case t.Completed():
		check = styles.TaskDoneStyle.Render(iconCheckDone)
		name = styles.TaskDoneStyle.Render(strikethrough(t.Name))
	case selected:
		check = styles.TaskSelectedStyle.Render(iconCheckOpen)
		name = styles.TaskSelectedStyle.Render(t.Name)
	default:
		check = styles.TaskStyle.Render(iconCheckOpen)
		name = styles.TaskStyle.Render(t.Name)
	}

	row := prefix + check + " " + name
	if !t.HasDue() {
		return row
	}

	dueStyle := styles.TaskDueStyle
	switch {
	case t.Completed():
		dueStyle = styles.TaskDoneStyle
	case t.DueAt.Before(today):
		dueStyle = styles.TaskOverdueStyle
	}
	return row + "  " + dueStyle.Render("Due: "+task.DisplayDueDate(*t.DueAt))
}

func (m Model) renderPager() string {
	n := m.list.Len()
	if m.list.Profile().PageSize <= 0 {
		return styles.TextMutedStyle.Render(taskCount(n))
	}

	state := m.list.Page()
	pager := m.paginator
	pager.TotalPages = state.Count()
	pager.Page = state.Current

	return pager.View() + "  " + styles.TextMutedStyle.Render(
		fmt.Sprintf("page %d/%d %s %s", state.Current+1, state.Count(), iconDot, taskCount(n)),
	)
}

func taskCount(n int) string {
	if n == 1 {
		return "1 task"
	}
	return fmt.Sprintf("%d tasks", n)
}

func startOfDay(t time.Time) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, 0, 0, 0, 0, t.Location())
}
