package tui

import (
	"charm.land/bubbles/v2/key"

	"github.com/colonyops/simpletodo/internal/tui/components"
)

// KeyMap defines the key bindings of the main model.
type KeyMap struct {
	Submit         key.Binding
	ToggleCalendar key.Binding
	SwitchFocus    key.Binding
	Up             key.Binding
	Down           key.Binding
	ToggleDone     key.Binding
	Delete         key.Binding
	PrevPage       key.Binding
	NextPage       key.Binding
	GotoPage       key.Binding
	Help           key.Binding
	Dismiss        key.Binding
	Quit           key.Binding

	Calendar components.CalendarKeyMap
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add task")),
		ToggleCalendar: key.NewBinding(key.WithKeys("ctrl+t"), key.WithHelp("ctrl+t", "calendar")),
		SwitchFocus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		ToggleDone:     key.NewBinding(key.WithKeys("space", "x"), key.WithHelp("space/x", "done")),
		Delete:         key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		PrevPage:       key.NewBinding(key.WithKeys("left", "h", "pgup"), key.WithHelp("←/h", "prev page")),
		NextPage:       key.NewBinding(key.WithKeys("right", "l", "pgdown"), key.WithHelp("→/l", "next page")),
		GotoPage:       key.NewBinding(key.WithKeys("g"), key.WithHelp("g 1-9", "go to page")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Dismiss:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss/quit")),
		Quit:           key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Calendar:       components.DefaultCalendarKeyMap(),
	}
}

// FullHelp lists every binding grouped by area.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.ToggleCalendar, k.SwitchFocus},
		{k.Up, k.Down, k.ToggleDone, k.Delete},
		{k.PrevPage, k.NextPage, k.GotoPage},
		{k.Help, k.Dismiss, k.Quit},
	}
}

// HelpSections groups the bindings for the help dialog.
func (k KeyMap) HelpSections() []components.HelpDialogSection {
	return []components.HelpDialogSection{
		{Title: "Add", Entries: helpEntries(k.Submit, k.ToggleCalendar, k.SwitchFocus)},
		{Title: "Calendar", Entries: helpEntries(
			k.Calendar.PrevDay, k.Calendar.NextDay,
			k.Calendar.PrevWeek, k.Calendar.NextWeek,
			k.Calendar.PrevMonth, k.Calendar.NextMonth,
			k.Calendar.Today,
		)},
		{Title: "List", Entries: helpEntries(k.Up, k.Down, k.ToggleDone, k.Delete)},
		{Title: "Pages", Entries: helpEntries(k.PrevPage, k.NextPage, k.GotoPage)},
		{Title: "General", Entries: helpEntries(k.Help, k.Dismiss, k.Quit)},
	}
}

func helpEntries(bindings ...key.Binding) []components.HelpEntry {
	entries := make([]components.HelpEntry, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		entries = append(entries, components.HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return entries
}

// focusKeyMap narrows the short help to the keys that apply to the focused area.
type focusKeyMap struct {
	keys  KeyMap
	focus focusArea
}

func (f focusKeyMap) ShortHelp() []key.Binding {
	k := f.keys
	switch f.focus {
	case focusList:
		return []key.Binding{k.Up, k.Down, k.ToggleDone, k.Delete, k.PrevPage, k.NextPage, k.GotoPage, k.SwitchFocus, k.Help}
	case focusCalendar:
		return []key.Binding{k.Calendar.NextDay, k.Calendar.NextWeek, k.Calendar.NextMonth, k.Submit, k.SwitchFocus, k.Help}
	default:
		return []key.Binding{k.Submit, k.ToggleCalendar, k.SwitchFocus, k.Dismiss}
	}
}

func (f focusKeyMap) FullHelp() [][]key.Binding {
	return f.keys.FullHelp()
}
