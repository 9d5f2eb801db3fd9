package components

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/simpletodo/internal/core/styles"
)

const (
	calendarCellWidth = 2
	calendarWidth     = 7*calendarCellWidth + 6
)

// CalendarKeyMap holds the bindings a focused calendar responds to.
type CalendarKeyMap struct {
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
}

// DefaultCalendarKeyMap returns the calendar's default bindings.
func DefaultCalendarKeyMap() CalendarKeyMap {
	return CalendarKeyMap{
		PrevDay:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		PrevWeek:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		NextWeek:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	}
}

// Calendar is a month grid used to pick a single day.
type Calendar struct {
	keys         CalendarKeyMap
	selected     time.Time
	today        time.Time
	firstWeekday time.Weekday
	focused      bool
}

// NewCalendar creates a calendar with today selected.
func NewCalendar(today time.Time, firstWeekday time.Weekday) *Calendar {
	d := startOfDay(today)
	return &Calendar{
		keys:         DefaultCalendarKeyMap(),
		selected:     d,
		today:        d,
		firstWeekday: firstWeekday,
	}
}

// Selected returns the selected day at midnight.
func (c *Calendar) Selected() time.Time { return c.selected }

// Select moves the selection to t's day.
func (c *Calendar) Select(t time.Time) { c.selected = startOfDay(t) }

func (c *Calendar) Focus() { c.focused = true }
func (c *Calendar) Blur()  { c.focused = false }

// MoveDays shifts the selection by n days.
func (c *Calendar) MoveDays(n int) {
	c.selected = c.selected.AddDate(0, 0, n)
}

// MoveMonths shifts the selection by n months, clamping the day to the
// length of the target month (Jan 31 + 1 month is the last day of Feb).
func (c *Calendar) MoveMonths(n int) {
	y, m, d := c.selected.Date()
	first := time.Date(y, m+time.Month(n), 1, 0, 0, 0, 0, c.selected.Location())
	day := min(d, daysIn(first))
	c.selected = time.Date(first.Year(), first.Month(), day, 0, 0, 0, 0, first.Location())
}

// HandleKey applies a navigation key. It reports whether the key was used;
// an unfocused calendar ignores everything.
func (c *Calendar) HandleKey(msg tea.KeyPressMsg) bool {
	if !c.focused {
		return false
	}

	switch {
	case key.Matches(msg, c.keys.PrevDay):
		c.MoveDays(-1)
	case key.Matches(msg, c.keys.NextDay):
		c.MoveDays(1)
	case key.Matches(msg, c.keys.PrevWeek):
		c.MoveDays(-7)
	case key.Matches(msg, c.keys.NextWeek):
		c.MoveDays(7)
	case key.Matches(msg, c.keys.PrevMonth):
		c.MoveMonths(-1)
	case key.Matches(msg, c.keys.NextMonth):
		c.MoveMonths(1)
	case key.Matches(msg, c.keys.Today):
		c.selected = c.today
	default:
		return false
	}
	return true
}

// View renders the month containing the selected day.
func (c *Calendar) View() string {
	header := styles.CalendarHeaderStyle.Render(c.selected.Format("January 2006"))
	header = lipgloss.PlaceHorizontal(calendarWidth, lipgloss.Center, header)

	lines := []string{header, styles.CalendarWeekdayStyle.Render(c.weekdayHeader())}
	lines = append(lines, c.weeks()...)
	return strings.Join(lines, "\n")
}

func (c *Calendar) weekdayHeader() string {
	names := make([]string, 7)
	for i := range names {
		wd := time.Weekday((int(c.firstWeekday) + i) % 7)
		names[i] = wd.String()[:calendarCellWidth]
	}
	return strings.Join(names, " ")
}

func (c *Calendar) weeks() []string {
	y, m, _ := c.selected.Date()
	loc := c.selected.Location()
	first := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	offset := (int(first.Weekday()) - int(c.firstWeekday) + 7) % 7

	var (
		weeks []string
		cells []string
	)
	for range offset {
		cells = append(cells, Pad(calendarCellWidth))
	}

	for day := 1; day <= daysIn(first); day++ {
		cells = append(cells, c.renderDay(time.Date(y, m, day, 0, 0, 0, 0, loc)))
		if len(cells) == 7 {
			weeks = append(weeks, strings.Join(cells, " "))
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		weeks = append(weeks, strings.Join(cells, " "))
	}
	return weeks
}

func (c *Calendar) renderDay(d time.Time) string {
	label := fmt.Sprintf("%*d", calendarCellWidth, d.Day())
	switch {
	case d.Equal(c.selected) && c.focused:
		return styles.CalendarSelectedStyle.Render(label)
	case d.Equal(c.selected):
		return styles.CalendarSelectedStyle.Faint(true).Render(label)
	case d.Equal(c.today):
		return styles.CalendarTodayStyle.Render(label)
	default:
		return styles.CalendarDayStyle.Render(label)
	}
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysIn returns the number of days in t's month.
func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}
