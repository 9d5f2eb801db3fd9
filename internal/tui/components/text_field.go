package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/simpletodo/internal/core/styles"
)

const taskNameCharLimit = 120

// TextField is a labelled single-line text input.
type TextField struct {
	input   textinput.Model
	label   string
	focused bool
}

// NewTextField creates a new single-line text input field.
func NewTextField(label, placeholder string, width int) *TextField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = taskNameCharLimit
	ti.SetWidth(width)

	inputStyles := textinput.DefaultStyles(true)
	inputStyles.Cursor.Color = styles.ColorPrimary
	inputStyles.Focused.Prompt = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	inputStyles.Blurred.Prompt = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Focused.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	inputStyles.Blurred.Placeholder = lipgloss.NewStyle().Foreground(styles.ColorMuted)
	ti.SetStyles(inputStyles)

	return &TextField{
		input: ti,
		label: label,
	}
}

func (f *TextField) Update(msg tea.Msg) tea.Cmd {
	if !f.focused {
		return nil
	}

	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *TextField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.TextPrimaryBoldStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(f.label), f.input.View())
}

func (f *TextField) Focus() tea.Cmd {
	f.focused = true
	return f.input.Focus()
}

func (f *TextField) Blur() {
	f.focused = false
	f.input.Blur()
}

func (f *TextField) Value() string      { return f.input.Value() }
func (f *TextField) Reset()             { f.input.Reset() }
func (f *TextField) SetWidth(width int) { f.input.SetWidth(width) }
