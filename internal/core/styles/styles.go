// Package styles provides shared lipgloss v2 styles for CLI and TUI components.
package styles

import (
	"image/color"

	lipgloss "charm.land/lipgloss/v2"
)

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported colors of the active palette.
var (
	ColorPrimary    color.Color
	ColorSecondary  color.Color
	ColorForeground color.Color
	ColorMuted      color.Color
	ColorBackground color.Color
	ColorSurface    color.Color
	ColorSuccess    color.Color
	ColorWarning    color.Color
	ColorError      color.Color
)

// Style exports.
var (
	// Text styles.
	TextForegroundStyle     lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextPrimaryStyle        lipgloss.Style
	TextPrimaryBoldStyle    lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style

	// App frame.
	TitleStyle     lipgloss.Style
	PanelStyle     lipgloss.Style
	PanelBlurStyle lipgloss.Style
	HelpBarStyle   lipgloss.Style

	// Task rows.
	TaskStyle         lipgloss.Style
	TaskSelectedStyle lipgloss.Style
	TaskDoneStyle     lipgloss.Style
	TaskDueStyle      lipgloss.Style
	TaskOverdueStyle  lipgloss.Style

	// Calendar.
	CalendarHeaderStyle   lipgloss.Style
	CalendarWeekdayStyle  lipgloss.Style
	CalendarDayStyle      lipgloss.Style
	CalendarTodayStyle    lipgloss.Style
	CalendarSelectedStyle lipgloss.Style

	// Overlays.
	ModalStyle        lipgloss.Style
	ModalTitleStyle   lipgloss.Style
	ModalHelpStyle    lipgloss.Style
	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorBackground = p.Background
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TextForegroundStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TextForegroundBoldStyle = TextForegroundStyle.Bold(true)
	TextPrimaryStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TextPrimaryBoldStyle = TextPrimaryStyle.Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	TextWarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	TitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		MarginBottom(1)
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)
	PanelBlurStyle = PanelStyle.BorderForeground(ColorSurface)
	HelpBarStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	TaskStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	TaskSelectedStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)
	TaskDoneStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	TaskDueStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	TaskOverdueStyle = lipgloss.NewStyle().Foreground(ColorError)

	CalendarHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorForeground).
		Bold(true)
	CalendarWeekdayStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	CalendarDayStyle = lipgloss.NewStyle().Foreground(ColorForeground)
	CalendarTodayStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Underline(true)
	CalendarSelectedStyle = lipgloss.NewStyle().
		Background(ColorPrimary).
		Foreground(ColorBackground).
		Bold(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorForeground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorMuted).
		MarginTop(1)

	toastBase := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	ToastInfoStyle = toastBase.BorderForeground(ColorPrimary).Foreground(ColorForeground)
	ToastWarningStyle = toastBase.BorderForeground(ColorWarning).Foreground(ColorWarning)
	ToastErrorStyle = toastBase.BorderForeground(ColorError).Foreground(ColorError)
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}
