// Package components provides reusable TUI components.
package components

import (
	"fmt"
	"strings"

	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/simpletodo/internal/core/styles"
)

// HelpEntry represents a single keyboard shortcut entry.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpDialogSection groups related help entries under a title.
type HelpDialogSection struct {
	Title   string
	Entries []HelpEntry
}

// HelpDialog displays all available keyboard shortcuts as rendered markdown.
type HelpDialog struct {
	title    string
	sections []HelpDialogSection
	width    int
	rendered string
}

// NewHelpDialog creates a new help dialog. width is the content width used
// for word wrapping.
func NewHelpDialog(title string, sections []HelpDialogSection, width int) *HelpDialog {
	h := &HelpDialog{
		title:    title,
		sections: sections,
		width:    width,
	}
	h.rendered = h.render()
	return h
}

// Markdown returns the markdown source of the dialog body.
func (h *HelpDialog) Markdown() string {
	var b strings.Builder
	for i, section := range h.sections {
		if i > 0 {
			b.WriteString("\n")
		}
		if section.Title != "" {
			fmt.Fprintf(&b, "## %s\n\n", section.Title)
		}
		for _, entry := range section.Entries {
			fmt.Fprintf(&b, "- `%s` %s\n", entry.Key, entry.Desc)
		}
	}
	return b.String()
}

func (h *HelpDialog) render() string {
	md := h.Markdown()

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(h.width),
	)
	if err != nil {
		log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw help")
		return md
	}

	out, err := renderer.Render(md)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render help markdown, showing raw help")
		return md
	}
	return strings.Trim(out, "\n")
}

// View renders the help dialog.
func (h *HelpDialog) View() string {
	content := lipgloss.JoinVertical(lipgloss.Left,
		styles.ModalTitleStyle.Render(h.title),
		h.rendered,
		styles.ModalHelpStyle.Render("esc/? close"),
	)
	return styles.ModalStyle.Render(content)
}

// Overlay renders the help dialog as a layer over the given background.
func (h *HelpDialog) Overlay(background string, width, height int) string {
	modal := h.View()

	bgLayer := lipgloss.NewLayer(background)
	modalLayer := lipgloss.NewLayer(modal)

	modalW := lipgloss.Width(modal)
	modalH := lipgloss.Height(modal)
	centerX := max((width-modalW)/2, 0)
	centerY := max((height-modalH)/2, 0)
	modalLayer.X(centerX).Y(centerY).Z(1)

	compositor := lipgloss.NewCompositor(bgLayer, modalLayer)
	return compositor.Render()
}
