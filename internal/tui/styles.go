// Package tui implements the Bubble Tea TUI for simpletodo.
package tui

import "strings"

// Icons and symbols.
const (
	iconDot        = "•"
	iconCursor     = "›"
	iconCheckOpen  = "[ ]"
	iconCheckDone  = "[x]"
	combiningStroke = '\u0336' // combining long stroke overlay
)

// strikethrough overlays every rune of s with a combining stroke so the
// effect survives terminals that ignore the SGR strikethrough attribute.
func strikethrough(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)
	for _, r := range s {
		b.WriteRune(r)
		b.WriteRune(combiningStroke)
	}
	return b.String()
}
