package components

import "strings"

// padCache holds blank strings for the narrow widths the calendar grid uses.
var padCache = func() [32]string {
	var c [32]string
	for i := range c {
		c[i] = strings.Repeat(" ", i)
	}
	return c
}()

// Pad returns a string of n spaces.
func Pad(n int) string {
	if n <= 0 {
		return ""
	}
	if n < len(padCache) {
		return padCache[n]
	}
	return strings.Repeat(" ", n)
}
