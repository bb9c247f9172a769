package ui

import (
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
)

// truncate shortens value to at most limit terminal cells, adding an
// ellipsis when something was cut. Width is measured in cells, so wide
// runes and embedded styling are handled.
func truncate(value string, limit int) string {
	value = strings.TrimSpace(value)
	if limit <= 0 {
		return value
	}
	if xansi.StringWidth(value) <= limit {
		return value
	}
	if limit <= 3 {
		return xansi.Truncate(value, limit, "")
	}
	return xansi.Truncate(value, limit, "...")
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	w := xansi.StringWidth(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// wrap breaks value into lines of at most width cells on word boundaries.
// Words longer than width are hard-wrapped.
func wrap(value string, width int) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	if width <= 0 {
		return []string{value}
	}
	lines := strings.Split(xansi.Wrap(value, width, ""), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSpace(l)
	}
	return lines
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
