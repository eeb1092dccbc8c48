package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlay places glyph at screen cell (x, y) of a rendered view, keeping
// the styling of the cells around it.
func overlay(view string, x, y int, glyph string) string {
	if x < 0 || y < 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	if y >= len(lines) {
		return view
	}
	line := lines[y]
	if w := ansi.StringWidth(line); w <= x {
		line += spaces(x - w + 1)
	}
	lines[y] = ansi.Truncate(line, x, "") + glyph + ansi.TruncateLeft(line, x+1, "")
	return strings.Join(lines, "\n")
}
