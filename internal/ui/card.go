package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/olivier-w/folio/internal/content"
	"github.com/olivier-w/folio/internal/glow"
)

// glowLevels is how many background shades the highlight is quantized to.
// Neighbouring cells usually share a level, so runs render as one span.
const glowLevels = 8

var glowShades = buildGlowShades()

func buildGlowShades() []lipgloss.Color {
	base, _ := colorful.Hex(glowBaseHex)
	hot, _ := colorful.Hex(glowColorHex)
	shades := make([]lipgloss.Color, glowLevels+1)
	for i := 1; i <= glowLevels; i++ {
		// The brightest shade stays well short of the accent so text on
		// top of it remains readable.
		t := 0.45 * float64(i) / glowLevels
		shades[i] = lipgloss.Color(base.BlendLab(hot, t).Clamped().Hex())
	}
	return shades
}

type cardLine struct {
	text  string
	style lipgloss.Style
}

// cardLines lays out a project's text for an inner text width.
func cardLines(p content.Project, width int) []cardLine {
	var lines []cardLine
	for i, l := range wrap(p.Title, max(1, width-2)) {
		if i == 0 {
			l += spaces(width-ansi.StringWidth(l)-1) + "↗"
		}
		lines = append(lines, cardLine{text: l, style: cardTitleStyle})
	}
	lines = append(lines, cardLine{style: bodyStyle})
	for _, l := range wrap(p.Summary, width) {
		lines = append(lines, cardLine{text: l, style: bodyStyle})
	}
	lines = append(lines, cardLine{style: bodyStyle})
	tags := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		tags[i] = "#" + t
	}
	for _, l := range wrap(strings.Join(tags, " "), width) {
		lines = append(lines, cardLine{text: l, style: cardTagStyle})
	}
	if p.Link != "" {
		for _, l := range wrap(p.Link, width) {
			lines = append(lines, cardLine{text: l, style: mutedStyle})
		}
	}
	return lines
}

// cardHeight is the outer height of a card of the given outer width.
func cardHeight(p content.Project, width int) int {
	return len(cardLines(p, width-4)) + 2
}

// renderCard draws a card width×height cells including its border. When
// hovered, each interior cell is tinted by its distance from the pointer
// offset.
func renderCard(p content.Project, width, height int, off glow.Point, hovered bool, radius float64) string {
	inner := width - 2
	lines := cardLines(p, inner-2)
	rect := glow.Rect{Width: width, Height: height}

	rows := make([]string, height-2)
	for r := range rows {
		line := cardLine{style: bodyStyle}
		if r < len(lines) {
			line = lines[r]
		}
		cells := layoutCells(" "+line.text, inner)
		rows[r] = shadeRow(cells, line.style, func(c int) int {
			if !hovered {
				return 0
			}
			return int(glow.Intensity(off, rect, c+1, r+1, radius)*glowLevels + 0.5)
		})
	}

	border := cardBorderStyle
	if hovered {
		border = cardHoverBorderStyle
	}
	return border.Render(strings.Join(rows, "\n"))
}

// cell is one glyph of a row and the columns it covers.
type cell struct {
	text  string
	col   int
	width int
}

// layoutCells splits plain text into glyph cells exactly width columns
// wide, truncating or padding with spaces. Zero-width runes stay with the
// glyph before them.
func layoutCells(text string, width int) []cell {
	var cells []cell
	col := 0
	for _, r := range ansi.Truncate(text, width, "") {
		w := ansi.StringWidth(string(r))
		if w == 0 {
			if n := len(cells); n > 0 {
				cells[n-1].text += string(r)
			}
			continue
		}
		if col+w > width {
			break
		}
		cells = append(cells, cell{text: string(r), col: col, width: w})
		col += w
	}
	for ; col < width; col++ {
		cells = append(cells, cell{text: " ", col: col, width: 1})
	}
	return cells
}

// shadeRow renders cells with base style, grouping consecutive cells that
// share a glow level into one styled span. A cell's level is taken at its
// first column.
func shadeRow(cells []cell, base lipgloss.Style, level func(col int) int) string {
	var b strings.Builder
	var span strings.Builder
	cur := 0
	flush := func() {
		if span.Len() == 0 {
			return
		}
		if cur <= 0 {
			b.WriteString(base.Render(span.String()))
		} else {
			b.WriteString(base.Background(glowShades[min(cur, glowLevels)]).Render(span.String()))
		}
		span.Reset()
	}
	for i, c := range cells {
		l := level(c.col)
		if i > 0 && l != cur {
			flush()
		}
		cur = l
		span.WriteString(c.text)
	}
	flush()
	return b.String()
}
