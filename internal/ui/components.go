package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

func renderPill(label string) string {
	return pillStyle.Render(label)
}

// renderPills lays pills out left to right, wrapping onto new rows when
// the next pill would overflow width.
func renderPills(labels []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, l := range labels {
		p := renderPill(l)
		w := lipgloss.Width(p)
		if len(row) > 0 && rowWidth+1+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			row = append(row, " ")
			rowWidth++
		}
		row = append(row, p)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func renderStat(value, label string, width int) string {
	style := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	return lipgloss.JoinVertical(lipgloss.Center,
		style.Render(statValueStyle.Render(value)),
		style.Render(mutedStyle.Render(label)),
	)
}

// renderSectionTitle draws the kicker, the title and a rule that fades
// from emerald into the background.
func renderSectionTitle(kicker, title string, width int) string {
	head := sectionTitleStyle.Render(title)
	ruleWidth := width - lipgloss.Width(head) - 2
	line := head
	if ruleWidth > 0 {
		line += "  " + gradientRule(ruleWidth)
	}
	return sectionKickerStyle.Render(strings.ToUpper(kicker)) + "\n" + line
}

func gradientRule(width int) string {
	from, _ := colorful.Hex(glowColorHex)
	to, _ := colorful.Hex(glowBaseHex)
	var b strings.Builder
	for i := range width {
		t := float64(i) / float64(max(1, width-1))
		c := from.BlendLab(to, t).Clamped()
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("─"))
	}
	return b.String()
}

// wrap breaks text into unstyled lines no wider than width cells. Words
// longer than width are split.
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return nil
	}
	var lines []string
	for _, l := range strings.Split(ansi.Wrap(text, width, ""), "\n") {
		if l = ansi.Truncate(strings.TrimSpace(l), width, ""); l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

func spaces(n int) string {
	if n < 0 {
		n = 0
	}
	return strings.Repeat(" ", n)
}
