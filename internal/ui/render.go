package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/olivier-w/folio/internal/glow"
)

const (
	pageMargin   = 2
	minCardWidth = 32
	cardGap      = 2
)

func (m Model) contentWidth() int {
	return max(30, m.width-2*pageMargin)
}

func (m Model) renderNav() string {
	w := max(m.width, 1)
	active := m.state.activeSection()

	left := spaces(pageMargin) + navKeyStyle.Render("◆") + " " + brandStyle.Render(m.content.Brand)
	var links []string
	for i, name := range sectionNames {
		style := navLinkStyle
		if section(i) == active {
			style = navKeyStyle.Underline(true)
		}
		links = append(links, navKeyStyle.Render(strconv.Itoa(i+1))+" "+style.Render(name))
	}
	right := strings.Join(links, "  ")
	if m.content.Email != "" {
		right += "   " + navKeyStyle.Render("✉ "+m.content.Email)
	}

	line := left
	if gap := w - lipgloss.Width(left) - lipgloss.Width(right) - pageMargin; gap >= 2 {
		line += spaces(gap) + right
	}
	line = ansi.Truncate(line, w, "")
	rule := lipgloss.NewStyle().Foreground(zincBorder).Render(strings.Repeat("─", w))
	return line + "\n" + rule
}

// pageBuilder stacks blocks vertically and remembers the row each starts on.
type pageBuilder struct {
	blocks []string
	rows   int
}

func (b *pageBuilder) add(block string) int {
	top := b.rows
	b.blocks = append(b.blocks, block)
	b.rows += lipgloss.Height(block)
	return top
}

func (b *pageBuilder) gap(n int) {
	for range n {
		b.add("")
	}
}

func (b *pageBuilder) String() string {
	margin := spaces(pageMargin)
	var out strings.Builder
	for i, block := range b.blocks {
		if i > 0 {
			out.WriteByte('\n')
		}
		for j, line := range strings.Split(block, "\n") {
			if j > 0 {
				out.WriteByte('\n')
			}
			if line != "" {
				out.WriteString(margin)
			}
			out.WriteString(line)
		}
	}
	return out.String()
}

// renderPage renders every section and returns the card bounds and
// section rows in page coordinates.
func (m Model) renderPage() (string, map[string]glow.Rect, [sectionCount]int) {
	cw := m.contentWidth()
	var b pageBuilder
	var sections [sectionCount]int
	cards := make(map[string]glow.Rect)

	b.gap(1)
	b.add(m.renderHero(cw))
	b.gap(2)

	sections[sectionAbout] = b.add(renderSectionTitle("Overview", "About me", cw))
	b.gap(1)
	b.add(m.renderAbout(cw))
	b.gap(2)

	sections[sectionWork] = b.add(renderSectionTitle("Case studies", "Selected work", cw))
	b.add(m.renderFilter())
	b.gap(1)
	gridTop := b.rows
	grid, rects := m.renderCards(cw)
	b.add(grid)
	for id, r := range rects {
		r.Top += gridTop
		r.Left += pageMargin
		cards[id] = r
	}
	b.gap(2)

	sections[sectionSkills] = b.add(renderSectionTitle("Capabilities", "Skills & tooling", cw))
	b.gap(1)
	b.add(renderPills(m.content.Skills, cw))
	b.gap(2)

	sections[sectionTimeline] = b.add(renderSectionTitle("Journey", "Timeline", cw))
	b.gap(1)
	b.add(m.renderTimeline(cw))
	b.gap(2)

	sections[sectionCerts] = b.add(renderSectionTitle("Validated knowledge", "Certifications", cw))
	b.gap(1)
	b.add(m.renderCerts(cw))
	b.gap(2)

	sections[sectionContact] = b.add(renderSectionTitle("Contact", "Let's collaborate", cw))
	b.gap(1)
	b.add(m.renderContacts(cw))
	b.gap(2)

	b.add(m.renderFooter(cw))
	b.gap(1)

	return b.String(), cards, sections
}

func (m Model) renderHero(cw int) string {
	textWidth := cw
	sideBySide := cw >= 96
	if sideBySide {
		textWidth = cw/2 - 2
	}

	var text []string
	text = append(text, badgeStyle.Render("▣ "+strings.ToUpper(m.content.Role)))
	text = append(text, "")
	text = append(text, headlineStyle.Width(textWidth).Render(m.content.Headline))
	text = append(text, "")
	text = append(text, bodyStyle.Width(textWidth).Render(m.content.Tagline))
	text = append(text, "")
	text = append(text, navKeyStyle.Render("2")+" "+bodyStyle.Render("View work")+"   "+
		navKeyStyle.Render("6")+" "+bodyStyle.Render("Get in touch"))
	text = append(text, "")

	if len(m.content.Stats) > 0 {
		statWidth := max(12, textWidth/len(m.content.Stats))
		var stats []string
		for _, s := range m.content.Stats {
			stats = append(stats, renderStat(s.Value, s.Label, statWidth))
		}
		text = append(text, lipgloss.JoinHorizontal(lipgloss.Top, stats...))
	}
	left := lipgloss.JoinVertical(lipgloss.Left, text...)

	consoleWidth := cw
	if sideBySide {
		consoleWidth = cw - textWidth - 4
	}
	console := m.renderConsole(min(consoleWidth, 72))

	if sideBySide {
		return lipgloss.JoinHorizontal(lipgloss.Top, left, spaces(4), console)
	}
	return left + "\n\n" + console
}

// renderConsole draws the simulated terminal. Its height depends only on
// the number of lines so the page does not jump while it types.
func (m Model) renderConsole(width int) string {
	inner := max(10, width-4)
	dots := lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171")).Render("●") + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#FBBF24")).Render("●") + " " +
		lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")).Render("●")
	header := dots + "  " + mutedStyle.Render("~/portfolio")

	rows := []string{header, ""}
	for _, l := range m.console.History() {
		rows = append(rows, consoleLine(l, bodyStyle, inner))
	}
	if m.console.Running() {
		cursor := " "
		if m.blink {
			cursor = consolePromptStyle.Render("█")
		}
		rows = append(rows, consoleLine(m.console.Text(), consoleTextStyle, inner-1)+cursor)
	} else {
		rows = append(rows, mutedStyle.Render("[console stopped: press t]"))
	}
	for len(rows) < len(m.content.Console)+2 {
		rows = append(rows, "")
	}
	return panelStyle.Width(inner + 2).Render(strings.Join(rows, "\n"))
}

func consoleLine(text string, style lipgloss.Style, width int) string {
	text = ansi.Truncate(text, width, "…")
	if strings.HasPrefix(text, "$") {
		return consolePromptStyle.Render("$") + style.Render(text[1:])
	}
	return style.Render(text)
}

func (m Model) renderAbout(cw int) string {
	about := bodyStyle.Width(min(cw, 80)).Render(m.content.About)
	var bullets []string
	for _, h := range m.content.Highlights {
		bullets = append(bullets, bulletStyle.Render("•")+" "+bodyStyle.Render(h))
	}
	if len(bullets) == 0 {
		return about
	}
	return about + "\n\n" + panelStyle.Render(strings.Join(bullets, "\n"))
}

func (m Model) renderFilter() string {
	tag := m.activeTag()
	if tag == "" {
		tag = "all"
	}
	return mutedStyle.Render("filter: ") + navKeyStyle.Render(tag) + mutedStyle.Render("  (tab)")
}

// renderCards lays visible projects out in a grid and returns the grid
// with each card's bounds relative to the grid's top-left corner.
func (m Model) renderCards(cw int) (string, map[string]glow.Rect) {
	tag := m.activeTag()
	var visible []int
	for i, p := range m.content.Projects {
		if p.HasTag(tag) {
			visible = append(visible, i)
		}
	}
	rects := make(map[string]glow.Rect)
	if len(visible) == 0 {
		return mutedStyle.Render("no projects tagged " + tag), rects
	}

	cols := max(1, min(3, (cw+cardGap)/(minCardWidth+cardGap)))
	cardWidth := (cw - cardGap*(cols-1)) / cols

	var rows []string
	top := 0
	for start := 0; start < len(visible); start += cols {
		end := min(start+cols, len(visible))
		height := 0
		for _, i := range visible[start:end] {
			height = max(height, cardHeight(m.content.Projects[i], cardWidth))
		}

		var row []string
		left := 0
		for n, i := range visible[start:end] {
			p := m.content.Projects[i]
			id := cardID(i, p.Title)
			off, _ := m.state.tracker.Offset(id)
			hovered := m.state.tracker.Hovered(id)
			if n > 0 {
				row = append(row, spaces(cardGap))
				left += cardGap
			}
			row = append(row, renderCard(p, cardWidth, height, off, hovered, m.glowRadius))
			rects[id] = glow.Rect{Left: left, Top: top, Width: cardWidth, Height: height}
			left += cardWidth
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		top += height + 1
	}
	return strings.Join(rows, "\n\n"), rects
}

func (m Model) renderTimeline(cw int) string {
	periodWidth := 0
	for _, t := range m.content.Timeline {
		periodWidth = max(periodWidth, lipgloss.Width(t.Period))
	}
	var lines []string
	for i, t := range m.content.Timeline {
		period := mutedStyle.Width(periodWidth).Render(t.Period)
		title := headlineStyle.Render(t.Title)
		if t.Org != "" {
			title += mutedStyle.Render(" · " + t.Org)
		}
		lines = append(lines, period+"  "+bulletStyle.Render("●")+"  "+title)
		if t.Detail != "" {
			detail := ansi.Truncate(t.Detail, max(10, cw-periodWidth-5), "…")
			lines = append(lines, spaces(periodWidth)+"  "+bulletStyle.Render("│")+"  "+bodyStyle.Render(detail))
		}
		if i < len(m.content.Timeline)-1 {
			lines = append(lines, spaces(periodWidth)+"  "+bulletStyle.Render("│"))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderCerts(cw int) string {
	var boxes []string
	for _, c := range m.content.Certs {
		body := headlineStyle.Render(c.Name) + "  " + bulletStyle.Render("✓") + "\n" + mutedStyle.Render(c.Org)
		boxes = append(boxes, panelStyle.Render(body))
	}
	return flow(boxes, cw)
}

func (m Model) renderContacts(cw int) string {
	width := max(24, min(40, (cw-2*cardGap)/3))
	var boxes []string
	for _, c := range m.content.Contacts {
		body := bulletStyle.Render("→ ") + headlineStyle.Render(c.Label) + "\n" +
			bodyStyle.Width(width-4).Render(c.Detail) + "\n" +
			mutedStyle.Render(ansi.Truncate(c.Href, width-4, "…"))
		boxes = append(boxes, panelStyle.Width(width-2).Render(body))
	}
	return flow(boxes, cw)
}

func (m Model) renderFooter(cw int) string {
	left := mutedStyle.Render(fmt.Sprintf("© %d %s. All rights reserved.", m.year, m.content.Name))
	right := mutedStyle.Render(m.content.Footer)
	if gap := cw - lipgloss.Width(left) - lipgloss.Width(right); gap >= 2 {
		return left + spaces(gap) + right
	}
	return left + "\n" + right
}

// flow joins boxes horizontally, wrapping to a new row at width.
func flow(boxes []string, width int) string {
	var rows []string
	var row []string
	rowWidth := 0
	for _, b := range boxes {
		w := lipgloss.Width(b)
		if len(row) > 0 && rowWidth+cardGap+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			row = append(row, spaces(cardGap))
			rowWidth += cardGap
		}
		row = append(row, b)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}
