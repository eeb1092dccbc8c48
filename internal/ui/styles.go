package ui

import "github.com/charmbracelet/lipgloss"

var (
	emerald      = lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"}
	emeraldDim   = lipgloss.AdaptiveColor{Light: "#065F46", Dark: "#10B981"}
	zincBorder   = lipgloss.AdaptiveColor{Light: "#D4D4D8", Dark: "#27272A"}
	zincText     = lipgloss.AdaptiveColor{Light: "#3F3F46", Dark: "#A1A1AA"}
	zincStrong   = lipgloss.AdaptiveColor{Light: "#18181B", Dark: "#F4F4F5"}
	zincMuted    = lipgloss.AdaptiveColor{Light: "#A1A1AA", Dark: "#52525B"}
	glowBaseHex  = "#18181B"
	glowColorHex = "#10B981"
)

var (
	brandStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(zincStrong)

	navLinkStyle = lipgloss.NewStyle().
			Foreground(zincText)

	navKeyStyle = lipgloss.NewStyle().
			Foreground(emerald)

	badgeStyle = lipgloss.NewStyle().
			Foreground(emerald).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(emeraldDim).
			Padding(0, 1)

	headlineStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(zincStrong)

	bodyStyle = lipgloss.NewStyle().
			Foreground(zincText)

	mutedStyle = lipgloss.NewStyle().
			Foreground(zincMuted)

	statValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(emerald)

	sectionKickerStyle = lipgloss.NewStyle().
				Foreground(emerald)

	sectionTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(zincStrong)

	pillStyle = lipgloss.NewStyle().
			Foreground(emerald).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(emeraldDim).
			Padding(0, 1)

	bulletStyle = lipgloss.NewStyle().
			Foreground(emerald)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(zincBorder).
			Padding(0, 1)

	consolePromptStyle = lipgloss.NewStyle().
				Foreground(emerald)

	consoleTextStyle = lipgloss.NewStyle().
				Foreground(zincStrong)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(zincStrong)

	cardTagStyle = lipgloss.NewStyle().
			Foreground(emerald)

	cardBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(zincBorder)

	cardHoverBorderStyle = cardBorderStyle.
				BorderForeground(emeraldDim)

	followerStyle = lipgloss.NewStyle().
			Foreground(emerald).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(zincMuted)
)
