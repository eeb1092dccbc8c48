package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const blinkInterval = 530 * time.Millisecond

// blinkMsg toggles the console cursor. It carries the page state that
// scheduled it so a closed page drops it.
type blinkMsg struct {
	page *pageState
}

func blinkCmd(p *pageState) tea.Cmd {
	return tea.Tick(blinkInterval, func(time.Time) tea.Msg {
		return blinkMsg{page: p}
	})
}
