package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit     key.Binding
	Console  key.Binding
	Follower key.Binding
	Filter   key.Binding
	Jump     key.Binding
	Top      key.Binding
	Down     key.Binding
	Up       key.Binding
	PageDown key.Binding
	PageUp   key.Binding
	Help     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
		Console:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "console")),
		Follower: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "follower")),
		Filter:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "filter work")),
		Jump:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "jump")),
		Top:      key.NewBinding(key.WithKeys("0", "g", "home"), key.WithHelp("0", "top")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " "), key.WithHelp("pgdn", "page down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Filter, k.Console, k.Follower, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Jump, k.Top, k.Filter},
		{k.Console, k.Follower, k.Help, k.Quit},
	}
}
