package typewriter

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg advances a running Model. Ticks addressed to another model, or
// scheduled before the latest Start/Stop, are ignored.
type TickMsg struct {
	ID   int
	gen  int
	Time time.Time
}

// Model is a Bubble Tea component wrapping an Animator. Its zero value is
// not usable; build one with NewModel.
type Model struct {
	anim    Animator
	id      int
	gen     int
	running bool
}

// NewModel builds a stopped console model over lines.
func NewModel(lines []string, charDelay, pauseDelay time.Duration) (Model, error) {
	a, err := New(lines, charDelay, pauseDelay)
	if err != nil {
		return Model{}, err
	}
	return Model{anim: *a, id: nextID()}, nil
}

// ID identifies this model's tick messages.
func (m Model) ID() int { return m.id }

// Running reports whether the model is mounted and ticking.
func (m Model) Running() bool { return m.running }

// Text is the revealed text of the current line.
func (m Model) Text() string { return m.anim.Text() }

// Index is the current line index.
func (m Model) Index() int { return m.anim.Index() }

// Complete reports whether the current line is fully revealed.
func (m Model) Complete() bool { return m.anim.Complete() }

// History is the lines already typed in this pass.
func (m Model) History() []string { return m.anim.History() }

// Mount resets to the first line and marks the model running without
// scheduling anything; Init returns the first tick. Ticks still in flight
// from an earlier run are invalidated.
func (m *Model) Mount() {
	m.anim.Reset()
	m.gen++
	m.running = true
}

// Start mounts the model and schedules its first tick.
func (m *Model) Start() tea.Cmd {
	m.Mount()
	return m.Init()
}

// Stop invalidates every pending tick. The revealed text is left as is.
func (m *Model) Stop() {
	m.gen++
	m.running = false
}

// Init schedules the next tick of a mounted model.
func (m Model) Init() tea.Cmd {
	if !m.running {
		return nil
	}
	return m.tick(m.anim.Delay())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok {
		return m, nil
	}
	if !m.running || tick.ID != m.id || tick.gen != m.gen {
		return m, nil
	}
	next := m.anim.Step()
	return m, m.tick(next)
}

func (m Model) View() string {
	return m.anim.Text()
}

func (m Model) tick(d time.Duration) tea.Cmd {
	id, gen := m.id, m.gen
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{ID: id, gen: gen, Time: t}
	})
}
