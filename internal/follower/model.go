package follower

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID atomic.Int64

// FrameMsg is one animation frame for a running Model.
type FrameMsg struct {
	ID  int
	gen int
}

// Model schedules frames for a Follower while mounted. Frames keep coming
// after the follower settles so a new target is picked up on the next one.
type Model struct {
	f       Follower
	id      int
	gen     int
	running bool
}

// NewModel builds a stopped follower model.
func NewModel(fps int, stiffness, damping float64) (Model, error) {
	f, err := New(fps, stiffness, damping)
	if err != nil {
		return Model{}, err
	}
	return Model{f: *f, id: int(lastID.Add(1))}, nil
}

func (m Model) ID() int       { return m.id }
func (m Model) Running() bool { return m.running }
func (m Model) Settled() bool { return m.f.Settled() }

// Cell is the displayed position in screen cells.
func (m Model) Cell() (x, y int) { return m.f.Cell() }

// Position is the displayed position.
func (m Model) Position() (x, y float64) { return m.f.Position() }

// SetTarget points the follower at a new position.
func (m *Model) SetTarget(x, y int) {
	m.f.SetTarget(float64(x), float64(y))
}

// Mount marks the model running, invalidating frames from an earlier run.
// Init schedules the first frame.
func (m *Model) Mount() {
	m.gen++
	m.running = true
}

// Start mounts the model and schedules its first frame.
func (m *Model) Start() tea.Cmd {
	m.Mount()
	return m.Init()
}

func (m Model) Init() tea.Cmd {
	if !m.running {
		return nil
	}
	return m.frame()
}

// Stop drops every pending frame.
func (m *Model) Stop() {
	m.gen++
	m.running = false
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	frame, ok := msg.(FrameMsg)
	if !ok || !m.running || frame.ID != m.id || frame.gen != m.gen {
		return m, nil
	}
	m.f.Step()
	return m, m.frame()
}

func (m Model) frame() tea.Cmd {
	id, gen := m.id, m.gen
	return tea.Tick(m.f.Interval(), func(time.Time) tea.Msg {
		return FrameMsg{ID: id, gen: gen}
	})
}
