package ui

import (
	"maps"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/olivier-w/folio/internal/config"
	"github.com/olivier-w/folio/internal/content"
	"github.com/olivier-w/folio/internal/follower"
	"github.com/olivier-w/folio/internal/typewriter"
	"go.uber.org/zap"
)

// Model is the Bubbletea model for the portfolio page.
type Model struct {
	content    content.Portfolio
	glowRadius float64
	log        *zap.Logger
	state      *pageState

	console  typewriter.Model
	follower follower.Model
	tags     []string
	filter   int // 0 shows every project, n shows tags[n-1]

	viewport viewport.Model
	keys     keyMap
	help     help.Model
	width    int
	height   int
	ready    bool
	quitting bool

	blink       bool
	pointerSeen bool
	year        int
}

// New builds a page with the console and follower mounted. It fails if
// the animation settings are rejected.
func New(cfg config.Config, log *zap.Logger) (Model, error) {
	if log == nil {
		log = zap.NewNop()
	}
	a := cfg.Animation
	console, err := typewriter.NewModel(cfg.Content.Console, a.CharDelay, a.PauseDelay)
	if err != nil {
		return Model{}, err
	}
	f, err := follower.NewModel(a.FollowerFPS, a.Stiffness, a.Damping)
	if err != nil {
		return Model{}, err
	}
	console.Mount()
	f.Mount()

	m := Model{
		content:    cfg.Content,
		glowRadius: a.GlowRadius,
		log:        log.Named("ui"),
		state:      newPageState(),
		console:    console,
		follower:   f,
		tags:       cfg.Content.Tags(),
		keys:       newKeyMap(),
		help:       newHelp(),
		year:       time.Now().Year(),
	}
	m.mountCards()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.console.Init(),
		m.follower.Init(),
		blinkCmd(m.state),
		tea.SetWindowTitle(m.content.Brand),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.handleMsg(msg)
	return next, cmd
}

func (m Model) handleMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		m.log.Debug("resized", zap.Int("width", msg.Width), zap.Int("height", msg.Height))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionMotion {
			m.pointerMoved(msg.X, msg.Y)
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.refresh()
		return m, cmd

	case typewriter.TickMsg:
		var cmd tea.Cmd
		m.console, cmd = m.console.Update(msg)
		m.refresh()
		return m, cmd

	case follower.FrameMsg:
		var cmd tea.Cmd
		m.follower, cmd = m.follower.Update(msg)
		return m, cmd

	case blinkMsg:
		if msg.page != m.state || m.state.closed {
			return m, nil
		}
		m.blink = !m.blink
		m.refresh()
		return m, blinkCmd(m.state)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.teardown()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)

	case key.Matches(msg, m.keys.Console):
		var cmd tea.Cmd
		if m.console.Running() {
			m.console.Stop()
			m.log.Info("console unmounted")
		} else {
			cmd = m.console.Start()
			m.log.Info("console mounted")
		}
		m.refresh()
		return m, cmd

	case key.Matches(msg, m.keys.Follower):
		if m.follower.Running() {
			m.follower.Stop()
			m.log.Info("follower stopped")
			return m, nil
		}
		m.log.Info("follower started")
		return m, m.follower.Start()

	case key.Matches(msg, m.keys.Filter):
		m.filter = (m.filter + 1) % (len(m.tags) + 1)
		m.mountCards()
		m.log.Info("work filter changed", zap.String("tag", m.activeTag()))
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Jump):
		s := section(msg.String()[0] - '1')
		if s >= 0 && s < sectionCount {
			m.viewport.SetYOffset(m.state.sections[s])
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	m.refresh()
	return m, cmd
}

// pointerMoved feeds a pointer position to the glow tracker and the
// follower. Both only publish values; View reads them.
func (m *Model) pointerMoved(x, y int) {
	m.pointerSeen = true
	m.state.tracker.OnPointerMove(x, y)
	m.follower.SetTarget(x, y)
	m.refresh()
}

// mountCards registers the cards that pass the current filter and drops
// the rest from the tracker.
func (m *Model) mountCards() {
	tag := m.activeTag()
	for i, p := range m.content.Projects {
		id := cardID(i, p.Title)
		if p.HasTag(tag) {
			m.state.tracker.Register(id, m.state.bounds(id))
		} else {
			m.state.tracker.Deregister(id)
		}
	}
}

func (m Model) activeTag() string {
	if m.filter == 0 || m.filter > len(m.tags) {
		return ""
	}
	return m.tags[m.filter-1]
}

func (m *Model) teardown() {
	m.console.Stop()
	m.follower.Stop()
	m.state.tracker.Close()
	m.state.closed = true
	m.log.Info("page closed")
}

func (m *Model) resize() {
	m.help.Width = m.width
	vh := m.height - navHeight - lipgloss.Height(m.helpView())
	if vh < 1 {
		vh = 1
	}
	if !m.ready {
		m.viewport = viewport.New(m.width, vh)
		m.viewport.KeyMap = viewport.KeyMap{
			PageDown: m.keys.PageDown,
			PageUp:   m.keys.PageUp,
			Down:     m.keys.Down,
			Up:       m.keys.Up,
		}
		m.ready = true
	} else {
		m.viewport.Width = m.width
		m.viewport.Height = vh
	}
	m.refresh()
}

// refresh re-renders the page into the viewport. When the render moved a
// card or the viewport scrolled, offsets are recomputed against the new
// layout and the page rendered once more so the glow lines up.
func (m *Model) refresh() {
	if !m.ready {
		return
	}
	for range 2 {
		page, cards, sections := m.renderPage()
		m.viewport.SetContent(page)
		moved := !maps.Equal(cards, m.state.cards) || m.viewport.YOffset != m.state.yOffset
		m.state.cards = cards
		m.state.sections = sections
		m.state.yOffset = m.viewport.YOffset
		if !moved {
			return
		}
		m.state.tracker.Refresh()
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "\n  " + brandStyle.Render(m.content.Brand) + "\n"
	}

	view := m.renderNav() + "\n" + m.viewport.View() + "\n" + m.helpView()
	if m.follower.Running() && m.pointerSeen {
		x, y := m.follower.Cell()
		view = overlay(view, x, y, followerStyle.Render("●"))
	}
	return view
}

func newHelp() help.Model {
	h := help.New()
	h.Styles.ShortKey = navKeyStyle
	h.Styles.ShortDesc = helpStyle
	h.Styles.FullKey = navKeyStyle
	h.Styles.FullDesc = helpStyle
	return h
}

func (m Model) helpView() string {
	return "  " + m.help.View(m.keys)
}
