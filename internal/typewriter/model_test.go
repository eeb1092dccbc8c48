package typewriter

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestModel(t *testing.T, lines ...string) Model {
	t.Helper()
	m, err := NewModel(lines, 10*time.Millisecond, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	return m
}

func (m Model) currentTick() TickMsg {
	return TickMsg{ID: m.id, gen: m.gen}
}

func TestModelStartSchedulesTick(t *testing.T) {
	m := newTestModel(t, "abc")
	if m.Running() {
		t.Fatal("expected new model to be stopped")
	}
	if cmd := m.Start(); cmd == nil {
		t.Fatal("expected tick command from Start")
	}
	if !m.Running() {
		t.Fatal("expected model to be running after Start")
	}
}

func TestModelTickRevealsAndReschedules(t *testing.T) {
	m := newTestModel(t, "abc", "de")
	m.Start()

	var cmd tea.Cmd
	for _, want := range []string{"a", "ab", "abc"} {
		next, c := m.Update(m.currentTick())
		m, cmd = next, c
		if m.View() != want {
			t.Fatalf("expected %q, got %q", want, m.View())
		}
		if cmd == nil {
			t.Fatal("expected next tick to be scheduled")
		}
	}
	m, _ = m.Update(m.currentTick())
	if m.Index() != 1 || m.Text() != "" {
		t.Fatalf("expected advance to line 1 with empty buffer, got %d %q", m.Index(), m.Text())
	}
}

func TestModelIgnoresTicksAfterStop(t *testing.T) {
	m := newTestModel(t, "abc")
	m.Start()
	pending := m.currentTick()
	m, _ = m.Update(pending)
	pending = m.currentTick()

	m.Stop()
	next, cmd := m.Update(pending)
	if cmd != nil {
		t.Fatal("expected no command for tick after Stop")
	}
	if next.Text() != "a" {
		t.Fatalf("expected state frozen at %q, got %q", "a", next.Text())
	}
}

func TestModelIgnoresTicksFromEarlierRun(t *testing.T) {
	m := newTestModel(t, "abc")
	m.Start()
	stale := m.currentTick()

	m.Stop()
	m.Start()

	next, cmd := m.Update(stale)
	if cmd != nil {
		t.Fatal("expected stale tick to be dropped")
	}
	if next.Text() != "" {
		t.Fatalf("expected restart to begin empty, got %q", next.Text())
	}
}

func TestModelIgnoresOtherModelsTicks(t *testing.T) {
	a := newTestModel(t, "abc")
	b := newTestModel(t, "xyz")
	a.Start()
	b.Start()
	if a.ID() == b.ID() {
		t.Fatal("expected distinct model ids")
	}

	next, cmd := a.Update(b.currentTick())
	if cmd != nil || next.Text() != "" {
		t.Fatalf("expected foreign tick ignored, got %q", next.Text())
	}
}

func TestNewModelPropagatesValidation(t *testing.T) {
	if _, err := NewModel(nil, time.Millisecond, time.Millisecond); err == nil {
		t.Fatal("expected error for empty sequence")
	}
}

func TestModelTickCommandDeliversTick(t *testing.T) {
	m, err := NewModel([]string{"a"}, time.Millisecond, time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	cmd := m.Start()
	msg, ok := cmd().(TickMsg)
	if !ok {
		t.Fatalf("expected TickMsg, got %T", cmd())
	}
	if msg.ID != m.ID() || msg.gen != m.gen {
		t.Fatal("expected tick addressed to the current run")
	}
}

func TestModelInitOnlyWhenMounted(t *testing.T) {
	m := newTestModel(t, "abc")
	if m.Init() != nil {
		t.Fatal("expected no tick from an unmounted model")
	}
	m.Mount()
	if m.Init() == nil {
		t.Fatal("expected tick from a mounted model")
	}
	m.Stop()
	if m.Init() != nil {
		t.Fatal("expected no tick after Stop")
	}
}
