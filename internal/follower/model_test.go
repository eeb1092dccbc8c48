package follower

import "testing"

func TestModelFramesMoveTowardTarget(t *testing.T) {
	m, err := NewModel(60, 36, 12)
	if err != nil {
		t.Fatal(err)
	}
	if cmd := m.Start(); cmd == nil {
		t.Fatal("expected first frame to be scheduled")
	}
	m.SetTarget(40, 10)

	m, cmd := m.Update(FrameMsg{ID: m.id, gen: m.gen})
	if cmd == nil {
		t.Fatal("expected next frame to be scheduled")
	}
	x, y := m.Position()
	if x <= 0 || y <= 0 {
		t.Fatalf("expected movement toward target, got %v,%v", x, y)
	}
}

func TestModelKeepsSchedulingWhenSettled(t *testing.T) {
	m, err := NewModel(60, 36, 12)
	if err != nil {
		t.Fatal(err)
	}
	m.Start()
	if !m.Settled() {
		t.Fatal("expected follower at rest")
	}
	_, cmd := m.Update(FrameMsg{ID: m.id, gen: m.gen})
	if cmd == nil {
		t.Fatal("expected frames to continue while settled")
	}
}

func TestModelDropsFramesAfterStop(t *testing.T) {
	m, err := NewModel(60, 36, 12)
	if err != nil {
		t.Fatal(err)
	}
	m.Start()
	m.SetTarget(50, 50)
	pending := FrameMsg{ID: m.id, gen: m.gen}
	m.Stop()

	next, cmd := m.Update(pending)
	if cmd != nil {
		t.Fatal("expected no frame after Stop")
	}
	if x, y := next.Position(); x != 0 || y != 0 {
		t.Fatalf("expected no movement after Stop, got %v,%v", x, y)
	}
	if next.Running() {
		t.Fatal("expected stopped model")
	}
}

func TestModelIgnoresForeignFrames(t *testing.T) {
	a, _ := NewModel(60, 36, 12)
	b, _ := NewModel(60, 36, 12)
	a.Start()
	b.Start()
	a.SetTarget(10, 10)

	next, cmd := a.Update(FrameMsg{ID: b.ID(), gen: b.gen})
	if cmd != nil {
		t.Fatal("expected foreign frame ignored")
	}
	if x, _ := next.Position(); x != 0 {
		t.Fatalf("expected no movement, got %v", x)
	}
}

func TestModelInitOnlyWhenMounted(t *testing.T) {
	m, err := NewModel(60, 36, 12)
	if err != nil {
		t.Fatal(err)
	}
	if m.Init() != nil {
		t.Fatal("expected no frame before Mount")
	}
	m.Mount()
	if m.Init() == nil {
		t.Fatal("expected a frame after Mount")
	}
}
