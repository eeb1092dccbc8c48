package glow

import (
	"math"
	"testing"
)

func fixed(r Rect) BoundsFunc {
	return func() (Rect, bool) { return r, true }
}

func TestOffsetIsPointerMinusOrigin(t *testing.T) {
	cases := []struct {
		x, y int
		r    Rect
		want Point
	}{
		{10, 5, Rect{Left: 2, Top: 1, Width: 20, Height: 8}, Point{8, 4}},
		{0, 0, Rect{Left: 30, Top: 12, Width: 10, Height: 3}, Point{-30, -12}},
		{200, 90, Rect{Left: 4, Top: 4, Width: 2, Height: 2}, Point{196, 86}},
	}
	for _, tc := range cases {
		tr := NewTracker()
		tr.Register("card", fixed(tc.r))
		tr.OnPointerMove(tc.x, tc.y)
		got, ok := tr.Offset("card")
		if !ok {
			t.Fatalf("expected offset for pointer %d,%d", tc.x, tc.y)
		}
		if got != tc.want {
			t.Fatalf("pointer %d,%d bounds %+v: expected %+v, got %+v", tc.x, tc.y, tc.r, tc.want, got)
		}
	}
}

func TestBoundsQueriedOnEveryMove(t *testing.T) {
	tr := NewTracker()
	r := Rect{Left: 0, Top: 10, Width: 10, Height: 4}
	calls := 0
	tr.Register("card", func() (Rect, bool) {
		calls++
		return r, true
	})

	tr.OnPointerMove(5, 12)
	r.Top = 4 // scrolled
	tr.OnPointerMove(5, 12)

	got, _ := tr.Offset("card")
	if got != (Point{5, 8}) {
		t.Fatalf("expected offset from moved bounds, got %+v", got)
	}
	if calls != 2 {
		t.Fatalf("expected bounds queried twice, got %d", calls)
	}
}

func TestLateRegistrationGetsOffset(t *testing.T) {
	tr := NewTracker()
	tr.OnPointerMove(7, 3)
	tr.Register("late", fixed(Rect{Left: 5, Top: 1, Width: 4, Height: 4}))

	got, ok := tr.Offset("late")
	if !ok || got != (Point{2, 2}) {
		t.Fatalf("expected immediate offset {2 2}, got %+v ok=%v", got, ok)
	}

	tr.OnPointerMove(9, 4)
	got, _ = tr.Offset("late")
	if got != (Point{4, 3}) {
		t.Fatalf("expected late element to follow moves, got %+v", got)
	}
}

func TestDeregisteredElementStopsUpdating(t *testing.T) {
	tr := NewTracker()
	calls := 0
	tr.Register("gone", func() (Rect, bool) {
		calls++
		return Rect{}, true
	})
	tr.OnPointerMove(1, 1)
	tr.Deregister("gone")
	tr.OnPointerMove(2, 2)

	if calls != 1 {
		t.Fatalf("expected no bounds query after deregister, got %d calls", calls)
	}
	if _, ok := tr.Offset("gone"); ok {
		t.Fatal("expected no offset after deregister")
	}
	if len(tr.Registered()) != 0 {
		t.Fatalf("expected no registered elements, got %v", tr.Registered())
	}
}

func TestVanishedElementIsSkipped(t *testing.T) {
	tr := NewTracker()
	present := true
	tr.Register("flaky", func() (Rect, bool) {
		return Rect{Left: 1, Top: 1, Width: 5, Height: 5}, present
	})
	tr.Register("steady", fixed(Rect{Width: 5, Height: 5}))

	tr.OnPointerMove(3, 3)
	present = false
	tr.OnPointerMove(4, 4)

	if _, ok := tr.Offset("flaky"); ok {
		t.Fatal("expected vanished element to have no offset")
	}
	if got, ok := tr.Offset("steady"); !ok || got != (Point{4, 4}) {
		t.Fatalf("expected other elements to keep updating, got %+v", got)
	}

	present = true
	tr.OnPointerMove(4, 4)
	if got, ok := tr.Offset("flaky"); !ok || got != (Point{3, 3}) {
		t.Fatalf("expected element to recover once laid out, got %+v", got)
	}
}

func TestRefreshUsesLastPointer(t *testing.T) {
	tr := NewTracker()
	top := 10
	tr.Register("card", func() (Rect, bool) {
		return Rect{Top: top, Width: 10, Height: 10}, true
	})
	tr.Refresh()
	if _, ok := tr.Offset("card"); ok {
		t.Fatal("expected no offset before any pointer event")
	}

	tr.OnPointerMove(2, 12)
	top = 0
	tr.Refresh()
	if got, _ := tr.Offset("card"); got != (Point{2, 12}) {
		t.Fatalf("expected refreshed offset, got %+v", got)
	}
}

func TestHovered(t *testing.T) {
	tr := NewTracker()
	tr.Register("card", fixed(Rect{Left: 10, Top: 10, Width: 5, Height: 2}))

	tr.OnPointerMove(12, 11)
	if !tr.Hovered("card") {
		t.Fatal("expected hover inside bounds")
	}
	tr.OnPointerMove(15, 11)
	if tr.Hovered("card") {
		t.Fatal("expected no hover on the right edge")
	}
	if got, _ := tr.Offset("card"); got != (Point{5, 1}) {
		t.Fatalf("expected unclamped offset outside bounds, got %+v", got)
	}
}

func TestClosedTrackerIgnoresEvents(t *testing.T) {
	tr := NewTracker()
	calls := 0
	tr.Register("card", func() (Rect, bool) {
		calls++
		return Rect{}, true
	})
	tr.Close()
	tr.OnPointerMove(1, 1)
	tr.Register("other", fixed(Rect{}))

	if calls != 0 {
		t.Fatalf("expected no callbacks after Close, got %d", calls)
	}
	if !tr.Closed() || len(tr.Registered()) != 0 {
		t.Fatal("expected closed tracker with no elements")
	}
}

func TestIntensity(t *testing.T) {
	r := Rect{Width: 20, Height: 6}
	p := Point{10, 3}

	if got := Intensity(p, r, 10, 3, 8); got != 1 {
		t.Fatalf("expected full intensity at pointer, got %v", got)
	}
	near := Intensity(p, r, 12, 3, 8)
	far := Intensity(p, r, 16, 3, 8)
	if !(near > far && far > 0) {
		t.Fatalf("expected falloff with distance, near=%v far=%v", near, far)
	}
	if got := Intensity(p, r, 19, 3, 8); got != 0 {
		t.Fatalf("expected zero beyond radius, got %v", got)
	}
	if got := Intensity(Point{-1, 3}, r, 0, 3, 8); got != 0 {
		t.Fatalf("expected zero when pointer is outside, got %v", got)
	}
	// vertical distance counts double
	if Intensity(p, r, 10, 5, 8) >= Intensity(p, r, 12, 3, 8) {
		t.Fatal("expected rows to fall off faster than columns")
	}
}

func TestIntensityRejectsNonFiniteRadius(t *testing.T) {
	r := Rect{Width: 20, Height: 6}
	for _, radius := range []float64{math.NaN(), math.Inf(1), 0, -3} {
		if got := Intensity(Point{10, 3}, r, 10, 3, radius); got != 0 {
			t.Fatalf("radius %v: expected zero, got %v", radius, got)
		}
	}
}
