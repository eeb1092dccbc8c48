// Package glow tracks the pointer relative to registered page elements so
// the renderer can centre a radial highlight on it.
package glow

import "math"

// Point is a position in screen cells.
type Point struct {
	X, Y int
}

// Rect is an element's on-screen bounds.
type Rect struct {
	Left, Top, Width, Height int
}

// Contains reports whether the local offset p falls inside a w×h element.
func (r Rect) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < r.Width && p.Y < r.Height
}

// BoundsFunc returns an element's current bounds, or ok=false when the
// element is not laid out right now.
type BoundsFunc func() (r Rect, ok bool)

type element struct {
	bounds BoundsFunc
	offset Point
	valid  bool
}

// Tracker owns the pointer subscription for one mounted page. It is not
// safe for concurrent use; Bubble Tea calls it from Update only.
type Tracker struct {
	elements map[string]*element
	order    []string
	pointer  Point
	seen     bool
	closed   bool
}

// NewTracker returns an open tracker with no elements.
func NewTracker() *Tracker {
	return &Tracker{elements: make(map[string]*element)}
}

// Register adds or replaces an element. If the pointer has already moved,
// the element gets an offset straight away.
func (t *Tracker) Register(id string, bounds BoundsFunc) {
	if t.closed || bounds == nil {
		return
	}
	e, ok := t.elements[id]
	if !ok {
		e = &element{}
		t.elements[id] = e
		t.order = append(t.order, id)
	}
	e.bounds = bounds
	e.valid = false
	if t.seen {
		t.refresh(e)
	}
}

// Deregister removes an element and forgets its offset.
func (t *Tracker) Deregister(id string) {
	if _, ok := t.elements[id]; !ok {
		return
	}
	delete(t.elements, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Registered lists element ids in registration order.
func (t *Tracker) Registered() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// OnPointerMove records the pointer and recomputes every element's local
// offset from freshly queried bounds.
func (t *Tracker) OnPointerMove(x, y int) {
	if t.closed {
		return
	}
	t.pointer = Point{X: x, Y: y}
	t.seen = true
	for _, id := range t.order {
		t.refresh(t.elements[id])
	}
}

// Refresh recomputes offsets against the last pointer position, for when
// layout moves under a still pointer (scrolling, resizing).
func (t *Tracker) Refresh() {
	if t.closed || !t.seen {
		return
	}
	for _, id := range t.order {
		t.refresh(t.elements[id])
	}
}

func (t *Tracker) refresh(e *element) {
	r, ok := e.bounds()
	if !ok {
		e.valid = false
		return
	}
	e.offset = Point{X: t.pointer.X - r.Left, Y: t.pointer.Y - r.Top}
	e.valid = true
}

// Offset returns the element's last published local offset.
func (t *Tracker) Offset(id string) (Point, bool) {
	e, ok := t.elements[id]
	if !ok || !e.valid {
		return Point{}, false
	}
	return e.offset, true
}

// Pointer returns the last pointer position, if any event has arrived.
func (t *Tracker) Pointer() (Point, bool) {
	return t.pointer, t.seen
}

// Hovered reports whether the pointer is inside the element's bounds.
func (t *Tracker) Hovered(id string) bool {
	e, ok := t.elements[id]
	if !ok || !e.valid {
		return false
	}
	r, ok := e.bounds()
	return ok && r.Contains(e.offset)
}

// Close drops every element; later calls become no-ops.
func (t *Tracker) Close() {
	t.closed = true
	t.elements = make(map[string]*element)
	t.order = nil
}

// Closed reports whether Close has been called.
func (t *Tracker) Closed() bool { return t.closed }

// Intensity is the highlight strength in [0,1] at cell (x,y) of an element
// for a pointer at local offset p. Terminal cells are about twice as tall
// as they are wide, so vertical distance counts double. It is zero when
// the pointer is outside the element.
func Intensity(p Point, r Rect, x, y int, radius float64) float64 {
	if !(radius > 0) || math.IsInf(radius, 0) || !r.Contains(p) {
		return 0
	}
	dx := float64(x - p.X)
	dy := float64(y-p.Y) * 2
	d := math.Hypot(dx, dy)
	if d >= radius {
		return 0
	}
	// Quadratic falloff approximates the CSS gradient's soft edge.
	f := 1 - d/radius
	return f * f
}
