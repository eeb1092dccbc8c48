package follower

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// Epsilon is the distance and speed below which the follower snaps onto
// its target and stops moving.
const Epsilon = 0.01

// ErrInvalidSpring is returned for unusable frame rate or spring constants.
var ErrInvalidSpring = errors.New("follower: invalid spring parameters")

// Follower eases a displayed position toward a target with a damped spring
// of unit mass. Stiffness k and damping c give an angular frequency of
// sqrt(k) and a damping ratio of c/(2*sqrt(k)); c = 2*sqrt(k) is critical.
type Follower struct {
	spring   harmonica.Spring
	interval time.Duration

	x, y    float64
	vx, vy  float64
	tx, ty  float64
	settled bool
}

// New builds a follower at rest at the origin.
func New(fps int, stiffness, damping float64) (*Follower, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("fps %d: %w", fps, ErrInvalidSpring)
	}
	if stiffness <= 0 || math.IsNaN(stiffness) || math.IsInf(stiffness, 0) {
		return nil, fmt.Errorf("stiffness %v: %w", stiffness, ErrInvalidSpring)
	}
	if damping < 0 || math.IsNaN(damping) || math.IsInf(damping, 0) {
		return nil, fmt.Errorf("damping %v: %w", damping, ErrInvalidSpring)
	}
	omega := math.Sqrt(stiffness)
	return &Follower{
		spring:   harmonica.NewSpring(harmonica.FPS(fps), omega, damping/(2*omega)),
		interval: time.Second / time.Duration(fps),
		settled:  true,
	}, nil
}

// Interval is the time between frames.
func (f *Follower) Interval() time.Duration { return f.interval }

// SetTarget moves the target immediately; the displayed position catches
// up over the following frames.
func (f *Follower) SetTarget(x, y float64) {
	if x == f.tx && y == f.ty {
		return
	}
	f.tx, f.ty = x, y
	f.settled = false
}

// Target is the current target position.
func (f *Follower) Target() (x, y float64) { return f.tx, f.ty }

// Position is the displayed position.
func (f *Follower) Position() (x, y float64) { return f.x, f.y }

// Velocity is the current velocity per second.
func (f *Follower) Velocity() (vx, vy float64) { return f.vx, f.vy }

// Cell is the displayed position rounded to the nearest screen cell.
func (f *Follower) Cell() (x, y int) {
	return int(math.Round(f.x)), int(math.Round(f.y))
}

// Settled reports whether the follower is resting on its target.
func (f *Follower) Settled() bool { return f.settled }

// Step advances one frame. It returns false when already settled.
func (f *Follower) Step() bool {
	if f.settled {
		return false
	}
	f.x, f.vx = f.spring.Update(f.x, f.vx, f.tx)
	f.y, f.vy = f.spring.Update(f.y, f.vy, f.ty)

	if math.Abs(f.x-f.tx) < Epsilon && math.Abs(f.y-f.ty) < Epsilon &&
		math.Abs(f.vx) < Epsilon && math.Abs(f.vy) < Epsilon {
		f.x, f.y = f.tx, f.ty
		f.vx, f.vy = 0, 0
		f.settled = true
	}
	return true
}
