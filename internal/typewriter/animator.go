package typewriter

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNoLines is returned when an animator is built without any lines.
	ErrNoLines = errors.New("typewriter: line sequence is empty")
	// ErrInvalidDelay is returned for a zero or negative delay.
	ErrInvalidDelay = errors.New("typewriter: delay must be positive")
)

// Animator reveals a looping sequence of lines one character at a time.
// It holds no timers; callers drive it by calling Step after each Delay.
type Animator struct {
	lines      [][]rune
	charDelay  time.Duration
	pauseDelay time.Duration

	index    int
	revealed int
}

// New validates the sequence and delays and returns an animator positioned
// at the start of the first line.
func New(lines []string, charDelay, pauseDelay time.Duration) (*Animator, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	if charDelay <= 0 {
		return nil, fmt.Errorf("char delay %v: %w", charDelay, ErrInvalidDelay)
	}
	if pauseDelay <= 0 {
		return nil, fmt.Errorf("pause delay %v: %w", pauseDelay, ErrInvalidDelay)
	}

	runes := make([][]rune, len(lines))
	for i, l := range lines {
		runes[i] = []rune(l)
	}
	return &Animator{
		lines:      runes,
		charDelay:  charDelay,
		pauseDelay: pauseDelay,
	}, nil
}

// Reset returns to line 0 with an empty buffer.
func (a *Animator) Reset() {
	a.index = 0
	a.revealed = 0
}

// Index is the current line index.
func (a *Animator) Index() int { return a.index }

// Len is the number of lines in the sequence.
func (a *Animator) Len() int { return len(a.lines) }

// Line returns the full text of the current line.
func (a *Animator) Line() string { return string(a.lines[a.index]) }

// Text returns the revealed prefix of the current line.
func (a *Animator) Text() string {
	return string(a.lines[a.index][:a.revealed])
}

// History returns the full text of every line before the current one in
// this pass through the sequence.
func (a *Animator) History() []string {
	out := make([]string, a.index)
	for i := range out {
		out[i] = string(a.lines[i])
	}
	return out
}

// Complete reports whether the whole current line is revealed.
func (a *Animator) Complete() bool {
	return a.revealed >= len(a.lines[a.index])
}

// Delay is how long to wait before the next Step.
func (a *Animator) Delay() time.Duration {
	if a.Complete() {
		return a.pauseDelay
	}
	return a.charDelay
}

// Step applies one scheduled event: either reveal the next character, or,
// once the pause after a full line has elapsed, move to the next line with
// an empty buffer. It returns the delay until the following Step.
func (a *Animator) Step() time.Duration {
	if a.Complete() {
		a.index = (a.index + 1) % len(a.lines)
		a.revealed = 0
		// Empty lines go straight into their pause.
		return a.Delay()
	}
	a.revealed++
	return a.Delay()
}
