package typewriter

import (
	"context"
	"time"
)

// Frame is one observable state of a running animator.
type Frame struct {
	Index    int    `json:"index"`
	Text     string `json:"text"`
	Complete bool   `json:"complete"`
}

// Run drives a from its current state on a real timer, calling emit with
// every new frame, until ctx is done. The timer is always stopped on return.
// If emit returns false Run stops early.
func Run(ctx context.Context, a *Animator, emit func(Frame) bool) error {
	timer := time.NewTimer(a.Delay())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			next := a.Step()
			if !emit(Frame{Index: a.Index(), Text: a.Text(), Complete: a.Complete()}) {
				return nil
			}
			timer.Reset(next)
		}
	}
}
