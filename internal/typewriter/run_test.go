package typewriter

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestRunEmitsFramesInOrder(t *testing.T) {
	defer goleak.VerifyNone(t)

	a, err := New([]string{"abc", "de"}, time.Millisecond, 2*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	var got []string
	err = Run(context.Background(), a, func(f Frame) bool {
		if f.Text != "" {
			got = append(got, f.Text)
		}
		return len(got) < 5
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"a", "ab", "abc", "d", "de"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("frame %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	a, err := New([]string{"abc"}, time.Millisecond, time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	frames := 0
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, a, func(Frame) bool {
			frames++
			if frames == 3 {
				cancel()
			}
			return true
		})
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	after := a.Text()
	time.Sleep(10 * time.Millisecond)
	if a.Text() != after {
		t.Fatal("animator mutated after Run returned")
	}
}
