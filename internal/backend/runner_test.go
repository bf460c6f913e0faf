package backend

import (
	"context"
	"errors"
	"testing"
	"time"
)

type countingTicker struct {
	n      int
	stopAt int
	cancel context.CancelFunc
	err    error
}

func (c *countingTicker) Tick() error {
	c.n++
	if c.err != nil {
		return c.err
	}
	if c.n == c.stopAt {
		c.cancel()
	}
	return nil
}

func TestRunnerStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ticker := &countingTicker{stopAt: 5, cancel: cancel}
	r := NewRunner(ticker, 500)
	if err := r.Run(ctx); err != nil {
		t.Fatalf("expected clean stop, got %v", err)
	}
	if r.Frames() != 5 || ticker.n != 5 {
		t.Fatalf("expected 5 frames, got %d (ticks %d)", r.Frames(), ticker.n)
	}
}

func TestRunnerReturnsTickError(t *testing.T) {
	boom := errors.New("bus fault")
	r := NewRunner(&countingTicker{err: boom}, 0)
	err := r.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped tick error, got %v", err)
	}
	if r.Frames() != 0 {
		t.Fatalf("expected no completed frames, got %d", r.Frames())
	}
}

func TestThrottlePacesCalls(t *testing.T) {
	th := newThrottle(20 * time.Millisecond)
	ctx := context.Background()
	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := th.wait(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 40*time.Millisecond {
		t.Fatalf("expected at least 40ms for three paced calls, got %v", elapsed)
	}
}

func TestThrottleHonoursContext(t *testing.T) {
	th := newThrottle(time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	if err := th.wait(ctx); err != nil {
		t.Fatalf("expected first slot immediately, got %v", err)
	}
	cancel()
	if err := th.wait(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
	var nilThrottle *throttle
	if err := nilThrottle.wait(context.Background()); err != nil {
		t.Fatalf("expected nil throttle to be a no-op, got %v", err)
	}
}
