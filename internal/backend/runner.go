package backend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"
)

// DefaultFPS is the frame rate used when none is configured.
const DefaultFPS = 60

// Ticker runs one frame of work.
type Ticker interface {
	Tick() error
}

// Runner calls a Ticker at a fixed frame rate until its context is done or a
// tick fails.
type Runner struct {
	ticker   Ticker
	throttle *throttle
	frames   atomic.Uint64
}

// NewRunner paces t at fps frames per second. A non-positive fps runs at
// DefaultFPS.
func NewRunner(t Ticker, fps int) *Runner {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return &Runner{ticker: t, throttle: newThrottle(time.Second / time.Duration(fps))}
}

// Run blocks until ctx is cancelled, which is a clean stop and returns nil, or
// until a tick returns an error.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := r.throttle.wait(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
		if err := r.ticker.Tick(); err != nil {
			return fmt.Errorf("frame %d: %w", r.frames.Load(), err)
		}
		r.frames.Add(1)
	}
}

// Frames returns the number of completed ticks.
func (r *Runner) Frames() uint64 {
	return r.frames.Load()
}
