// Package backend connects the menu engine to the outside world: clocks,
// encoder sources (GPIO or scripted) and the paced frame loop.
package backend

import "time"

// SystemClock counts milliseconds since it was created. The value wraps after
// roughly 49 days, which the decoder tolerates.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock starting at zero.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Millis implements input.Clock.
func (c *SystemClock) Millis() uint32 {
	return uint32(time.Since(c.start).Milliseconds())
}
