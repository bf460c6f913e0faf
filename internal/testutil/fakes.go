package testutil

// FakeClock is a manually advanced millisecond clock.
type FakeClock struct {
	Now uint32
}

// Millis returns the current fake time.
func (c *FakeClock) Millis() uint32 {
	return c.Now
}

// Advance moves the clock forward by ms milliseconds.
func (c *FakeClock) Advance(ms uint32) {
	c.Now += ms
}

// FakeSource is a scripted encoder: tests turn the counter and set the button
// level directly.
type FakeSource struct {
	Count uint16
	Down  bool
}

// Counter returns the raw quadrature counter.
func (s *FakeSource) Counter() uint16 {
	return s.Count
}

// Pressed returns the raw button level.
func (s *FakeSource) Pressed() bool {
	return s.Down
}

// Turn adds raw quadrature ticks, wrapping like the hardware counter.
func (s *FakeSource) Turn(ticks int) {
	s.Count = uint16(int(s.Count) + ticks)
}
