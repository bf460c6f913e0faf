package ui

// FPSMeter counts presented frames over one second windows.
type FPSMeter struct {
	start   uint32
	count   int
	fps     int
	started bool
}

// Frame records one presented frame at now milliseconds.
func (m *FPSMeter) Frame(now uint32) {
	if !m.started {
		m.start = now
		m.started = true
	}
	m.count++
	if elapsed := now - m.start; elapsed >= 1000 {
		m.fps = int(uint32(m.count) * 1000 / elapsed)
		m.count = 0
		m.start = now
	}
}

// FPS returns the rate measured over the last complete window.
func (m *FPSMeter) FPS() int {
	return m.fps
}
