package backend

import (
	"sync"

	"github.com/atomicstack/knobmenu/internal/input"
)

const (
	clickHold = 60
	clickGap  = 100
	longHold  = input.DefaultLongPress + 100
	// gestureGap separates queued gestures so the decoder classifies each one
	// on its own.
	gestureGap = input.DefaultDoubleClickGap + 2*input.DefaultDebounce
)

type pulse struct {
	start, end uint32
}

// VirtualEncoder is an input.Source driven by scripted gestures. Rotation is
// applied to the counter immediately; button gestures are queued as timed
// presses so the real decoder classifies them.
type VirtualEncoder struct {
	clock   input.Clock
	quantum int

	mu     sync.Mutex
	count  uint16
	pulses []pulse
}

// NewVirtualEncoder returns a source whose detents are quantum ticks wide.
func NewVirtualEncoder(clock input.Clock, quantum int) *VirtualEncoder {
	if quantum <= 0 {
		quantum = input.DefaultQuantum
	}
	return &VirtualEncoder{clock: clock, quantum: quantum}
}

// Counter implements input.Source.
func (v *VirtualEncoder) Counter() uint16 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.count
}

// Pressed implements input.Source.
func (v *VirtualEncoder) Pressed() bool {
	now := v.clock.Millis()
	v.mu.Lock()
	defer v.mu.Unlock()
	for len(v.pulses) > 0 && !before(now, v.pulses[0].end) {
		v.pulses = v.pulses[1:]
	}
	return len(v.pulses) > 0 && !before(now, v.pulses[0].start)
}

// Turn rotates by detents; negative is counter-clockwise.
func (v *VirtualEncoder) Turn(detents int) {
	v.mu.Lock()
	v.count = uint16(int(v.count) + detents*v.quantum)
	v.mu.Unlock()
}

// Click queues a short press.
func (v *VirtualEncoder) Click() {
	v.schedule(clickHold)
}

// DoubleClick queues two short presses inside the double-click gap.
func (v *VirtualEncoder) DoubleClick() {
	v.schedule(clickHold, clickGap, clickHold)
}

// LongPress queues a press held past the long-press threshold.
func (v *VirtualEncoder) LongPress() {
	v.schedule(longHold)
}

// Busy reports whether queued presses are still pending.
func (v *VirtualEncoder) Busy() bool {
	now := v.clock.Millis()
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pulses) > 0 && before(now, v.pulses[len(v.pulses)-1].end)
}

// schedule appends alternating press and release durations.
func (v *VirtualEncoder) schedule(durations ...uint32) {
	now := v.clock.Millis()
	v.mu.Lock()
	defer v.mu.Unlock()
	start := now
	if n := len(v.pulses); n > 0 {
		if next := v.pulses[n-1].end + gestureGap; before(start, next) {
			start = next
		}
	}
	for i, d := range durations {
		if i%2 == 0 {
			v.pulses = append(v.pulses, pulse{start: start, end: start + d})
		}
		start += d
	}
}

// before compares wrapping millisecond timestamps.
func before(a, b uint32) bool {
	return int32(a-b) < 0
}
