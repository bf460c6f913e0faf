package input

// Source provides raw encoder samples.
type Source interface {
	// Counter returns the free-running quadrature counter. It wraps at 16 bits.
	Counter() uint16
	// Pressed reports the raw button level, true while held down.
	Pressed() bool
}

// Clock is a monotonic millisecond source. Values may wrap.
type Clock interface {
	Millis() uint32
}

// Event is a classified button gesture.
type Event int

const (
	EventNone Event = iota
	EventClick
	EventDoubleClick
	EventLongPress
)

func (e Event) String() string {
	switch e {
	case EventClick:
		return "click"
	case EventDoubleClick:
		return "double-click"
	case EventLongPress:
		return "long-press"
	default:
		return "none"
	}
}

type buttonState int

const (
	stateIdle buttonState = iota
	stateDebounce
	statePressed
	stateReleasePending
	stateDebounce2
	stateWaitRelease
)

func (s buttonState) String() string {
	switch s {
	case stateDebounce:
		return "debounce"
	case statePressed:
		return "pressed"
	case stateReleasePending:
		return "release-pending"
	case stateDebounce2:
		return "debounce2"
	case stateWaitRelease:
		return "wait-release"
	default:
		return "idle"
	}
}

// Options tunes the decoder. Zero fields take the defaults below.
type Options struct {
	Quantum        int
	StepFilter     uint32
	Debounce       uint32
	LongPress      uint32
	DoubleClickGap uint32
}

const (
	DefaultQuantum        = 4
	DefaultStepFilter     = 10
	DefaultDebounce       = 20
	DefaultLongPress      = 800
	DefaultDoubleClickGap = 300
)

func (o Options) withDefaults() Options {
	if o.Quantum <= 0 {
		o.Quantum = DefaultQuantum
	}
	if o.StepFilter == 0 {
		o.StepFilter = DefaultStepFilter
	}
	if o.Debounce == 0 {
		o.Debounce = DefaultDebounce
	}
	if o.LongPress == 0 {
		o.LongPress = DefaultLongPress
	}
	if o.DoubleClickGap == 0 {
		o.DoubleClickGap = DefaultDoubleClickGap
	}
	return o
}

// Decoder converts encoder samples into rotation steps and button events.
type Decoder struct {
	src   Source
	clock Clock
	opts  Options

	ticks     int32
	lastCount uint16
	lastStep  uint32
	stepped   bool

	state      buttonState
	since      uint32
	pressedAt  uint32
	releasedAt uint32

	pending Event
}

// NewDecoder primes a decoder with the current counter value so that
// rotation performed before construction is ignored.
func NewDecoder(src Source, clock Clock, opts Options) *Decoder {
	return &Decoder{
		src:       src,
		clock:     clock,
		opts:      opts.withDefaults(),
		lastCount: src.Counter(),
	}
}

// Options returns the effective options.
func (d *Decoder) Options() Options {
	return d.opts
}

// Scan samples the source once.
func (d *Decoder) Scan() {
	count := d.src.Counter()
	d.ticks += int32(int16(count - d.lastCount))
	d.lastCount = count
	d.stepButton(d.src.Pressed(), d.clock.Millis())
}

// RotationDelta returns the whole detents accumulated since the last call.
// Leftover ticks carry over. A single-detent result arriving within the step
// filter window of the previous accepted step is dropped.
func (d *Decoder) RotationDelta() int {
	q := int32(d.opts.Quantum)
	steps := d.ticks / q
	if steps == 0 {
		return 0
	}
	d.ticks -= steps * q
	now := d.clock.Millis()
	if (steps == 1 || steps == -1) && d.stepped && now-d.lastStep < d.opts.StepFilter {
		return 0
	}
	d.lastStep = now
	d.stepped = true
	return int(steps)
}

// Event returns and clears the pending button event.
func (d *Decoder) Event() Event {
	ev := d.pending
	d.pending = EventNone
	return ev
}

// Pending reports the unconsumed event without clearing it.
func (d *Decoder) Pending() Event {
	return d.pending
}

func (d *Decoder) enter(state buttonState, now uint32) {
	d.state = state
	d.since = now
}

func (d *Decoder) emit(ev Event) {
	d.pending = ev
}

func (d *Decoder) stepButton(pressed bool, now uint32) {
	switch d.state {
	case stateIdle:
		if pressed {
			d.pressedAt = now
			d.enter(stateDebounce, now)
		}
	case stateDebounce:
		if !pressed {
			d.enter(stateIdle, now)
			return
		}
		if now-d.since >= d.opts.Debounce {
			d.enter(statePressed, now)
		}
	case statePressed:
		if !pressed {
			d.releasedAt = now
			d.enter(stateReleasePending, now)
			return
		}
		if now-d.pressedAt >= d.opts.LongPress {
			d.emit(EventLongPress)
			d.enter(stateWaitRelease, now)
		}
	case stateReleasePending:
		if pressed {
			d.enter(stateDebounce2, now)
			return
		}
		if now-d.releasedAt >= d.opts.DoubleClickGap {
			d.emit(EventClick)
			d.enter(stateIdle, now)
		}
	case stateDebounce2:
		if !pressed {
			// bounce: fall back without resetting the release time
			d.state = stateReleasePending
			return
		}
		if now-d.since >= d.opts.Debounce {
			d.emit(EventDoubleClick)
			d.enter(stateWaitRelease, now)
		}
	case stateWaitRelease:
		if !pressed {
			d.enter(stateIdle, now)
		}
	}
}
