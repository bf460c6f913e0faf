// Package mlcd drives Sharp memory LCDs (LS013B7DH03 and relatives) over SPI.
//
// The panel keeps its image without refresh; the host rewrites only the lines
// that changed and toggles the VCOM bit periodically to avoid DC bias. Chip
// select is active high, so the SPI port is opened with NoCS and SCS is driven
// from a GPIO. Bits go out MSB first; the panel expects LSB-first addresses
// and pixels, so every byte is bit-reversed before transfer.
package mlcd

import (
	"errors"
	"fmt"
	"image"
	"math/bits"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"github.com/atomicstack/knobmenu/internal/canvas"
	"github.com/atomicstack/knobmenu/internal/logging/events"
)

// Mode bits of the first byte of every transfer, in panel (LSB-first) order.
const (
	cmdWrite = 0x01
	cmdVCOM  = 0x02
	cmdClear = 0x04
)

const (
	// DefaultHz is the SPI clock. The panel is rated to 1.1 MHz.
	DefaultHz = physic.MegaHertz
	// VCOMPeriod is the longest interval between polarity toggles.
	VCOMPeriod = 500 * time.Millisecond
)

// Opts is the configuration for the display.
type Opts struct {
	W int // Width in pixels (default 128, multiple of 8, at most 400)
	H int // Height in pixels (default 128, at most 255)

	CS   gpio.PinOut // Chip select, active high (required)
	DISP gpio.PinOut // Display enable (optional)

	Hz physic.Frequency // SPI clock (default DefaultHz)
}

// Dev is the device handle for a memory LCD.
type Dev struct {
	c    conn.Conn
	cs   gpio.PinOut
	disp gpio.PinOut

	rect   image.Rectangle
	stride int
	last   []byte // ink bits of the panel contents, LSB first
	buf    []byte

	vcom     bool
	lastVCOM time.Time
	now      func() time.Time
	halted   bool
}

// NewSPI connects to the panel, enables it and clears it.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		return nil, errors.New("mlcd: options are required")
	}
	o := *opts
	if o.W == 0 {
		o.W = 128
	}
	if o.H == 0 {
		o.H = 128
	}
	if o.Hz == 0 {
		o.Hz = DefaultHz
	}
	if o.W < 8 || o.W%8 != 0 || o.W > 400 {
		return nil, errors.New("mlcd: width must be a multiple of 8 between 8 and 400")
	}
	if o.H <= 0 || o.H > 255 {
		return nil, errors.New("mlcd: height must be between 1 and 255")
	}
	if o.CS == nil {
		return nil, errors.New("mlcd: chip select pin is required")
	}
	c, err := p.Connect(o.Hz, spi.Mode0|spi.NoCS, 8)
	if err != nil {
		return nil, fmt.Errorf("mlcd: connect: %w", err)
	}
	d := newDev(c, &o)
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

func newDev(c conn.Conn, o *Opts) *Dev {
	stride := o.W / 8
	return &Dev{
		c:      c,
		cs:     o.CS,
		disp:   o.DISP,
		rect:   image.Rect(0, 0, o.W, o.H),
		stride: stride,
		last:   make([]byte, stride*o.H),
		buf:    make([]byte, 0, 2+o.H*(stride+2)),
		now:    time.Now,
	}
}

func (d *Dev) init() error {
	if err := d.cs.Out(gpio.Low); err != nil {
		return fmt.Errorf("mlcd: failed to pull SCS low: %w", err)
	}
	if d.disp != nil {
		if err := d.disp.Out(gpio.High); err != nil {
			return fmt.Errorf("mlcd: failed to enable DISP: %w", err)
		}
	}
	if err := d.Clear(); err != nil {
		return err
	}
	events.Display.Open(d.String(), d.rect.Dx(), d.rect.Dy())
	return nil
}

// Bounds returns the panel size.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("mlcd.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// Clear blanks the panel memory.
func (d *Dev) Clear() error {
	if d.halted {
		return errors.New("mlcd: halted")
	}
	if err := d.tx([]byte{d.mode(cmdClear), 0}); err != nil {
		return err
	}
	clear(d.last)
	return nil
}

// Present implements canvas.Sink. Only lines that differ from the panel are
// sent. When nothing changed the VCOM bit is still toggled once per
// VCOMPeriod.
func (d *Dev) Present(frame *canvas.Bitmap) error {
	if d.halted {
		return errors.New("mlcd: halted")
	}
	if frame == nil || frame.Bounds() != d.rect {
		return errors.New("mlcd: frame does not match panel size")
	}
	now := d.now()
	d.buf = d.buf[:0]
	d.buf = append(d.buf, 0)
	lines := 0
	for y := 0; y < d.rect.Dy(); y++ {
		row := frame.Row(y)
		last := d.last[y*d.stride : (y+1)*d.stride]
		if string(row) == string(last) {
			continue
		}
		d.buf = append(d.buf, bits.Reverse8(byte(y+1)))
		for _, b := range row {
			// panel bit 1 is white; canvas bit 1 is ink
			d.buf = append(d.buf, bits.Reverse8(^b))
		}
		d.buf = append(d.buf, 0)
		lines++
	}
	if lines == 0 {
		if now.Sub(d.lastVCOM) < VCOMPeriod {
			return nil
		}
		return d.ToggleVCOM()
	}
	d.flipVCOM(now)
	d.buf[0] = d.mode(cmdWrite)
	d.buf = append(d.buf, 0)
	if err := d.tx(d.buf); err != nil {
		events.Display.Error(err)
		return err
	}
	// the shadow only tracks lines the panel acknowledged
	for y := 0; y < d.rect.Dy(); y++ {
		copy(d.last[y*d.stride:(y+1)*d.stride], frame.Row(y))
	}
	events.Display.Flush(lines)
	return nil
}

// ToggleVCOM flips the panel polarity without writing pixels.
func (d *Dev) ToggleVCOM() error {
	if d.halted {
		return errors.New("mlcd: halted")
	}
	d.flipVCOM(d.now())
	return d.tx([]byte{d.mode(0), 0})
}

// Halt clears the panel and disables it.
func (d *Dev) Halt() error {
	if d.halted {
		return nil
	}
	err := d.Clear()
	d.halted = true
	if d.disp != nil {
		if derr := d.disp.Out(gpio.Low); derr != nil && err == nil {
			err = fmt.Errorf("mlcd: failed to disable DISP: %w", derr)
		}
	}
	return err
}

func (d *Dev) flipVCOM(now time.Time) {
	d.vcom = !d.vcom
	d.lastVCOM = now
}

// mode returns the first byte of a transfer with the VCOM bit applied.
func (d *Dev) mode(cmd byte) byte {
	if d.vcom {
		cmd |= cmdVCOM
	}
	return bits.Reverse8(cmd)
}

func (d *Dev) tx(w []byte) error {
	if err := d.cs.Out(gpio.High); err != nil {
		return fmt.Errorf("mlcd: failed to raise SCS: %w", err)
	}
	err := d.c.Tx(w, nil)
	if lerr := d.cs.Out(gpio.Low); lerr != nil && err == nil {
		return fmt.Errorf("mlcd: failed to lower SCS: %w", lerr)
	}
	if err != nil {
		return fmt.Errorf("mlcd: tx: %w", err)
	}
	return nil
}
