package gc9a01a

import (
	"errors"
	"fmt"
	"image"
	"time"

	"github.com/jonboulle/clockwork"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"

	"periph.io/x/devices/v3/gc9a01a/image565"
)

var (
	// ErrTransport is wrapped by every error caused by a failing bus transfer
	// or control line. Failed transfers are never retried.
	ErrTransport = errors.New("gc9a01a: transport failure")
	// ErrContract is wrapped by every error caused by invalid arguments or
	// calls in the wrong state. Such errors are reported before any byte of
	// the operation is sent.
	ErrContract = errors.New("gc9a01a: invalid request")
	// ErrNotReady is returned by drawing operations before Init succeeded or
	// after Halt.
	ErrNotReady = fmt.Errorf("%w: display not initialized", ErrContract)
)

// Delayer blocks the caller for a duration. clockwork.Clock satisfies it.
type Delayer interface {
	Sleep(d time.Duration)
}

// DefaultChunkSize is the number of pixels gathered per bus transfer by the
// buffered writers.
const DefaultChunkSize = 16

// Opts is the configuration for the GC9A01A display.
type Opts struct {
	// Panel dimensions in pixels, before orientation is applied.
	W int // Width (default: 240)
	H int // Height (default: 240)

	// Color order of the panel. BGR sets the BGR bit of the memory access
	// control register.
	Order image565.Order

	// Orientation applied by NewSPI after initialization (default: Portrait).
	Orientation Orientation

	// Offset added to every address window, for panels whose visible area
	// does not start at controller address 0.
	OffsetX, OffsetY int

	// Pixels per transfer for the buffered writers (default: DefaultChunkSize).
	// 1 sends every pixel in its own transfer.
	ChunkSize int

	// Optional control lines.
	CS  gpio.PinOut // Chip select, active low (nil if driven by the SPI port)
	RST gpio.PinOut // Reset, active low (nil to use a software reset)

	// Delay provider used during reset and power-up (default: real clock).
	Delay Delayer
}

// Dev is the device handle for the GC9A01A display.
//
// Dev is not safe for concurrent use.
type Dev struct {
	// Communication
	c   conn.Conn   // SPI connection
	dc  gpio.PinOut // Data/Command pin
	cs  gpio.PinOut // Chip select (optional)
	rst gpio.PinOut // Reset pin (optional)

	delay Delayer

	// Geometry
	w, h        int
	order       image565.Order
	orientation Orientation
	dx, dy      int

	// Pixel transfer
	chunk int
	buf   []byte // Chunk staging buffer

	// Dirty regions queued for ShowRegions
	regions []image.Rectangle

	// Shadow frames for differential Draw, allocated on first use. known is
	// the rectangle where last matches the panel.
	next, last *image565.FrameBuffer
	known      image.Rectangle
	scratch    []byte

	// First error raised by SetPixel, reported by Display
	pixelErr error

	ready bool
}

// New returns a handle for a display connected through c and dc.
//
// No byte is sent: call Init before drawing. opts can be nil to use defaults
// (240x240, RGB, portrait).
func New(c conn.Conn, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if c == nil {
		return nil, errors.New("gc9a01a: connection is required")
	}
	if dc == nil {
		return nil, errors.New("gc9a01a: DC pin is required")
	}
	if opts == nil {
		opts = &Opts{}
	}
	w, h := opts.W, opts.H
	if w == 0 && h == 0 {
		w, h = 240, 240
	}
	if w <= 0 || w > 0xFFFF || h <= 0 || h > 0xFFFF {
		return nil, fmt.Errorf("gc9a01a: invalid size %dx%d", w, h)
	}
	if opts.Order != image565.RGB && opts.Order != image565.BGR {
		return nil, fmt.Errorf("gc9a01a: invalid color order %d", opts.Order)
	}
	if !opts.Orientation.valid() {
		return nil, fmt.Errorf("gc9a01a: invalid orientation %d", opts.Orientation)
	}
	chunk := opts.ChunkSize
	if chunk == 0 {
		chunk = DefaultChunkSize
	}
	if chunk < 0 {
		return nil, fmt.Errorf("gc9a01a: invalid chunk size %d", chunk)
	}
	// Respect the transfer limit of the bus driver, e.g. spidev's bufsiz.
	if l, ok := c.(conn.Limits); ok {
		if m := l.MaxTxSize() / 2; m > 0 && chunk > m {
			chunk = m
		}
	}
	delay := opts.Delay
	if delay == nil {
		delay = clockwork.NewRealClock()
	}
	return &Dev{
		c:           c,
		dc:          dc,
		cs:          opts.CS,
		rst:         opts.RST,
		delay:       delay,
		w:           w,
		h:           h,
		order:       opts.Order,
		orientation: Portrait,
		dx:          opts.OffsetX,
		dy:          opts.OffsetY,
		chunk:       chunk,
		buf:         make([]byte, 0, chunk*2),
	}, nil
}

// NewSPI connects to the display through an SPI port, initializes it and
// applies opts.Orientation and opts.Order.
//
// The SPI port is configured for 40MHz, Mode0 (CPOL=0, CPHA=0), 8-bit
// transfers. The dc (Data/Command) GPIO pin must be provided and configured as
// an output.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	// The controller's write cycle allows up to 100MHz; 40MHz is reliable on
	// common breakout wiring.
	c, err := p.Connect(40*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("gc9a01a: failed to connect SPI: %w", err)
	}
	d, err := New(c, dc, opts)
	if err != nil {
		return nil, err
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	o := Portrait
	if opts != nil {
		o = opts.Orientation
	}
	if err := d.SetOrientation(o); err != nil {
		return nil, err
	}
	return d, nil
}

// Init resets the controller, sends the power-up register sequence, leaves
// sleep mode and turns the display on. On success the display is ready for
// drawing.
//
// Init may be called again to recover from Halt or a transport failure. Call
// SetOrientation afterwards to select the scan direction and color order.
func (d *Dev) Init() error {
	d.ready = false
	if err := d.reset(); err != nil {
		return err
	}
	for _, c := range initSequence {
		if err := d.writeCommand(c.op, c.params...); err != nil {
			return err
		}
	}
	d.delay.Sleep(200 * time.Millisecond)
	// The power-up sequence leaves rows and columns unexchanged, so the
	// logical size matches Portrait until SetOrientation is called.
	d.orientation = Portrait
	// Panel memory is undefined after a reset.
	d.next, d.last = nil, nil
	d.invalidateShadow()
	d.ready = true
	return nil
}

// reset pulses the reset line, or issues a software reset when no reset pin is
// wired.
func (d *Dev) reset() error {
	if d.rst == nil {
		if err := d.writeCommand(cmdSWRESET); err != nil {
			return err
		}
		d.delay.Sleep(120 * time.Millisecond)
		return nil
	}
	for _, l := range []gpio.Level{gpio.High, gpio.Low, gpio.High} {
		if err := d.rst.Out(l); err != nil {
			return transportError(fmt.Sprintf("failed to drive RST %s", l), err)
		}
		d.delay.Sleep(10 * time.Millisecond)
	}
	return nil
}

// Halt turns the display off and puts the controller in sleep mode. Drawing
// fails with ErrNotReady until Init is called again.
func (d *Dev) Halt() error {
	d.ready = false
	if err := d.writeCommand(cmdDISPOFF); err != nil {
		return err
	}
	return d.writeCommand(cmdSLPIN)
}

// Invert enables or disables color inversion. The power-up sequence enables
// it, as most GC9A01A panels need it for correct colors.
func (d *Dev) Invert(invert bool) error {
	if err := d.checkReady(); err != nil {
		return err
	}
	op := byte(cmdINVOFF)
	if invert {
		op = cmdINVON
	}
	return d.writeCommand(op)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	w, h := d.size()
	return fmt.Sprintf("gc9a01a.Dev{%dx%d, %s}", w, h, d.orientation)
}

func (d *Dev) checkReady() error {
	if !d.ready {
		return ErrNotReady
	}
	return nil
}

func transportError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrTransport, op, err)
}

func contractError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrContract}, args...)...)
}
