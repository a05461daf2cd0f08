package gc9a01a

import (
	"fmt"
	"strings"

	"periph.io/x/devices/v3/gc9a01a/image565"
)

// Orientation selects how logical coordinates map onto the panel.
type Orientation uint8

const (
	Portrait         Orientation = iota // 0°
	Landscape                           // 90°, rows and columns exchanged
	PortraitSwapped                     // 180°
	LandscapeSwapped                    // 270°, rows and columns exchanged
)

var orientationNames = [...]string{"Portrait", "Landscape", "PortraitSwapped", "LandscapeSwapped"}

// Memory access control bits.
const (
	madctlMY  = 0x80 // Row address order
	madctlMX  = 0x40 // Column address order
	madctlMV  = 0x20 // Row/column exchange
	madctlBGR = 0x08 // BGR color filter panel
)

// madctlBase holds the scan direction bits of each orientation.
var madctlBase = [...]byte{
	Portrait:         0,
	Landscape:        madctlMX | madctlMV,
	PortraitSwapped:  madctlMY | madctlMX,
	LandscapeSwapped: madctlMY | madctlMV,
}

func (o Orientation) String() string {
	if o.valid() {
		return orientationNames[o]
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.valid() {
		return nil, fmt.Errorf("gc9a01a: invalid orientation %d", uint8(o))
	}
	return []byte(orientationNames[o]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Names are matched
// case-insensitively.
func (o *Orientation) UnmarshalText(b []byte) error {
	for i, n := range orientationNames {
		if strings.EqualFold(n, string(b)) {
			*o = Orientation(i)
			return nil
		}
	}
	return fmt.Errorf("gc9a01a: unknown orientation %q", b)
}

func (o Orientation) valid() bool {
	return int(o) < len(orientationNames)
}

// swapsAxes reports whether the logical width is the panel height.
func (o Orientation) swapsAxes() bool {
	return o == Landscape || o == LandscapeSwapped
}

// madctl returns the memory access control value for o and the color order.
func madctl(o Orientation, order image565.Order) byte {
	v := madctlBase[o]
	if order == image565.BGR {
		v |= madctlBGR
	}
	return v
}

// SetOrientation programs the scan direction and color order, and changes the
// logical size reported by Bounds and Size for the rotated orientations.
func (d *Dev) SetOrientation(o Orientation) error {
	if !o.valid() {
		return contractError("unknown orientation %d", uint8(o))
	}
	if err := d.checkReady(); err != nil {
		return err
	}
	if err := d.writeCommand(cmdMADCTL, madctl(o, d.order)); err != nil {
		return err
	}
	d.orientation = o
	d.next, d.last = nil, nil
	return nil
}

// Orientation returns the current orientation.
func (d *Dev) Orientation() Orientation {
	return d.orientation
}

// SetOffset sets the controller address of the logical origin. It sends
// nothing; the offset applies to subsequent address windows.
func (d *Dev) SetOffset(dx, dy int) {
	d.dx, d.dy = dx, dy
}

// size returns the logical width and height.
func (d *Dev) size() (w, h int) {
	if d.orientation.swapsAxes() {
		return d.h, d.w
	}
	return d.w, d.h
}
