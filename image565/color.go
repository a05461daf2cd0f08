package image565

import (
	"image/color"
)

// Color is a 16-bit RGB565 color. Red occupies the high five bits, green the
// middle six and blue the low five.
type Color uint16

// Common colors.
const (
	Black Color = 0x0000
	White Color = 0xFFFF
	Red   Color = 0xF800
	Green Color = 0x07E0
	Blue  Color = 0x001F
)

// Order is the placement of the red and blue channels inside a packed word.
type Order uint8

const (
	// RGB places red in the high bits.
	RGB Order = iota
	// BGR places blue in the high bits.
	BGR
)

func (o Order) String() string {
	switch o {
	case RGB:
		return "RGB"
	case BGR:
		return "BGR"
	}
	return "Order(?)"
}

// New packs 8-bit channels into a Color, keeping the most significant bits of
// each channel.
func New(r, g, b uint8) Color {
	return Color(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3)
}

// RGBA implements color.Color. The value is always interpreted in RGB order.
func (c Color) RGBA() (r, g, b, a uint32) {
	r5 := uint32(c>>11) & 0x1F
	g6 := uint32(c>>5) & 0x3F
	b5 := uint32(c) & 0x1F
	// Replicate the top bits into the low bits so 0x1F maps to 0xFF.
	r8 := r5<<3 | r5>>2
	g8 := g6<<2 | g6>>4
	b8 := b5<<3 | b5>>2
	return r8 * 0x101, g8 * 0x101, b8 * 0x101, 0xFFFF
}

// Pack converts any color to a packed word using the given channel order.
// Alpha is ignored.
func Pack(c color.Color, o Order) Color {
	var v Color
	if p, ok := c.(Color); ok {
		v = p
	} else {
		r, g, b, _ := c.RGBA()
		v = New(uint8(r>>8), uint8(g>>8), uint8(b>>8))
	}
	if o == BGR {
		v = v.swapRB()
	}
	return v
}

// swapRB exchanges the red and blue fields.
func (c Color) swapRB() Color {
	return (c&0x1F)<<11 | c&0x07E0 | c>>11
}

func toColor(c color.Color) color.Color {
	return Pack(c, RGB)
}

// Model converts colors to Color in RGB order.
var Model = color.ModelFunc(toColor)
