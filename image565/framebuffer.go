package image565

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/bits"

	"tinygo.org/x/drivers/pixel"
)

// FrameBuffer is a row-major RGB565 image over a borrowed byte slice. Each
// pixel takes two bytes, most significant byte first, so Buffer can be handed
// to the display without conversion.
//
// FrameBuffer never allocates pixel storage and never grows the slice it was
// given.
type FrameBuffer struct {
	img  pixel.Image[pixel.RGB565BE]
	buf  []byte
	rect image.Rectangle
}

// NewFrameBuffer wraps buf as a w×h frame buffer. buf must hold at least
// w*h*2 bytes; only the first w*h*2 bytes are used. The current contents of
// buf are kept.
func NewFrameBuffer(buf []byte, w, h int) (*FrameBuffer, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.New("image565: frame buffer dimensions must be positive")
	}
	if w > math.MaxInt16 || h > math.MaxInt16 {
		return nil, fmt.Errorf("image565: frame buffer %dx%d is too large", w, h)
	}
	n := w * h * 2
	if len(buf) < n {
		return nil, fmt.Errorf("image565: buffer holds %d bytes, need %d for %dx%d", len(buf), n, w, h)
	}
	buf = buf[:n:n]
	return &FrameBuffer{
		img:  pixel.NewImageFromBytes[pixel.RGB565BE](w, h, buf),
		buf:  buf,
		rect: image.Rect(0, 0, w, h),
	}, nil
}

// Buffer returns the pixel bytes, w*h*2 long.
func (fb *FrameBuffer) Buffer() []byte {
	return fb.buf
}

// Clear sets every pixel to c.
func (fb *FrameBuffer) Clear(c Color) {
	fb.img.FillSolidColor(toPixel(c))
}

// ColorModel returns Model.
func (fb *FrameBuffer) ColorModel() color.Model {
	return Model
}

// Bounds returns the frame buffer rectangle, anchored at the origin.
func (fb *FrameBuffer) Bounds() image.Rectangle {
	return fb.rect
}

// At implements image.Image.
func (fb *FrameBuffer) At(x, y int) color.Color {
	return fb.RGB565At(x, y)
}

// RGB565At returns the color at (x, y), or Black outside the bounds.
func (fb *FrameBuffer) RGB565At(x, y int) Color {
	if !(image.Point{X: x, Y: y}.In(fb.rect)) {
		return Black
	}
	i := fb.pixOffset(x, y)
	return Color(binary.BigEndian.Uint16(fb.buf[i:]))
}

// Set implements draw.Image. Points outside the bounds are ignored.
func (fb *FrameBuffer) Set(x, y int, c color.Color) {
	fb.SetRGB565(x, y, Pack(c, RGB))
}

// SetRGB565 sets the pixel at (x, y) without color conversion. Points outside
// the bounds are ignored.
func (fb *FrameBuffer) SetRGB565(x, y int, c Color) {
	if !(image.Point{X: x, Y: y}.In(fb.rect)) {
		return
	}
	fb.img.Set(x, y, toPixel(c))
}

// CopyRegion copies a srcSize block whose top-left corner is srcTopLeft in src
// to dstTopLeft in fb.
//
// src is a plane with the same row stride as fb (fb's width in pixels), such
// as a second frame buffer holding a background. Rows and columns that fall
// outside src, outside fb or outside the declared size are skipped. Overlapping
// src and fb storage is not detected.
func (fb *FrameBuffer) CopyRegion(src []byte, srcTopLeft, srcSize, dstTopLeft image.Point) {
	w, h := fb.rect.Dx(), fb.rect.Dy()
	// Columns valid in both planes, relative to the block's left edge.
	c0 := max(0, -srcTopLeft.X, -dstTopLeft.X)
	c1 := min(srcSize.X, w-srcTopLeft.X, w-dstTopLeft.X)
	if c0 >= c1 {
		return
	}
	for r := 0; r < srcSize.Y; r++ {
		sy, dy := srcTopLeft.Y+r, dstTopLeft.Y+r
		if sy < 0 || dy < 0 {
			continue
		}
		if dy >= h {
			break
		}
		so := (sy*w + srcTopLeft.X + c0) * 2
		if so >= len(src) {
			break
		}
		n := min((c1-c0)*2, (len(src)-so)&^1)
		do := fb.pixOffset(dstTopLeft.X+c0, dy)
		copy(fb.buf[do:do+n], src[so:so+n])
	}
}

// CopyRegions restores each region of fb from the same rectangle of src.
func (fb *FrameBuffer) CopyRegions(src []byte, regions []image.Rectangle) {
	for _, r := range regions {
		fb.CopyRegion(src, r.Min, r.Size(), r.Min)
	}
}

// Extract appends the pixels of r, row by row without padding, to dst[:0] and
// returns the result. r is clipped to the bounds first; the payload describes
// r.Intersect(fb.Bounds()).
func (fb *FrameBuffer) Extract(r image.Rectangle, dst []byte) []byte {
	r = r.Intersect(fb.rect)
	dst = dst[:0]
	if r.Empty() {
		return dst
	}
	n := r.Dx() * 2
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := fb.pixOffset(r.Min.X, y)
		dst = append(dst, fb.buf[i:i+n]...)
	}
	return dst
}

// pixOffset returns the byte offset of (x, y).
func (fb *FrameBuffer) pixOffset(x, y int) int {
	return (y*fb.rect.Dx() + x) * 2
}

// toPixel returns the pixel value whose in-memory layout is c in big-endian
// byte order.
func toPixel(c Color) pixel.RGB565BE {
	return pixel.RGB565BE(bits.ReverseBytes16(uint16(c)))
}
