package gc9a01a

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"

	"periph.io/x/conn/v3/display"
	"tinygo.org/x/drivers"

	"periph.io/x/devices/v3/gc9a01a/image565"
)

// Surface is the drawing capability offered to graphics libraries: the
// logical size, immediate pixel writes and rectangle pushes from a staging
// buffer.
type Surface interface {
	drivers.Displayer
	ShowRegion(buf []byte, x, y, w, h int) error
}

var (
	_ display.Drawer = (*Dev)(nil)
	_ Surface        = (*Dev)(nil)
)

// ColorModel returns image565.Model.
func (d *Dev) ColorModel() color.Model {
	return image565.Model
}

// Bounds returns the logical display rectangle. Width and height are
// exchanged in the landscape orientations.
func (d *Dev) Bounds() image.Rectangle {
	w, h := d.size()
	return image.Rect(0, 0, w, h)
}

// Draw implements display.Drawer with differential updates.
//
// The driver keeps a copy of what it last drew. Only the bounding rectangle of
// the pixels that changed inside dst is sent. Writes made through other
// methods make the next Draw send all of dst.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if err := d.checkReady(); err != nil {
		return err
	}
	dst = dst.Intersect(d.Bounds())
	if dst.Empty() {
		return nil
	}
	if err := d.allocShadow(); err != nil {
		return err
	}
	draw.Draw(d.next, dst, src, sp, draw.Src)

	known := d.known
	r := dst
	if dst.In(known) {
		if r = d.diff(dst); r.Empty() {
			return nil
		}
	}
	d.scratch = d.next.Extract(r, d.scratch)
	if err := d.ShowRegion(d.scratch, r.Min.X, r.Min.Y, r.Dx(), r.Dy()); err != nil {
		return err
	}
	d.last.CopyRegion(d.next.Buffer(), r.Min, r.Size(), r.Min)
	if dst.In(known) {
		d.known = known
	} else {
		d.known = dst
	}
	return nil
}

// allocShadow allocates the shadow frames for the current logical size.
func (d *Dev) allocShadow() error {
	if d.next != nil {
		return nil
	}
	w, h := d.size()
	next, err := image565.NewFrameBuffer(make([]byte, w*h*2), w, h)
	if err != nil {
		return err
	}
	last, err := image565.NewFrameBuffer(make([]byte, w*h*2), w, h)
	if err != nil {
		return err
	}
	d.next, d.last, d.known = next, last, image.Rectangle{}
	return nil
}

// invalidateShadow records that the panel may differ from the last Draw.
func (d *Dev) invalidateShadow() {
	d.known = image.Rectangle{}
}

// diff returns the bounding rectangle of the pixels in r that differ between
// the shadow frames.
func (d *Dev) diff(r image.Rectangle) image.Rectangle {
	next, last := d.next.Buffer(), d.last.Buffer()
	stride := d.next.Bounds().Dx() * 2
	var out image.Rectangle
	for y := r.Min.Y; y < r.Max.Y; y++ {
		lo, hi := y*stride+r.Min.X*2, y*stride+r.Max.X*2
		a, b := next[lo:hi], last[lo:hi]
		if bytes.Equal(a, b) {
			continue
		}
		first, end := 0, len(a)
		for a[first] == b[first] {
			first++
		}
		for a[end-1] == b[end-1] {
			end--
		}
		out = out.Union(image.Rect(r.Min.X+first/2, y, r.Min.X+(end+1)/2, y+1))
	}
	return out
}

// Size implements drivers.Displayer.
func (d *Dev) Size() (x, y int16) {
	w, h := d.size()
	return int16(w), int16(h)
}

// SetPixel implements drivers.Displayer. The pixel is written immediately;
// the first error is kept and returned by Display.
func (d *Dev) SetPixel(x, y int16, c color.RGBA) {
	if err := d.WritePixel(int(x), int(y), image565.Pack(c, image565.RGB)); err != nil && d.pixelErr == nil {
		d.pixelErr = err
	}
}

// Display implements drivers.Displayer. Pixels are sent by SetPixel, so it only
// reports and clears the first error raised since the previous call.
func (d *Dev) Display() error {
	err := d.pixelErr
	d.pixelErr = nil
	return err
}

// SetRotation selects the orientation matching a clockwise rotation. Mirrored
// rotations are not supported.
func (d *Dev) SetRotation(r drivers.Rotation) error {
	switch r {
	case drivers.Rotation0:
		return d.SetOrientation(Portrait)
	case drivers.Rotation90:
		return d.SetOrientation(Landscape)
	case drivers.Rotation180:
		return d.SetOrientation(PortraitSwapped)
	case drivers.Rotation270:
		return d.SetOrientation(LandscapeSwapped)
	}
	return contractError("unsupported rotation %d", r)
}

// Rotation returns the clockwise rotation of the current orientation.
func (d *Dev) Rotation() drivers.Rotation {
	switch d.orientation {
	case Landscape:
		return drivers.Rotation90
	case PortraitSwapped:
		return drivers.Rotation180
	case LandscapeSwapped:
		return drivers.Rotation270
	}
	return drivers.Rotation0
}
