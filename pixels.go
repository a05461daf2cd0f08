package gc9a01a

import (
	"iter"

	"periph.io/x/devices/v3/gc9a01a/image565"
)

// WritePixel sets the pixel at (x, y) to c.
func (d *Dev) WritePixel(x, y int, c image565.Color) error {
	if err := d.SetAddressWindow(x, y, x, y); err != nil {
		return err
	}
	return d.WriteWord(uint16(c))
}

// WriteWord sends one big-endian word to the current address window.
func (d *Dev) WriteWord(v uint16) error {
	if err := d.checkReady(); err != nil {
		return err
	}
	if err := d.startData(); err != nil {
		return err
	}
	if err := d.writeData([]byte{byte(v >> 8), byte(v)}); err != nil {
		d.release()
		return err
	}
	return d.endData()
}

// WritePixels streams colors to the current address window, one transfer per
// pixel.
func (d *Dev) WritePixels(colors iter.Seq[image565.Color]) error {
	if err := d.checkReady(); err != nil {
		return err
	}
	return d.stream(colors, 1)
}

// WritePixelsBuffered streams colors to the current address window, gathering
// up to the configured chunk size per transfer. The bytes sent are identical
// to WritePixels.
func (d *Dev) WritePixelsBuffered(colors iter.Seq[image565.Color]) error {
	if err := d.checkReady(); err != nil {
		return err
	}
	return d.stream(colors, d.chunk)
}

// SetWindowAndWritePixels sets the address window to (x0, y0)-(x1, y1) and
// streams colors into it with WritePixels.
func (d *Dev) SetWindowAndWritePixels(x0, y0, x1, y1 int, colors iter.Seq[image565.Color]) error {
	if err := d.SetAddressWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	return d.stream(colors, 1)
}

// SetWindowAndWritePixelsBuffered sets the address window to (x0, y0)-(x1, y1)
// and streams colors into it with WritePixelsBuffered.
func (d *Dev) SetWindowAndWritePixelsBuffered(x0, y0, x1, y1 int, colors iter.Seq[image565.Color]) error {
	if err := d.SetAddressWindow(x0, y0, x1, y1); err != nil {
		return err
	}
	return d.stream(colors, d.chunk)
}

// DrawImage sends a full frame of big-endian RGB565 pixels. data must be
// exactly width*height*2 bytes.
func (d *Dev) DrawImage(data []byte) error {
	if err := d.checkReady(); err != nil {
		return err
	}
	w, h := d.size()
	if len(data) != w*h*2 {
		return contractError("image is %d bytes, want %d for %dx%d", len(data), w*h*2, w, h)
	}
	return d.SetWindowAndWritePixelsBuffered(0, 0, w-1, h-1, words(data))
}

// Show sends a full frame, typically FrameBuffer.Buffer. It is DrawImage.
func (d *Dev) Show(buf []byte) error {
	return d.DrawImage(buf)
}

// Write implements io.Writer with DrawImage. p must be a full frame.
func (d *Dev) Write(p []byte) (int, error) {
	if err := d.DrawImage(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// ShowRegion sends the w×h rectangle whose top-left corner is (x, y). buf
// holds only that rectangle's pixels, row by row, and must be exactly w*h*2
// bytes. FrameBuffer.Extract produces such a payload.
func (d *Dev) ShowRegion(buf []byte, x, y, w, h int) error {
	if err := d.checkReady(); err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return contractError("empty region %dx%d", w, h)
	}
	if len(buf) != w*h*2 {
		return contractError("region payload is %d bytes, want %d for %dx%d", len(buf), w*h*2, w, h)
	}
	return d.SetWindowAndWritePixelsBuffered(x, y, x+w-1, y+h-1, words(buf))
}

// FillRectangle paints the w×h rectangle whose top-left corner is (x, y) with
// c.
func (d *Dev) FillRectangle(x, y, w, h int, c image565.Color) error {
	if err := d.checkReady(); err != nil {
		return err
	}
	if w <= 0 || h <= 0 {
		return contractError("empty rectangle %dx%d", w, h)
	}
	return d.SetWindowAndWritePixelsBuffered(x, y, x+w-1, y+h-1, solid(c, w*h))
}

// ClearScreen paints the whole display with c.
func (d *Dev) ClearScreen(c image565.Color) error {
	w, h := d.size()
	return d.FillRectangle(0, 0, w, h, c)
}
