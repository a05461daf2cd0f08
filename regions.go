package gc9a01a

import (
	"image"
	"slices"

	"periph.io/x/devices/v3/gc9a01a/image565"
)

// StoreRegion queues r for the next ShowRegions. r must be non-empty and lie
// within Bounds.
func (d *Dev) StoreRegion(r image.Rectangle) error {
	if r.Empty() {
		return contractError("empty region %v", r)
	}
	if !r.In(d.Bounds()) {
		return contractError("region %v outside %v", r, d.Bounds())
	}
	d.regions = append(d.regions, r)
	return nil
}

// Regions returns a copy of the queued regions, oldest first.
func (d *Dev) Regions() []image.Rectangle {
	return slices.Clone(d.regions)
}

// ClearRegions empties the region queue.
func (d *Dev) ClearRegions() {
	d.regions = d.regions[:0]
}

// ShowRegions sends every queued region from fb, a full-frame buffer with the
// logical size of the display. The queue is kept; callers typically restore
// the regions from a background with FrameBuffer.CopyRegions and then call
// ClearRegions.
func (d *Dev) ShowRegions(fb *image565.FrameBuffer) error {
	if err := d.checkReady(); err != nil {
		return err
	}
	b := d.Bounds()
	if fb.Bounds() != b {
		return contractError("frame buffer %v does not match display %v", fb.Bounds(), b)
	}
	for _, r := range d.regions {
		if !r.In(b) {
			return contractError("region %v outside %v", r, b)
		}
	}
	for _, r := range d.regions {
		d.scratch = fb.Extract(r, d.scratch)
		if err := d.ShowRegion(d.scratch, r.Min.X, r.Min.Y, r.Dx(), r.Dy()); err != nil {
			return err
		}
	}
	return nil
}
