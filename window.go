package gc9a01a

// SetAddressWindow restricts subsequent pixel writes to the inclusive
// rectangle (x0, y0)-(x1, y1) in logical coordinates and starts a memory write.
//
// Start coordinates greater than end coordinates are rejected, not swapped.
func (d *Dev) SetAddressWindow(x0, y0, x1, y1 int) error {
	if err := d.checkReady(); err != nil {
		return err
	}
	if x0 > x1 || y0 > y1 {
		return contractError("window (%d,%d)-(%d,%d) has start after end", x0, y0, x1, y1)
	}
	w, h := d.size()
	if x0 < 0 || y0 < 0 || x1 >= w || y1 >= h {
		return contractError("window (%d,%d)-(%d,%d) outside %dx%d", x0, y0, x1, y1, w, h)
	}
	x0, x1 = x0+d.dx, x1+d.dx
	y0, y1 = y0+d.dy, y1+d.dy
	if x0 < 0 || y0 < 0 || x1 > 0xFFFF || y1 > 0xFFFF {
		return contractError("window with offset (%d,%d) outside controller address range", d.dx, d.dy)
	}
	d.invalidateShadow()
	return d.setWindow(x0, y0, x1, y1)
}

// setWindow sends the controller addresses without validation.
func (d *Dev) setWindow(x0, y0, x1, y1 int) error {
	if err := d.writeCommand(cmdCASET, byte(x0>>8), byte(x0), byte(x1>>8), byte(x1)); err != nil {
		return err
	}
	if err := d.writeCommand(cmdRASET, byte(y0>>8), byte(y0), byte(y1>>8), byte(y1)); err != nil {
		return err
	}
	return d.writeCommand(cmdRAMWR)
}
