package gc9a01a

import (
	"periph.io/x/conn/v3/gpio"
)

// Command sends an opcode followed by its parameters, framed like every other
// command. It can be used for registers the driver does not cover, such as
// the tearing effect line or gamma tuning.
//
// The address window and memory access control opcodes are rejected: use
// SetAddressWindow and SetOrientation, which keep the driver state in step.
func (d *Dev) Command(op byte, params ...byte) error {
	if err := d.checkReady(); err != nil {
		return err
	}
	switch op {
	case cmdCASET, cmdRASET, cmdRAMWR, cmdMADCTL:
		return contractError("command %#02x is managed by the driver", op)
	}
	return d.writeCommand(op, params...)
}

// writeCommand sends op with DC low, then params with DC high, inside one chip
// select assertion. The chip is released even when a transfer fails.
func (d *Dev) writeCommand(op byte, params ...byte) error {
	if err := d.selectChip(); err != nil {
		return err
	}
	if err := d.sendCommand(op, params); err != nil {
		d.release()
		return err
	}
	return d.deselectChip()
}

func (d *Dev) sendCommand(op byte, params []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return transportError("failed to pull DC low", err)
	}
	if err := d.c.Tx([]byte{op}, nil); err != nil {
		return transportError("failed to send command", err)
	}
	if len(params) > 0 {
		if err := d.dc.Out(gpio.High); err != nil {
			return transportError("failed to pull DC high", err)
		}
		if err := d.c.Tx(params, nil); err != nil {
			return transportError("failed to send parameters", err)
		}
	}
	return nil
}

// startData selects the chip for a pixel stream.
func (d *Dev) startData() error {
	if err := d.selectChip(); err != nil {
		return err
	}
	if err := d.dc.Out(gpio.High); err != nil {
		d.release()
		return transportError("failed to pull DC high", err)
	}
	return nil
}

// writeData sends b as-is. startData must have been called.
func (d *Dev) writeData(b []byte) error {
	if err := d.c.Tx(b, nil); err != nil {
		return transportError("failed to send data", err)
	}
	return nil
}

// endData releases the chip after a pixel stream.
func (d *Dev) endData() error {
	return d.deselectChip()
}

func (d *Dev) selectChip() error {
	if d.cs == nil {
		return nil
	}
	if err := d.cs.Out(gpio.Low); err != nil {
		return transportError("failed to pull CS low", err)
	}
	return nil
}

// release deselects the chip after a failure. The original error is the one
// reported.
func (d *Dev) release() {
	_ = d.deselectChip()
}

func (d *Dev) deselectChip() error {
	if d.cs == nil {
		return nil
	}
	if err := d.cs.Out(gpio.High); err != nil {
		return transportError("failed to pull CS high", err)
	}
	return nil
}
