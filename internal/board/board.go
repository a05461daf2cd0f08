// Package board wires a GC9A01A panel to the host from a config.Config.
package board

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"periph.io/x/devices/v3/gc9a01a"
	"periph.io/x/devices/v3/gc9a01a/internal/config"
	appLog "periph.io/x/devices/v3/gc9a01a/internal/log"
)

// Board is an initialized panel and the host resources it holds.
type Board struct {
	Dev *gc9a01a.Dev

	port      spi.PortCloser
	backlight gpio.PinOut
}

// Open initializes periph.io, opens the configured SPI port and brings the
// panel up.
func Open(cfg *config.Config) (*Board, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("board: periph host init failed: %w", err)
	}
	port, err := spireg.Open(cfg.SPI)
	if err != nil {
		return nil, fmt.Errorf("board: failed to open SPI port %q: %w", cfg.SPI, err)
	}
	b, err := Attach(port, cfg)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	return b, nil
}

// Attach brings the panel up on an already opened port. The port is closed by
// Close.
func Attach(port spi.PortCloser, cfg *config.Config) (*Board, error) {
	f, err := cfg.Frequency()
	if err != nil {
		return nil, err
	}
	opts, err := cfg.Opts()
	if err != nil {
		return nil, err
	}

	dc, err := outPin(cfg.Pins.DC, gpio.Low)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errors.New("board: DC pin is required")
	}
	if opts.CS, err = outPin(cfg.Pins.CS, gpio.High); err != nil {
		return nil, err
	}
	if opts.RST, err = outPin(cfg.Pins.RST, gpio.High); err != nil {
		return nil, err
	}
	bl, err := outPin(cfg.Pins.Backlight, gpio.Low)
	if err != nil {
		return nil, err
	}

	c, err := port.Connect(f, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("board: failed to connect SPI: %w", err)
	}
	dev, err := gc9a01a.New(c, dc, opts)
	if err != nil {
		return nil, err
	}
	if err := dev.Init(); err != nil {
		return nil, err
	}
	if err := dev.SetOrientation(opts.Orientation); err != nil {
		return nil, err
	}
	if bl != nil {
		if err := bl.Out(gpio.High); err != nil {
			return nil, fmt.Errorf("board: failed to enable backlight: %w", err)
		}
	}
	appLog.Debug("panel ready", "dev", dev.String(), "speed", f.String(), "chunk", opts.ChunkSize)
	return &Board{Dev: dev, port: port, backlight: bl}, nil
}

// Close turns the panel and backlight off and releases the SPI port. Every
// step is attempted; the first error is returned.
func (b *Board) Close() error {
	err := b.Dev.Halt()
	if b.backlight != nil {
		if e := b.backlight.Out(gpio.Low); err == nil {
			err = e
		}
	}
	if e := b.port.Close(); err == nil {
		err = e
	}
	return err
}

// outPin resolves name and drives it to l. An empty name returns nil.
func outPin(name string, l gpio.Level) (gpio.PinOut, error) {
	if name == "" {
		return nil, nil
	}
	p := gpioreg.ByName(name)
	if p == nil {
		return nil, fmt.Errorf("board: gpio %s not found", name)
	}
	if err := p.Out(l); err != nil {
		return nil, fmt.Errorf("board: gpio %s Out failed: %w", name, err)
	}
	return p, nil
}
