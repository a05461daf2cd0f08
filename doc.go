// Package gc9a01a controls a GC9A01A round TFT LCD controller via SPI.
//
// The GC9A01A drives 240×240 round panels with 16-bit RGB565 color. Pixel data
// is written into a rectangular address window that the controller fills row
// by row, left to right. This driver implements the display.Drawer interface
// from periph.io and the drivers.Displayer interface from TinyGo.
//
// # Display Characteristics
//
// - 16-bit RGB565 color, sent most significant byte first
// - 240×240 pixels (other panel sizes up to 65535×65535 are accepted)
// - Four orientations, with rows and columns exchanged in landscape
// - RGB or BGR color filter order, selected at construction
// - Display inversion (enabled by the power-up sequence)
//
// # Hardware Connection
//
// Connect the GC9A01A display to your system via SPI:
//
//	Display Pin → System Pin
//	GND         → GND
//	VCC         → 3.3V
//	SCL         → SPI Clock (SCLK)
//	SDA         → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select, or a GPIO passed as Opts.CS
//	RST         → Optional: GPIO for hardware reset
//	BL          → Backlight, 3.3V or a GPIO
//
// # Basic Usage
//
// Example of creating and using the display:
//
//	package main
//
//	import (
//		"periph.io/x/conn/v3/gpio/gpioreg"
//		"periph.io/x/conn/v3/spi/spireg"
//		"periph.io/x/devices/v3/gc9a01a"
//		"periph.io/x/devices/v3/gc9a01a/image565"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open SPI bus
//		spiBus, _ := spireg.Open("")
//
//		// Create device; the power-up sequence runs here
//		dev, _ := gc9a01a.NewSPI(spiBus, gpioreg.ByName("GPIO25"), &gc9a01a.Opts{
//			RST: gpioreg.ByName("GPIO27"),
//		})
//		defer dev.Halt()
//
//		dev.ClearScreen(image565.Black)
//		dev.FillRectangle(100, 100, 40, 40, image565.Red)
//	}
//
// # Hardware and Software Reset
//
// When Opts.RST is set, Init drives it high, low and high again with 10ms
// pauses. Otherwise Init sends a software reset command and waits 120ms. The
// power-up register sequence follows either way.
//
// # Drawing Modes
//
// ## Address Window
//
// SetAddressWindow selects an inclusive rectangle and starts a memory write.
// Pixels then stream in through WritePixels, which sends one pixel per
// transfer, or WritePixelsBuffered, which gathers Opts.ChunkSize pixels per
// transfer:
//
//	dev.SetWindowAndWritePixelsBuffered(0, 0, 9, 9, func(yield func(image565.Color) bool) {
//		for range 100 {
//			if !yield(image565.Blue) {
//				return
//			}
//		}
//	})
//
// ## Full-Frame Update
//
// Show (and its alias DrawImage) sends a whole frame of big-endian RGB565
// bytes, such as the Buffer of an image565.FrameBuffer.
//
// ## Dirty Regions
//
// Animations keep two frame buffers: a static background and the frame being
// composed. Each tick restores the previously touched regions from the
// background, draws, records what changed and pushes only those rectangles:
//
//	frame.CopyRegions(background.Buffer(), dev.Regions())
//	dev.ClearRegions()
//	// ... draw into frame ...
//	dev.StoreRegion(image.Rect(x, y, x+w, y+h))
//	dev.ShowRegions(frame)
//
// ## Differential Updates
//
// Draw keeps shadow copies of the panel and only sends the bounding rectangle
// of the pixels that changed:
//
//	dev.Draw(dev.Bounds(), myImage, image.Point{})
//
// # Errors
//
// Errors caused by a failed bus transfer or control line wrap ErrTransport.
// Invalid arguments and calls before Init wrap ErrContract and are reported
// before anything is sent. Transfers are never retried; call Init to recover.
//
// # Datasheet
//
// For detailed register descriptions and timing information, see:
// https://www.buydisplay.com/download/ic/GC9A01A.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
//
// It can be used with any periph.io tool or library expecting a display.Drawer.
package gc9a01a
