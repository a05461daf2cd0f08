package gc9a01a

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"periph.io/x/devices/v3/gc9a01a/image565"
)

func TestWritePixel(t *testing.T) {
	f := newReady(t, nil)
	if err := f.dev.WritePixel(12, 34, 0xF81F); err != nil {
		t.Fatalf("WritePixel() error = %v", err)
	}

	g := newReady(t, nil)
	if err := g.dev.SetAddressWindow(12, 34, 12, 34); err != nil {
		t.Fatal(err)
	}
	if err := g.dev.WriteWord(0xF81F); err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(f.rec.events, g.rec.events) {
		t.Errorf("WritePixel() events = %q, want %q", f.rec.events, g.rec.events)
	}
	want := []string{"CS Low", "DC High", "tx f8 1f", "CS High"}
	if got := f.rec.events[len(f.rec.events)-4:]; !slices.Equal(got, want) {
		t.Errorf("pixel word events = %q, want %q", got, want)
	}
}

func TestWritePixelOutOfBounds(t *testing.T) {
	f := newReady(t, nil)
	if err := f.dev.WritePixel(240, 0, image565.White); !errors.Is(err, ErrContract) {
		t.Errorf("WritePixel(240, 0) error = %v, want ErrContract", err)
	}
	if len(f.rec.events) != 0 {
		t.Errorf("WritePixel(240, 0) sent %q", f.rec.events)
	}
}

func TestBufferedMatchesContinuous(t *testing.T) {
	colors := make([]image565.Color, 37)
	for i := range colors {
		colors[i] = image565.Color(i * 0x0741)
	}

	cont := newReady(t, nil)
	if err := cont.dev.WritePixels(slices.Values(colors)); err != nil {
		t.Fatalf("WritePixels() error = %v", err)
	}
	buf := newReady(t, nil)
	if err := buf.dev.WritePixelsBuffered(slices.Values(colors)); err != nil {
		t.Fatalf("WritePixelsBuffered() error = %v", err)
	}

	if !bytes.Equal(cont.sent(), buf.sent()) {
		t.Errorf("buffered bytes = % x, want % x", buf.sent(), cont.sent())
	}
	if len(cont.sent()) != len(colors)*2 {
		t.Errorf("sent %d bytes, want %d", len(cont.sent()), len(colors)*2)
	}
	if got := len(cont.conn.Ops); got != 37 {
		t.Errorf("continuous transfers = %d, want 37", got)
	}
	// 16 + 16 + 5 pixels.
	if got := len(buf.conn.Ops); got != 3 {
		t.Errorf("buffered transfers = %d, want 3", got)
	}
}

func TestChunkSizes(t *testing.T) {
	colors := make([]image565.Color, 10)
	for i := range colors {
		colors[i] = image565.Color(0x1111 * i)
	}
	var want []byte
	for _, c := range colors {
		want = append(want, byte(c>>8), byte(c))
	}

	for _, chunk := range []int{1, 3, 10, 64} {
		f := newReady(t, &Opts{ChunkSize: chunk})
		if err := f.dev.SetWindowAndWritePixelsBuffered(0, 0, 9, 0, slices.Values(colors)); err != nil {
			t.Fatalf("chunk %d: error = %v", chunk, err)
		}
		ramwr := f.rec.cmds[len(f.rec.cmds)-1]
		if ramwr.op != cmdRAMWR || !bytes.Equal(ramwr.data, want) {
			t.Errorf("chunk %d: sent %v, want 2c[% x]", chunk, ramwr, want)
		}
		if got, wantTx := len(f.conn.Ops), 5+(10+chunk-1)/chunk; got != wantTx {
			t.Errorf("chunk %d: transfers = %d, want %d", chunk, got, wantTx)
		}
	}
}

func TestSetWindowAndWritePixels(t *testing.T) {
	f := newReady(t, nil)
	err := f.dev.SetWindowAndWritePixels(1, 1, 2, 1, slices.Values([]image565.Color{image565.Red, image565.Blue}))
	if err != nil {
		t.Fatal(err)
	}
	want := []sentCommand{
		{op: cmdCASET, data: []byte{0, 1, 0, 2}},
		{op: cmdRASET, data: []byte{0, 1, 0, 1}},
		{op: cmdRAMWR, data: []byte{0xF8, 0x00, 0x00, 0x1F}},
	}
	if !equalCommands(f.rec.cmds, want) {
		t.Errorf("sent %v, want %v", f.rec.cmds, want)
	}
}

func TestDrawImage(t *testing.T) {
	f := newReady(t, &Opts{W: 4, H: 3})
	img := make([]byte, 4*3*2)
	for i := range img {
		img[i] = byte(i)
	}
	if err := f.dev.DrawImage(img); err != nil {
		t.Fatalf("DrawImage() error = %v", err)
	}
	want := []sentCommand{
		{op: cmdCASET, data: []byte{0, 0, 0, 3}},
		{op: cmdRASET, data: []byte{0, 0, 0, 2}},
		{op: cmdRAMWR, data: img},
	}
	if !equalCommands(f.rec.cmds, want) {
		t.Errorf("sent %v, want %v", f.rec.cmds, want)
	}
}

func TestDrawImageLength(t *testing.T) {
	for _, n := range []int{0, 1, 240*240*2 - 2, 240*240*2 + 2} {
		f := newReady(t, nil)
		if err := f.dev.DrawImage(make([]byte, n)); !errors.Is(err, ErrContract) {
			t.Errorf("DrawImage(%d bytes) error = %v, want ErrContract", n, err)
		}
		if err := f.dev.Show(make([]byte, n)); !errors.Is(err, ErrContract) {
			t.Errorf("Show(%d bytes) error = %v, want ErrContract", n, err)
		}
		if len(f.rec.events) != 0 {
			t.Errorf("DrawImage(%d bytes) sent %d events", n, len(f.rec.events))
		}
	}
}

func TestShowMatchesDrawImage(t *testing.T) {
	img := bytes.Repeat([]byte{0x12, 0x34}, 4*4)
	a := newReady(t, &Opts{W: 4, H: 4})
	if err := a.dev.DrawImage(img); err != nil {
		t.Fatal(err)
	}
	b := newReady(t, &Opts{W: 4, H: 4})
	if err := b.dev.Show(img); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.rec.events, b.rec.events) {
		t.Errorf("Show() events = %q, want %q", b.rec.events, a.rec.events)
	}
}

func TestWrite(t *testing.T) {
	f := newReady(t, &Opts{W: 2, H: 2})
	n, err := f.dev.Write(make([]byte, 8))
	if err != nil || n != 8 {
		t.Errorf("Write() = %d, %v, want 8, nil", n, err)
	}
	if n, err := f.dev.Write(make([]byte, 7)); err == nil || n != 0 {
		t.Errorf("Write(7 bytes) = %d, %v, want 0 and an error", n, err)
	}
}

func TestShowRegion(t *testing.T) {
	f := newReady(t, nil)
	payload := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	if err := f.dev.ShowRegion(payload, 100, 50, 3, 2); err != nil {
		t.Fatalf("ShowRegion() error = %v", err)
	}
	want := []sentCommand{
		{op: cmdCASET, data: []byte{0, 100, 0, 102}},
		{op: cmdRASET, data: []byte{0, 50, 0, 51}},
		{op: cmdRAMWR, data: payload},
	}
	if !equalCommands(f.rec.cmds, want) {
		t.Errorf("sent %v, want %v", f.rec.cmds, want)
	}
}

func TestShowRegionErrors(t *testing.T) {
	tests := []struct {
		name       string
		n          int
		x, y, w, h int
	}{
		{"short payload", 10, 0, 0, 3, 2},
		{"long payload", 14, 0, 0, 3, 2},
		{"zero width", 0, 0, 0, 0, 2},
		{"negative height", 0, 0, 0, 2, -1},
		{"past right edge", 12, 238, 0, 3, 2},
		{"past bottom edge", 12, 0, 239, 3, 2},
		{"negative origin", 12, -1, 0, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newReady(t, nil)
			err := f.dev.ShowRegion(make([]byte, tt.n), tt.x, tt.y, tt.w, tt.h)
			if !errors.Is(err, ErrContract) {
				t.Errorf("ShowRegion() error = %v, want ErrContract", err)
			}
			if len(f.rec.events) != 0 {
				t.Errorf("ShowRegion() sent %q", f.rec.events)
			}
		})
	}
}

func TestFillRectangle(t *testing.T) {
	f := newReady(t, nil)
	if err := f.dev.FillRectangle(10, 20, 5, 3, 0x07E0); err != nil {
		t.Fatalf("FillRectangle() error = %v", err)
	}
	want := []sentCommand{
		{op: cmdCASET, data: []byte{0, 10, 0, 14}},
		{op: cmdRASET, data: []byte{0, 20, 0, 22}},
		{op: cmdRAMWR, data: bytes.Repeat([]byte{0x07, 0xE0}, 15)},
	}
	if !equalCommands(f.rec.cmds, want) {
		t.Errorf("sent %v, want %v", f.rec.cmds, want)
	}
	if err := f.dev.FillRectangle(0, 0, 0, 1, image565.Red); !errors.Is(err, ErrContract) {
		t.Errorf("FillRectangle(empty) error = %v, want ErrContract", err)
	}
}

func TestClearScreen(t *testing.T) {
	f := newReady(t, &Opts{W: 6, H: 4})
	if err := f.dev.SetOrientation(Landscape); err != nil {
		t.Fatal(err)
	}
	f.reset()
	if err := f.dev.ClearScreen(image565.White); err != nil {
		t.Fatalf("ClearScreen() error = %v", err)
	}
	want := []sentCommand{
		{op: cmdCASET, data: []byte{0, 0, 0, 3}},
		{op: cmdRASET, data: []byte{0, 0, 0, 5}},
		{op: cmdRAMWR, data: bytes.Repeat([]byte{0xFF}, 6*4*2)},
	}
	if !equalCommands(f.rec.cmds, want) {
		t.Errorf("sent %v, want %v", f.rec.cmds, want)
	}
}

func TestStreamTransportError(t *testing.T) {
	f := newReady(t, &Opts{ChunkSize: 2})
	if err := f.dev.SetAddressWindow(0, 0, 9, 0); err != nil {
		t.Fatal(err)
	}
	// Fail the second pixel transfer.
	f.rec.failTx = f.rec.tx + 2
	err := f.dev.WritePixelsBuffered(solid(image565.Red, 10))
	if !errors.Is(err, ErrTransport) {
		t.Errorf("WritePixelsBuffered() error = %v, want ErrTransport", err)
	}
	if got := len(f.rec.cmds[len(f.rec.cmds)-1].data); got != 4 {
		t.Errorf("sent %d pixel bytes before the failure, want 4", got)
	}
	if got := f.rec.events[len(f.rec.events)-1]; got != "CS High" {
		t.Errorf("last event = %q, want CS High", got)
	}
}
