package gc9a01a

import (
	"encoding/binary"
	"iter"

	"periph.io/x/devices/v3/gc9a01a/image565"
)

// stream sends pixels to the current address window as big-endian words,
// gathering chunk words per transfer. A chunk of 1 sends each word on its
// own. The byte stream on the wire does not depend on chunk.
func (d *Dev) stream(seq iter.Seq[image565.Color], chunk int) error {
	chunk = max(chunk, 1)
	buf := d.buf[:0]
	if cap(buf) < chunk*2 {
		buf = make([]byte, 0, chunk*2)
	}
	if err := d.startData(); err != nil {
		return err
	}
	for c := range seq {
		buf = binary.BigEndian.AppendUint16(buf, uint16(c))
		if len(buf) == chunk*2 {
			if err := d.writeData(buf); err != nil {
				d.release()
				return err
			}
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		if err := d.writeData(buf); err != nil {
			d.release()
			return err
		}
	}
	return d.endData()
}

// words yields the big-endian words of b. A trailing odd byte is ignored.
func words(b []byte) iter.Seq[image565.Color] {
	return func(yield func(image565.Color) bool) {
		for i := 0; i+1 < len(b); i += 2 {
			if !yield(image565.Color(binary.BigEndian.Uint16(b[i:]))) {
				return
			}
		}
	}
}

// solid yields c n times.
func solid(c image565.Color, n int) iter.Seq[image565.Color] {
	return func(yield func(image565.Color) bool) {
		for range n {
			if !yield(c) {
				return
			}
		}
	}
}
