package gc9a01a

import (
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

var errBus = errors.New("bus fault")

// recorder keeps the ordered log of line changes, transfers and delays, and
// the command stream rebuilt from the DC line level at each transfer.
type recorder struct {
	events []string
	cmds   []sentCommand
	dc     *recordPin
	tx     int
	failTx int // 1-based index of the transfer to fail, 0 for none
}

// recordPin is a fake output pin logging every level change.
type recordPin struct {
	gpiotest.Pin
	r    *recorder
	fail bool
}

func (p *recordPin) Out(l gpio.Level) error {
	if p.fail {
		return errBus
	}
	if err := p.Pin.Out(l); err != nil {
		return err
	}
	p.r.events = append(p.r.events, fmt.Sprintf("%s %s", p.N, l))
	return nil
}

// recordConn is a fake bus logging every write.
type recordConn struct {
	conntest.Record
	r *recorder
}

func (c *recordConn) Tx(w, r []byte) error {
	c.r.tx++
	if c.r.tx == c.r.failTx {
		return errBus
	}
	if err := c.Record.Tx(w, r); err != nil {
		return err
	}
	c.r.events = append(c.r.events, fmt.Sprintf("tx % x", w))
	if c.r.dc != nil && c.r.dc.L == gpio.High {
		if n := len(c.r.cmds); n > 0 {
			c.r.cmds[n-1].data = append(c.r.cmds[n-1].data, w...)
		}
		return nil
	}
	for _, op := range w {
		c.r.cmds = append(c.r.cmds, sentCommand{op: op})
	}
	return nil
}

// limitedConn is a fake bus with a transfer size limit.
type limitedConn struct {
	recordConn
	max int
}

func (c *limitedConn) MaxTxSize() int {
	return c.max
}

type recordDelay struct {
	r *recorder
}

func (d recordDelay) Sleep(t time.Duration) {
	d.r.events = append(d.r.events, "sleep "+t.String())
}

type fixture struct {
	dev         *Dev
	rec         *recorder
	conn        *recordConn
	cs, dc, rst *recordPin
}

// newFixture returns a device on fake lines. opts may be nil; the fake lines
// and delay are filled in.
func newFixture(t *testing.T, opts *Opts) *fixture {
	t.Helper()
	rec := &recorder{}
	f := &fixture{
		rec:  rec,
		conn: &recordConn{r: rec},
		cs:   &recordPin{Pin: gpiotest.Pin{N: "CS"}, r: rec},
		dc:   &recordPin{Pin: gpiotest.Pin{N: "DC"}, r: rec},
		rst:  &recordPin{Pin: gpiotest.Pin{N: "RST"}, r: rec},
	}
	o := Opts{}
	if opts != nil {
		o = *opts
	}
	o.CS = f.cs
	o.RST = f.rst
	o.Delay = recordDelay{rec}
	d, err := New(f.conn, f.dc, &o)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	rec.dc = f.dc
	f.dev = d
	return f
}

// newReady returns an initialized device with an empty log.
func newReady(t *testing.T, opts *Opts) *fixture {
	t.Helper()
	f := newFixture(t, opts)
	if err := f.dev.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	f.reset()
	return f
}

// commandTrace returns the log of one framed command.
func commandTrace(op byte, params ...byte) []string {
	tr := []string{"CS Low", "DC Low", fmt.Sprintf("tx % x", []byte{op})}
	if len(params) > 0 {
		tr = append(tr, "DC High", fmt.Sprintf("tx % x", params))
	}
	return append(tr, "CS High")
}

// sentCommand is an opcode with every byte sent with DC high after it, up to
// the next opcode.
type sentCommand struct {
	op   byte
	data []byte
}

func (c sentCommand) String() string {
	return fmt.Sprintf("%02x[% x]", c.op, c.data)
}

// reset clears every log.
func (f *fixture) reset() {
	f.rec.events = nil
	f.rec.cmds = nil
	f.conn.Ops = nil
}

// sent returns every byte written to the bus since the last reset.
func (f *fixture) sent() []byte {
	var out []byte
	for _, io := range f.conn.Ops {
		out = append(out, io.W...)
	}
	return out
}

func equalCommands(a, b []sentCommand) bool {
	return slices.EqualFunc(a, b, func(x, y sentCommand) bool {
		return x.op == y.op && slices.Equal(x.data, y.data)
	})
}
