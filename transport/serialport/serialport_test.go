//go:build !tinygo

package serialport

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"

	"github.com/Philipp01105/serlog/transport"
)

// fakePort is a uart.PortCloser whose connection is supplied by the test
type fakePort struct {
	c        conn.Conn
	freq     physic.Frequency
	stop     uart.Stop
	parity   uart.Parity
	bits     int
	closed   bool
	failDial bool
}

func (f *fakePort) String() string { return "fake" }

func (f *fakePort) Connect(freq physic.Frequency, stop uart.Stop, parity uart.Parity, flow uart.Flow, bits int) (conn.Conn, error) {
	if f.failDial {
		return nil, errors.New("dial failed")
	}
	f.freq, f.stop, f.parity, f.bits = freq, stop, parity, bits
	return f.c, nil
}

func (f *fakePort) LimitSpeed(physic.Frequency) error { return nil }

func (f *fakePort) Close() error {
	f.closed = true
	return nil
}

// chunkedConn records each Tx and advertises a small MaxTxSize
type chunkedConn struct {
	txs [][]byte
}

func (c *chunkedConn) String() string      { return "chunked" }
func (c *chunkedConn) Duplex() conn.Duplex { return conn.Half }
func (c *chunkedConn) MaxTxSize() int      { return 4 }
func (c *chunkedConn) Tx(w, r []byte) error {
	c.txs = append(c.txs, append([]byte(nil), w...))
	return nil
}

var (
	recorded bytes.Buffer
	recPort  = &fakePort{c: &conntest.RecordRaw{W: &recorded}}
	chunked  = &chunkedConn{}
	badPort  = &fakePort{failDial: true}
)

func TestMain(m *testing.M) {
	initHost = func() error { return nil }

	register := func(name string, p *fakePort) {
		err := uartreg.Register(name, nil, -1, func() (uart.PortCloser, error) { return p, nil })
		if err != nil {
			panic(err)
		}
	}
	register("SERLOG-REC", recPort)
	register("SERLOG-CHUNK", &fakePort{c: chunked})
	register("SERLOG-BAD", badPort)

	os.Exit(m.Run())
}

func TestOpen_UART(t *testing.T) {
	p, err := Open(Config{Port: "SERLOG-REC", Baud: 115200})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if recPort.freq != 115200*physic.Hertz {
		t.Errorf("Connect frequency = %v, want 115200Hz", recPort.freq)
	}
	if recPort.stop != uart.One || recPort.parity != uart.NoParity || recPort.bits != 8 {
		t.Errorf("Connect framing = %v %c %d, want 8N1", recPort.stop, recPort.parity, recPort.bits)
	}

	if _, err := p.Write([]byte("hello\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := p.Flush(); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}
	if recorded.String() != "hello\n" {
		t.Errorf("recorded %q", recorded.String())
	}

	s := p.Stats()
	if s.Writes != 1 || s.Bytes != 6 || s.Flushes != 1 {
		t.Errorf("Stats() = %+v", s)
	}

	if err := p.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if !recPort.closed {
		t.Error("port was not closed")
	}
	if _, err := p.Write([]byte("x")); !errors.Is(err, transport.ErrClosed) {
		t.Errorf("Write after Close error = %v, want ErrClosed", err)
	}
}

func TestOpen_DefaultBaud(t *testing.T) {
	p, err := Open(Config{Port: "SERLOG-REC"})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer p.Close()

	if recPort.freq != DefaultBaud*physic.Hertz {
		t.Errorf("Connect frequency = %v, want %d Hz", recPort.freq, DefaultBaud)
	}
}

func TestPort_ChunkedTx(t *testing.T) {
	p, err := Open(Config{Port: "SERLOG-CHUNK"})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer p.Close()

	n, err := p.Write([]byte("0123456789"))
	if err != nil || n != 10 {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if len(chunked.txs) != 3 {
		t.Fatalf("Tx calls = %d, want 3", len(chunked.txs))
	}
	if string(chunked.txs[2]) != "89" {
		t.Errorf("last chunk = %q", chunked.txs[2])
	}
}

func TestOpen_Errors(t *testing.T) {
	if _, err := Open(Config{Port: "SERLOG-MISSING"}); err == nil {
		t.Error("Expected error for unknown port")
	}
	if _, err := Open(Config{Port: "SERLOG-BAD"}); err == nil {
		t.Error("Expected error when Connect fails")
	}
	if !badPort.closed {
		t.Error("port should be closed after a failed Connect")
	}
	if _, err := Open(Config{Port: filepath.Join(t.TempDir(), "missing", "tty")}); err == nil {
		t.Error("Expected error for missing device")
	}
}

func TestOpen_Device(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tty")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	p, err := Open(Config{Port: path})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if p.String() != path {
		t.Errorf("String() = %q", p.String())
	}
	if _, err := p.Write([]byte("line\n")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "line\n" {
		t.Errorf("device content = %q", data)
	}
}

func TestList(t *testing.T) {
	ports, err := List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	found := false
	for _, p := range ports {
		if p.Name == "SERLOG-REC" {
			found = true
		}
	}
	if !found {
		t.Errorf("List() = %+v, missing SERLOG-REC", ports)
	}
}
