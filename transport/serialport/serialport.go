//go:build !tinygo

package serialport

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/multierr"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/uart"
	"periph.io/x/conn/v3/uart/uartreg"
	"periph.io/x/host/v3"

	"github.com/Philipp01105/serlog/transport"
)

var (
	// initHost loads the periph.io host drivers. Tests replace it.
	initHost = func() error {
		_, err := host.Init()
		return err
	}
	hostOnce sync.Once
	hostErr  error
)

// Port is a transport over a UART opened through periph.io, or over a
// tty device file.
type Port struct {
	name   string
	closer io.Closer
	conn   conn.Conn
	writer io.Writer
	maxTx  int
	mu     sync.Mutex
	stats  *transport.Stats
	closed bool
}

// Open opens the port described by cfg
func Open(cfg Config) (*Port, error) {
	applyDefaults(&cfg)
	if strings.HasPrefix(cfg.Port, "/") {
		return openDevice(cfg)
	}

	hostOnce.Do(func() { hostErr = initHost() })
	if hostErr != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", hostErr)
	}

	p, err := uartreg.Open(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("failed to open UART %q: %w", cfg.Port, err)
	}

	// 8N1 without flow control, the usual console framing
	c, err := p.Connect(physic.Frequency(cfg.Baud)*physic.Hertz, uart.One, uart.NoParity, uart.NoFlow, 8)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to connect UART %q at %d baud: %w", cfg.Port, cfg.Baud, err)
	}

	port := &Port{
		name:   c.String(),
		closer: p,
		conn:   c,
		stats:  transport.NewStats(),
	}
	port.writer, _ = c.(io.Writer)
	if l, ok := c.(conn.Limits); ok {
		port.maxTx = l.MaxTxSize()
	}
	return port, nil
}

// openDevice writes straight to a tty device file. The line speed must
// already be configured on the device.
func openDevice(cfg Config) (*Port, error) {
	f, err := os.OpenFile(cfg.Port, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial device %s: %w", cfg.Port, err)
	}
	return &Port{
		name:   cfg.Port,
		closer: f,
		writer: f,
		stats:  transport.NewStats(),
	}, nil
}

// String returns the port name
func (p *Port) String() string {
	return p.name
}

// Write implements transport.Transport
func (p *Port) Write(b []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, transport.ErrClosed
	}
	n, err := p.write(b)
	p.stats.RecordWrite(n, err)
	return n, err
}

func (p *Port) write(b []byte) (int, error) {
	if p.writer != nil {
		return p.writer.Write(b)
	}
	// conn.Conn without io.Writer: one Tx per chunk the driver accepts
	written := 0
	for len(b) > 0 {
		chunk := b
		if p.maxTx > 0 && len(chunk) > p.maxTx {
			chunk = chunk[:p.maxTx]
		}
		if err := p.conn.Tx(chunk, nil); err != nil {
			return written, err
		}
		written += len(chunk)
		b = b[len(chunk):]
	}
	return written, nil
}

// Flush implements transport.Transport. Tx and device writes are
// synchronous, so there is nothing buffered on the host side.
func (p *Port) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return transport.ErrClosed
	}
	p.stats.RecordFlush(nil)
	return nil
}

// Stats returns a snapshot of the current statistics
func (p *Port) Stats() transport.Snapshot {
	return p.stats.GetSnapshot()
}

// Close releases the port
func (p *Port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	var err error
	if c, ok := p.conn.(io.Closer); ok && c != p.closer {
		err = multierr.Append(err, c.Close())
	}
	if p.closer != nil {
		err = multierr.Append(err, p.closer.Close())
	}
	return err
}
