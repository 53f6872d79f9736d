//go:build tinygo

package serialport

import (
	"machine"

	"github.com/Philipp01105/serlog/transport"
)

// Port is a transport over machine.Serial. It avoids fmt and allocations
// so it stays small on microcontrollers.
type Port struct {
	stats  *transport.Stats
	closed bool
}

// Open configures machine.Serial at cfg.Baud
func Open(cfg Config) (*Port, error) {
	applyDefaults(&cfg)
	machine.Serial.Configure(machine.UARTConfig{BaudRate: uint32(cfg.Baud)})
	return &Port{stats: transport.NewStats()}, nil
}

// String returns the port name
func (p *Port) String() string {
	return "machine.Serial"
}

// Write implements transport.Transport
func (p *Port) Write(b []byte) (int, error) {
	if p.closed {
		return 0, transport.ErrClosed
	}
	n, err := machine.Serial.Write(b)
	p.stats.RecordWrite(n, err)
	return n, err
}

// Flush implements transport.Transport
func (p *Port) Flush() error {
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

// Close marks the port closed. machine.Serial stays configured.
func (p *Port) Close() error {
	p.closed = true
	return nil
}
