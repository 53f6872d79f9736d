package transport

import (
	"errors"
)

// ErrClosed is returned by writes to a transport after Close
var ErrClosed = errors.New("transport closed")

// Transport is the byte stream a logger writes lines to
type Transport interface {
	// Write appends bytes to the output
	Write(p []byte) (int, error)

	// Flush forces buffered output out to the device
	Flush() error

	// Close flushes and releases the transport
	Close() error
}

// StatsProvider is implemented by transports that count their traffic
type StatsProvider interface {
	Stats() Snapshot
}
