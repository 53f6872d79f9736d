package transport

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// MultiTransport copies every write to multiple transports, for example a
// UART and a capture file.
type MultiTransport struct {
	transports []Transport
}

// NewMultiTransport creates a new multi-transport
func NewMultiTransport(transports ...Transport) *MultiTransport {
	return &MultiTransport{transports: transports}
}

// Write implements Transport. Every child receives p even when an earlier
// one fails; the reported count is len(p) only if all of them succeeded.
func (m *MultiTransport) Write(p []byte) (int, error) {
	var err error
	for _, t := range m.transports {
		n, werr := t.Write(p)
		if werr == nil && n < len(p) {
			werr = shortWrite(t, n, len(p))
		}
		err = multierr.Append(err, werr)
	}
	if err != nil {
		return 0, err
	}
	return len(p), nil
}

// Flush implements Transport
func (m *MultiTransport) Flush() error {
	var err error
	for _, t := range m.transports {
		err = multierr.Append(err, t.Flush())
	}
	return err
}

// Stats sums the statistics of every child that provides them
func (m *MultiTransport) Stats() Snapshot {
	var total Snapshot
	for _, t := range m.transports {
		if sp, ok := t.(StatsProvider); ok {
			total = total.Add(sp.Stats())
		}
	}
	return total
}

// Close closes all transports
func (m *MultiTransport) Close() error {
	var err error
	for _, t := range m.transports {
		err = multierr.Append(err, t.Close())
	}
	return err
}

func shortWrite(t Transport, n, want int) error {
	return fmt.Errorf("%T wrote %d of %d bytes: %w", t, n, want, io.ErrShortWrite)
}
