package benchmark

import (
	"github.com/Philipp01105/serlog/transport"
)

// noopTransport accepts every line and does nothing with it, so the
// benchmarks measure formatting alone.
type noopTransport struct{}

func newNoopTransport() transport.Transport {
	return noopTransport{}
}

func (noopTransport) Write(p []byte) (int, error) { return len(p), nil }
func (noopTransport) Flush() error                { return nil }
func (noopTransport) Close() error                { return nil }
