package formatter

import (
	"bytes"
	"sync"
)

// DefaultFloatPrecision is the number of decimals Arduino's Print uses
const DefaultFloatPrecision = 2

// Config holds interpreter configuration
type Config struct {
	// FloatPrecision is the number of decimals for %f and %F. Nil selects
	// DefaultFloatPrecision; use Precision(0) for whole numbers.
	FloatPrecision *int
	// Missing is written in place of a conversion whose argument is absent
	// or of an incompatible kind (default: '?')
	Missing byte
}

// applyDefaults fills in zero-value fields with defaults.
func applyDefaults(cfg *Config) {
	if cfg.FloatPrecision == nil || *cfg.FloatPrecision < 0 {
		cfg.FloatPrecision = Precision(DefaultFloatPrecision)
	}
	if cfg.Missing == 0 {
		cfg.Missing = '?'
	}
}

// Precision returns a FloatPrecision value of n decimals
func Precision(n int) *int {
	return &n
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(128)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
