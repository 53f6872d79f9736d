package transport

import (
	"io"
	"os"
	"sync"
)

// WriterConfig holds configuration for a writer transport
type WriterConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// SyncOnFlush calls Sync() on writers that have it, such as *os.File.
	// Pipes and terminals usually reject Sync, so it is off by default.
	SyncOnFlush bool
	// CloseWriter closes the writer on Close if it is an io.Closer
	CloseWriter bool
}

// WriterTransport writes to any io.Writer
type WriterTransport struct {
	writer      io.Writer
	flusher     interface{ Flush() error }
	syncer      interface{ Sync() error }
	closeWriter bool
	mu          sync.Mutex
	stats       *Stats
	closed      bool
}

// applyWriterDefaults fills in zero-value fields with defaults.
func applyWriterDefaults(cfg *WriterConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
}

// NewWriterTransport creates a new writer transport
func NewWriterTransport(cfg WriterConfig) *WriterTransport {
	applyWriterDefaults(&cfg)
	t := &WriterTransport{
		writer:      cfg.Writer,
		closeWriter: cfg.CloseWriter,
		stats:       NewStats(),
	}
	// Cache optional interfaces so Flush does no assertions
	t.flusher, _ = cfg.Writer.(interface{ Flush() error })
	if cfg.SyncOnFlush {
		t.syncer, _ = cfg.Writer.(interface{ Sync() error })
	}
	return t
}

// Write implements Transport
func (t *WriterTransport) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return 0, ErrClosed
	}
	n, err := t.writer.Write(p)
	t.stats.RecordWrite(n, err)
	return n, err
}

// Flush implements Transport
func (t *WriterTransport) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	err := t.flush()
	t.stats.RecordFlush(err)
	return err
}

func (t *WriterTransport) flush() error {
	if t.flusher != nil {
		if err := t.flusher.Flush(); err != nil {
			return err
		}
	}
	if t.syncer != nil {
		return t.syncer.Sync()
	}
	return nil
}

// Stats returns a snapshot of the current statistics
func (t *WriterTransport) Stats() Snapshot {
	return t.stats.GetSnapshot()
}

// Close flushes the writer and, if configured, closes it
func (t *WriterTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil // Already closed
	}
	t.closed = true

	err := t.flush()
	if c, ok := t.writer.(io.Closer); ok && t.closeWriter {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
