package transport

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileConfig holds configuration for a file transport
type FileConfig struct {
	// Filename is the path of the capture file
	Filename string
	// BufferSize is the bufio buffer size (default: 4096)
	BufferSize int
	// Sync fsyncs the file on every Flush
	Sync bool
	// Truncate starts a new file instead of appending
	Truncate bool
}

// FileTransport captures the serial stream into a file. Writes are
// buffered until Flush, which the logger calls at the end of every line.
type FileTransport struct {
	filename  string
	file      *os.File
	bufWriter *bufio.Writer
	sync      bool
	mu        sync.Mutex
	stats     *Stats
	closed    bool
}

// NewFileTransport opens (or creates) the file and its parent directory
func NewFileTransport(cfg FileConfig) (*FileTransport, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("file transport: empty filename")
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 4096
	}

	if dir := filepath.Dir(cfg.Filename); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("file transport: create directory: %w", err)
		}
	}

	flags := os.O_CREATE | os.O_WRONLY | os.O_APPEND
	if cfg.Truncate {
		flags = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	f, err := os.OpenFile(cfg.Filename, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("file transport: open %s: %w", cfg.Filename, err)
	}

	return &FileTransport{
		filename:  cfg.Filename,
		file:      f,
		bufWriter: bufio.NewWriterSize(f, cfg.BufferSize),
		sync:      cfg.Sync,
		stats:     NewStats(),
	}, nil
}

// Write implements Transport
func (t *FileTransport) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return 0, ErrClosed
	}
	n, err := t.bufWriter.Write(p)
	t.stats.RecordWrite(n, err)
	return n, err
}

// Flush implements Transport
func (t *FileTransport) Flush() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrClosed
	}
	err := t.flush()
	t.stats.RecordFlush(err)
	return err
}

func (t *FileTransport) flush() error {
	if err := t.bufWriter.Flush(); err != nil {
		return err
	}
	if t.sync {
		return t.file.Sync()
	}
	return nil
}

// Filename returns the capture file path
func (t *FileTransport) Filename() string {
	return t.filename
}

// Stats returns a snapshot of the current statistics
func (t *FileTransport) Stats() Snapshot {
	return t.stats.GetSnapshot()
}

// Close flushes buffered data and closes the file
func (t *FileTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true

	err := t.bufWriter.Flush()
	if cerr := t.file.Close(); err == nil {
		err = cerr
	}
	return err
}
