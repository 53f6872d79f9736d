package transport

import (
	"sync/atomic"
)

// Stats tracks transport traffic
type Stats struct {
	// WritesTotal counts successful Write calls
	WritesTotal uint64
	// BytesTotal counts bytes accepted by the device
	BytesTotal uint64
	// FlushesTotal counts successful Flush calls
	FlushesTotal uint64
	// ErrorsTotal counts failed Write and Flush calls
	ErrorsTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// RecordWrite atomically records the outcome of one Write
func (s *Stats) RecordWrite(n int, err error) {
	if n > 0 {
		atomic.AddUint64(&s.BytesTotal, uint64(n))
	}
	if err != nil {
		atomic.AddUint64(&s.ErrorsTotal, 1)
		return
	}
	atomic.AddUint64(&s.WritesTotal, 1)
}

// RecordFlush atomically records the outcome of one Flush
func (s *Stats) RecordFlush(err error) {
	if err != nil {
		atomic.AddUint64(&s.ErrorsTotal, 1)
		return
	}
	atomic.AddUint64(&s.FlushesTotal, 1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.WritesTotal, 0)
	atomic.StoreUint64(&s.BytesTotal, 0)
	atomic.StoreUint64(&s.FlushesTotal, 0)
	atomic.StoreUint64(&s.ErrorsTotal, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Writes  uint64
	Bytes   uint64
	Flushes uint64
	Errors  uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Writes:  atomic.LoadUint64(&s.WritesTotal),
		Bytes:   atomic.LoadUint64(&s.BytesTotal),
		Flushes: atomic.LoadUint64(&s.FlushesTotal),
		Errors:  atomic.LoadUint64(&s.ErrorsTotal),
	}
}

// Add returns the field-wise sum of two snapshots
func (s Snapshot) Add(o Snapshot) Snapshot {
	return Snapshot{
		Writes:  s.Writes + o.Writes,
		Bytes:   s.Bytes + o.Bytes,
		Flushes: s.Flushes + o.Flushes,
		Errors:  s.Errors + o.Errors,
	}
}
