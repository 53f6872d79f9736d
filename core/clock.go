package core

import (
	"time"
)

// Clock is a monotonic millisecond counter. Like a microcontroller's
// millis() it wraps around at 2^32.
type Clock interface {
	Millis() uint32
}

// Snapshot is the H:M:S.mmm decomposition of a Clock reading
type Snapshot struct {
	Hours        uint32
	Minutes      uint8
	Seconds      uint8
	Milliseconds uint16
}

// SnapshotOf decomposes a millisecond counter into hours, minutes,
// seconds and milliseconds. Hours are not bounded.
func SnapshotOf(ms uint32) Snapshot {
	sec := ms / 1000
	mins := sec / 60
	return Snapshot{
		Hours:        mins / 60,
		Minutes:      uint8(mins % 60),
		Seconds:      uint8(sec % 60),
		Milliseconds: uint16(ms % 1000),
	}
}

// Now reads the clock and decomposes the result
func Now(c Clock) Snapshot {
	return SnapshotOf(c.Millis())
}

// MonotonicClock counts milliseconds since it was created
type MonotonicClock struct {
	start time.Time
}

// NewMonotonicClock starts a clock at zero
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{start: time.Now()}
}

// Millis implements Clock
func (c *MonotonicClock) Millis() uint32 {
	return uint32(time.Since(c.start) / time.Millisecond)
}

// ManualClock is a Clock whose value is set by the caller
type ManualClock struct {
	Ms uint32
}

// Millis implements Clock
func (c *ManualClock) Millis() uint32 {
	return c.Ms
}

// Advance moves the clock forward by d, wrapping like the hardware counter
func (c *ManualClock) Advance(d time.Duration) {
	c.Ms += uint32(d / time.Millisecond)
}
