package core

import (
	"testing"
	"time"
)

func TestSnapshotOf(t *testing.T) {
	tests := []struct {
		ms   uint32
		want Snapshot
	}{
		{0, Snapshot{}},
		{999, Snapshot{Milliseconds: 999}},
		{3_661_005, Snapshot{Hours: 1, Minutes: 1, Seconds: 1, Milliseconds: 5}},
		{59*60_000 + 59_999, Snapshot{Minutes: 59, Seconds: 59, Milliseconds: 999}},
		{0xFFFFFFFF, Snapshot{Hours: 1193, Minutes: 2, Seconds: 47, Milliseconds: 295}},
	}

	for _, tt := range tests {
		if got := SnapshotOf(tt.ms); got != tt.want {
			t.Errorf("SnapshotOf(%d) = %+v, want %+v", tt.ms, got, tt.want)
		}
	}
}

func TestMonotonicClock(t *testing.T) {
	c := NewMonotonicClock()
	first := c.Millis()
	time.Sleep(5 * time.Millisecond)
	second := c.Millis()

	if second < first+4 {
		t.Errorf("Millis() advanced from %d to %d, want at least 4ms", first, second)
	}
}

func TestManualClock(t *testing.T) {
	c := &ManualClock{Ms: 0xFFFFFFFF}
	c.Advance(2 * time.Millisecond)
	if c.Millis() != 1 {
		t.Errorf("Millis() after wrap = %d, want 1", c.Millis())
	}

	c.Ms = 3_661_005
	if got := Now(c); got.Hours != 1 || got.Milliseconds != 5 {
		t.Errorf("Now() = %+v", got)
	}
}
