package core

// MaxSourceLen bounds every scan over a Source. Paged memory that never
// yields a NUL byte stops here instead of looping forever.
const MaxSourceLen = 0xFFFF

// Source yields text one byte at a time. ByteAt returns 0 at and past the
// end of the text, so every Source reads as NUL-terminated.
type Source interface {
	ByteAt(i int) byte
}

// Text is a Source over an ordinary Go string.
type Text string

// ByteAt implements Source
func (t Text) ByteAt(i int) byte {
	if i < 0 || i >= len(t) {
		return 0
	}
	return t[i]
}

// TextLen returns the length of t up to its first NUL, capped at
// MaxSourceLen like every other scan.
func TextLen(t Text) int {
	n := len(t)
	if n > MaxSourceLen {
		n = MaxSourceLen
	}
	for i := 0; i < n; i++ {
		if t[i] == 0 {
			return i
		}
	}
	return n
}

// Memory is read-only storage that must be fetched a byte at a time,
// such as program flash on a Harvard-architecture MCU.
type Memory interface {
	Fetch(addr uint32) byte
}

// ROM is a Memory backed by a byte slice. Reads past the end return 0.
type ROM []byte

// Fetch implements Memory
func (r ROM) Fetch(addr uint32) byte {
	if uint64(addr) >= uint64(len(r)) {
		return 0
	}
	return r[addr]
}

// Paged is a NUL-terminated string stored at Addr in Mem.
type Paged struct {
	Mem  Memory
	Addr uint32
}

// ByteAt implements Source
func (p Paged) ByteAt(i int) byte {
	if p.Mem == nil || i < 0 {
		return 0
	}
	return p.Mem.Fetch(p.Addr + uint32(i))
}

// Store appends s plus a NUL terminator to the ROM and returns a Paged
// pointing at it. The Paged reads through r, so later Stores stay visible.
func (r *ROM) Store(s string) Paged {
	addr := uint32(len(*r))
	*r = append(*r, s...)
	*r = append(*r, 0)
	return Paged{Mem: r, Addr: addr}
}

// SourceString copies a Source into a Go string, stopping at the first NUL
// or after MaxSourceLen bytes.
func SourceString(src Source) string {
	if t, ok := src.(Text); ok {
		return string(t[:TextLen(t)])
	}
	buf := make([]byte, 0, 32)
	for i := 0; i < MaxSourceLen; i++ {
		c := src.ByteAt(i)
		if c == 0 {
			break
		}
		buf = append(buf, c)
	}
	return string(buf)
}
