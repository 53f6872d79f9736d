package formatter

import (
	"github.com/Philipp01105/serlog/core"
)

// pre-formatted level tags, each followed by the field separator
var levelTags = [...]string{
	core.DebugLevel: "DEBUG\t",
	core.InfoLevel:  "INFO\t",
	core.ErrorLevel: "ERROR\t",
}

// AppendSnapshot appends the clock as HHHH:MM:SS.mmm. Hours are padded
// with spaces, the other fields with zeros.
func AppendSnapshot(dst []byte, s core.Snapshot) []byte {
	dst = AppendFixed(dst, s.Hours, 4, ' ')
	dst = append(dst, ':')
	dst = AppendFixed(dst, uint32(s.Minutes), 2, '0')
	dst = append(dst, ':')
	dst = AppendFixed(dst, uint32(s.Seconds), 2, '0')
	dst = append(dst, '.')
	return AppendFixed(dst, uint32(s.Milliseconds), 3, '0')
}

// AppendHeader appends the line header: time, tab, level tag, tab, then
// two spaces per indentation level.
func AppendHeader(dst []byte, s core.Snapshot, level core.Level, depth int) []byte {
	dst = AppendSnapshot(dst, s)
	dst = append(dst, '\t')

	if level >= 0 && int(level) < len(levelTags) {
		dst = append(dst, levelTags[level]...)
	} else {
		dst = append(dst, "UNKNOWN\t"...)
	}

	for i := 0; i < depth; i++ {
		dst = append(dst, ' ', ' ')
	}
	return dst
}
