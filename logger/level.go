package logger

import (
	"github.com/Philipp01105/serlog/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel = core.DebugLevel
	InfoLevel  = core.InfoLevel
	ErrorLevel = core.ErrorLevel
)

// ParseLevel converts a string to a Level, defaulting to InfoLevel
func ParseLevel(s string) Level {
	return core.ParseLevel(s)
}
