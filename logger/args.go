package logger

import (
	"github.com/Philipp01105/serlog/core"
)

// Argument helper functions for convenience

// Arg is a typed format argument
type Arg = core.Arg

// Str creates a text argument for %s
func Str(s string) Arg {
	return core.Str(s)
}

// Src creates a read-only memory text argument for %S
func Src(src core.Source) Arg {
	return core.Src(src)
}

// Char creates a character argument for %c
func Char(c byte) Arg {
	return core.Char(c)
}

// Int8 creates an argument for %d %x %X %b %B
func Int8(v int8) Arg {
	return core.Int8(v)
}

// Int16 creates an argument for %l
func Int16(v int16) Arg {
	return core.Int16(v)
}

// Bool creates an argument for %t and %T
func Bool(b bool) Arg {
	return core.Bool(b)
}

// Float creates an argument for %f
func Float(f float32) Arg {
	return core.Float(f)
}

// Double creates an argument for %F
func Double(f float64) Arg {
	return core.Double(f)
}
