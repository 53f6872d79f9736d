package core

import (
	"strconv"
)

// ArgKind tags the value carried by an Arg
type ArgKind uint8

const (
	// InvalidKind is the zero Arg; it renders as a missing argument.
	InvalidKind ArgKind = iota
	TextKind
	SourceKind
	CharKind
	Int8Kind
	Int16Kind
	BoolKind
	FloatKind
	DoubleKind
)

// String returns the kind name
func (k ArgKind) String() string {
	switch k {
	case TextKind:
		return "text"
	case SourceKind:
		return "source"
	case CharKind:
		return "char"
	case Int8Kind:
		return "int8"
	case Int16Kind:
		return "int16"
	case BoolKind:
		return "bool"
	case FloatKind:
		return "float"
	case DoubleKind:
		return "double"
	default:
		return "invalid"
	}
}

// Arg is one typed format argument. Integers, chars and bools share Int64
// and both float widths share Float64 so an Arg never escapes to the heap
// unless it carries a Source.
type Arg struct {
	Kind    ArgKind
	Int64   int64
	Float64 float64
	Str     string
	Src     Source
}

// Str creates a text argument for %s
func Str(s string) Arg {
	return Arg{Kind: TextKind, Str: s}
}

// Src creates a read-only memory argument for %S
func Src(src Source) Arg {
	return Arg{Kind: SourceKind, Src: src}
}

// Char creates a character argument for %c
func Char(c byte) Arg {
	return Arg{Kind: CharKind, Int64: int64(c)}
}

// Int8 creates a narrow integer argument for %d %x %X %b %B
func Int8(v int8) Arg {
	return Arg{Kind: Int8Kind, Int64: int64(v)}
}

// Int16 creates a wide integer argument for %l
func Int16(v int16) Arg {
	return Arg{Kind: Int16Kind, Int64: int64(v)}
}

// Bool creates a boolean argument for %t and %T
func Bool(b bool) Arg {
	var v int64
	if b {
		v = 1
	}
	return Arg{Kind: BoolKind, Int64: v}
}

// Float creates a single precision argument for %f
func Float(f float32) Arg {
	return Arg{Kind: FloatKind, Float64: float64(f)}
}

// Double creates a double precision argument for %F
func Double(f float64) Arg {
	return Arg{Kind: DoubleKind, Float64: f}
}

// Integer returns the argument as an integer. Floats truncate toward zero.
// ok is false for text, sources and the zero Arg.
func (a Arg) Integer() (v int64, ok bool) {
	switch a.Kind {
	case CharKind, Int8Kind, Int16Kind, BoolKind:
		return a.Int64, true
	case FloatKind, DoubleKind:
		return int64(a.Float64), true
	default:
		return 0, false
	}
}

// Real returns the argument as a float64. ok is false for non-numeric kinds.
func (a Arg) Real() (v float64, ok bool) {
	switch a.Kind {
	case FloatKind, DoubleKind:
		return a.Float64, true
	case CharKind, Int8Kind, Int16Kind, BoolKind:
		return float64(a.Int64), true
	default:
		return 0, false
	}
}

// Text returns the argument as a Source. ok is false for non-text kinds.
func (a Arg) Text() (src Source, ok bool) {
	switch a.Kind {
	case TextKind:
		return Text(a.Str), true
	case SourceKind:
		if a.Src == nil {
			return Text(""), true
		}
		return a.Src, true
	default:
		return nil, false
	}
}

// String returns a diagnostic representation of the argument value
func (a Arg) String() string {
	switch a.Kind {
	case TextKind:
		return a.Str
	case SourceKind:
		if a.Src == nil {
			return ""
		}
		return SourceString(a.Src)
	case CharKind:
		return string(rune(byte(a.Int64)))
	case Int8Kind, Int16Kind:
		return strconv.FormatInt(a.Int64, 10)
	case BoolKind:
		return strconv.FormatBool(a.Int64 == 1)
	case FloatKind:
		return strconv.FormatFloat(a.Float64, 'f', -1, 32)
	case DoubleKind:
		return strconv.FormatFloat(a.Float64, 'f', -1, 64)
	default:
		return ""
	}
}
