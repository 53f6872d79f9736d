package formatter

import (
	"io"
	"strconv"

	"github.com/Philipp01105/serlog/core"
)

// Interpreter renders printf-style format sources against typed arguments.
//
// Supported conversions:
//
//	%%  literal '%'              -
//	%s  text                     Str, Src
//	%S  text in read-only memory Src, Str
//	%c  character                Char (any integer)
//	%d  signed decimal           Int8
//	%x  hex, no prefix           Int8
//	%X  hex, 0x prefix           Int8
//	%b  binary, no prefix        Int8
//	%B  binary, 0b prefix        Int8
//	%l  signed decimal           Int16
//	%t  T or F                   Bool
//	%T  true or false            Bool
//	%f  single precision float   Float
//	%F  double precision float   Double
//
// Any other code is written verbatim. Integer arguments are truncated to
// the width of the conversion.
type Interpreter struct {
	Config
	precision int
}

// NewInterpreter creates a new interpreter
func NewInterpreter(cfg Config) *Interpreter {
	applyDefaults(&cfg)
	return &Interpreter{Config: cfg, precision: *cfg.FloatPrecision}
}

var defaultInterpreter = NewInterpreter(Config{})

// AppendFormat renders format with the default interpreter
func AppendFormat(dst []byte, format core.Source, args []core.Arg) []byte {
	return defaultInterpreter.AppendFormat(dst, format, args)
}

// Render formats into a pooled buffer and writes it to w with a single
// Write call. Nothing is written when the result is empty.
func (f *Interpreter) Render(w io.Writer, format core.Source, args []core.Arg) error {
	buf := getBuffer()
	defer putBuffer(buf)
	buf.Write(f.AppendFormat(buf.AvailableBuffer(), format, args))
	if buf.Len() == 0 {
		return nil
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// AppendFormat scans format one byte at a time and appends the rendered
// text to dst. Arguments are consumed left to right, one per conversion
// that takes an argument.
func (f *Interpreter) AppendFormat(dst []byte, format core.Source, args []core.Arg) []byte {
	if format == nil {
		return dst
	}
	next := 0
	for i := 0; i < core.MaxSourceLen; i++ {
		c := format.ByteAt(i)
		if c == 0 {
			break
		}
		if c != '%' {
			dst = append(dst, c)
			continue
		}

		i++
		code := format.ByteAt(i)
		if code == 0 {
			// Trailing '%': the terminator ends the scan.
			break
		}
		if !takesArg(code) {
			dst = append(dst, code)
			continue
		}
		if next >= len(args) {
			dst = append(dst, f.Missing)
			continue
		}
		dst = f.appendConversion(dst, code, args[next])
		next++
	}
	return dst
}

func takesArg(code byte) bool {
	switch code {
	case 's', 'S', 'c', 'd', 'x', 'X', 'b', 'B', 'l', 't', 'T', 'f', 'F':
		return true
	default:
		return false
	}
}

// appendConversion renders a single argument for code
func (f *Interpreter) appendConversion(dst []byte, code byte, arg core.Arg) []byte {
	switch code {
	case 's', 'S':
		src, ok := arg.Text()
		if !ok {
			return append(dst, f.Missing)
		}
		return appendSource(dst, src)
	case 'f', 'F':
		v, ok := arg.Real()
		if !ok {
			return append(dst, f.Missing)
		}
		if code == 'f' {
			return appendReal(dst, float64(float32(v)), f.precision, 32)
		}
		return appendReal(dst, v, f.precision, 64)
	}

	v, ok := arg.Integer()
	if !ok {
		return append(dst, f.Missing)
	}
	switch code {
	case 'c':
		return append(dst, byte(v))
	case 'd':
		return strconv.AppendInt(dst, int64(int8(v)), 10)
	case 'x':
		return AppendHex(dst, int8(v))
	case 'X':
		return AppendHex(append(dst, '0', 'x'), int8(v))
	case 'b':
		return AppendBinary(dst, int8(v))
	case 'B':
		return AppendBinary(append(dst, '0', 'b'), int8(v))
	case 'l':
		return strconv.AppendInt(dst, int64(int16(v)), 10)
	case 't':
		if v != 0 {
			return append(dst, 'T')
		}
		return append(dst, 'F')
	case 'T':
		if v != 0 {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	}
	return dst
}

// appendSource copies a NUL-terminated source into dst
func appendSource(dst []byte, src core.Source) []byte {
	if t, ok := src.(core.Text); ok {
		return append(dst, string(t[:core.TextLen(t)])...)
	}
	for i := 0; i < core.MaxSourceLen; i++ {
		c := src.ByteAt(i)
		if c == 0 {
			break
		}
		dst = append(dst, c)
	}
	return dst
}
