package formatter

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/Philipp01105/serlog/core"
)

func render(format string, args ...core.Arg) string {
	return string(AppendFormat(nil, core.Text(format), args))
}

func TestAppendFormat_Conversions(t *testing.T) {
	var rom core.ROM
	flash := rom.Store("from flash")

	tests := []struct {
		name   string
		format string
		args   []core.Arg
		want   string
	}{
		{"literal", "plain text", nil, "plain text"},
		{"percent", "100%%", nil, "100%"},
		{"percent does not consume", "%%d", []core.Arg{core.Int8(1)}, "%d"},
		{"text", "%s", []core.Arg{core.Str("ok")}, "ok"},
		{"paged text", "%S", []core.Arg{core.Src(flash)}, "from flash"},
		{"char", "[%c]", []core.Arg{core.Char('x')}, "[x]"},
		{"decimal", "%d", []core.Arg{core.Int8(-128)}, "-128"},
		{"hex", "%x", []core.Arg{core.Int8(10)}, "A"},
		{"hex prefixed", "%X", []core.Arg{core.Int8(10)}, "0xA"},
		{"hex negative", "%x", []core.Arg{core.Int8(-1)}, "FF"},
		{"binary", "%b", []core.Arg{core.Int8(5)}, "101"},
		{"binary prefixed", "%B", []core.Arg{core.Int8(5)}, "0b101"},
		{"binary zero", "%B", []core.Arg{core.Int8(0)}, "0b0"},
		{"long", "%l", []core.Arg{core.Int16(-30000)}, "-30000"},
		{"bool short", "%t%t", []core.Arg{core.Bool(true), core.Bool(false)}, "TF"},
		{"bool long", "%T/%T", []core.Arg{core.Bool(true), core.Bool(false)}, "true/false"},
		{"float", "%f", []core.Arg{core.Float(1.5)}, "1.50"},
		{"double", "%F", []core.Arg{core.Double(-2.125)}, "-2.12"},
		{"unknown code", "%q", []core.Arg{core.Int8(1)}, "q"},
		{"mixed", "%d items, %s", []core.Arg{core.Int8(3), core.Str("ok")}, "3 items, ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := render(tt.format, tt.args...); got != tt.want {
				t.Errorf("AppendFormat(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestAppendFormat_Truncation(t *testing.T) {
	// Wider values are cut to the width the conversion names.
	if got := render("%d", core.Int16(300)); got != "44" {
		t.Errorf("%%d of 300 = %q, want %q", got, "44")
	}
	if got := render("%l", core.Int8(-5)); got != "-5" {
		t.Errorf("%%l of int8 = %q, want %q", got, "-5")
	}
	if got := render("%c", core.Int8(65)); got != "A" {
		t.Errorf("%%c of 65 = %q, want %q", got, "A")
	}
}

func TestAppendFormat_MissingAndMismatched(t *testing.T) {
	tests := []struct {
		format string
		args   []core.Arg
		want   string
	}{
		{"%d and %d", []core.Arg{core.Int8(1)}, "1 and ?"},
		{"%d", []core.Arg{core.Str("x")}, "?"},
		{"%s", []core.Arg{core.Int8(1)}, "?"},
		{"%f", []core.Arg{core.Str("x")}, "?"},
		{"%d", []core.Arg{{}}, "?"},
		{"%s", nil, "?"},
	}

	for _, tt := range tests {
		if got := render(tt.format, tt.args...); got != tt.want {
			t.Errorf("AppendFormat(%q) = %q, want %q", tt.format, got, tt.want)
		}
	}
}

func TestAppendFormat_TrailingPercent(t *testing.T) {
	if got := render("50%"); got != "50" {
		t.Errorf("trailing %% = %q, want %q", got, "50")
	}

	var rom core.ROM
	p := rom.Store("end%")
	rom = append(rom, 'X', 'Y', 0)
	if got := string(AppendFormat(nil, p, nil)); got != "end" {
		t.Errorf("paged trailing %% = %q, want %q", got, "end")
	}
}

func TestAppendFormat_PagedFormat(t *testing.T) {
	var rom core.ROM
	format := rom.Store("%s=%d")
	got := string(AppendFormat(nil, format, []core.Arg{core.Str("n"), core.Int8(7)}))
	if got != "n=7" {
		t.Errorf("AppendFormat(paged) = %q, want %q", got, "n=7")
	}
}

func TestAppendFormat_EmbeddedNUL(t *testing.T) {
	if got := render("ab\x00cd"); got != "ab" {
		t.Errorf("AppendFormat() = %q, want %q", got, "ab")
	}
	if got := render("%s!", core.Str("x\x00y")); got != "x!" {
		t.Errorf("AppendFormat() = %q, want %q", got, "x!")
	}
}

func TestAppendFormat_Independent(t *testing.T) {
	format := core.Text("%d")
	first := string(AppendFormat(nil, format, []core.Arg{core.Int8(1)}))
	second := string(AppendFormat(nil, format, []core.Arg{core.Int8(2)}))
	if first != "1" || second != "2" {
		t.Errorf("renders = %q, %q", first, second)
	}
	if format != "%d" {
		t.Error("format was modified")
	}
}

func TestAppendFormat_FloatSpecials(t *testing.T) {
	tests := []struct {
		arg  core.Arg
		want string
	}{
		{core.Double(math.NaN()), "nan"},
		{core.Double(math.Inf(1)), "inf"},
		{core.Double(math.Inf(-1)), "-inf"},
		{core.Int8(3), "3.00"},
	}
	for _, tt := range tests {
		if got := render("%F", tt.arg); got != tt.want {
			t.Errorf("%%F of %v = %q, want %q", tt.arg, got, tt.want)
		}
	}
}

func TestInterpreter_Precision(t *testing.T) {
	f := NewInterpreter(Config{FloatPrecision: Precision(4), Missing: '#'})
	got := string(f.AppendFormat(nil, core.Text("%F %d"), []core.Arg{core.Double(3.14159)}))
	if got != "3.1416 #" {
		t.Errorf("AppendFormat() = %q, want %q", got, "3.1416 #")
	}
}

func TestInterpreter_PrecisionZeroAndDefault(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{"default", Config{}, "2.25 3.75"},
		{"zero", Config{FloatPrecision: Precision(0)}, "2 4"},
		{"negative falls back", Config{FloatPrecision: Precision(-1)}, "2.25 3.75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewInterpreter(tt.cfg)
			got := string(f.AppendFormat(nil, core.Text("%f %F"), []core.Arg{core.Float(2.25), core.Double(3.75)}))
			if got != tt.want {
				t.Errorf("AppendFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestAppendFormat_LongTextCapped(t *testing.T) {
	long := strings.Repeat("a", core.MaxSourceLen+10)

	if got := len(render("%s", core.Str(long))); got != core.MaxSourceLen {
		t.Errorf("%%s of long text wrote %d bytes, want %d", got, core.MaxSourceLen)
	}
	if got := len(render(long)); got != core.MaxSourceLen {
		t.Errorf("long format wrote %d bytes, want %d", got, core.MaxSourceLen)
	}
}

func TestInterpreter_Render(t *testing.T) {
	var buf bytes.Buffer
	f := NewInterpreter(Config{})
	if err := f.Render(&buf, core.Text("v=%d"), []core.Arg{core.Int8(9)}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if buf.String() != "v=9" {
		t.Errorf("Render() wrote %q", buf.String())
	}
}

func TestInterpreter_RenderEmpty(t *testing.T) {
	f := NewInterpreter(Config{})
	if err := f.Render(failingWriter{}, core.Text(""), nil); err != nil {
		t.Errorf("Render() of empty output = %v, want no write", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestInterpreter_RenderError(t *testing.T) {
	f := NewInterpreter(Config{})
	if err := f.Render(failingWriter{}, core.Text("x"), nil); err == nil {
		t.Error("Expected write error")
	}
}

func BenchmarkAppendFormat(b *testing.B) {
	format := core.Text("sensor %d reads %F (%s)")
	args := []core.Arg{core.Int8(3), core.Double(21.5), core.Str("ok")}
	buf := make([]byte, 0, 128)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = AppendFormat(buf[:0], format, args)
	}
}
