package logger

import (
	"sync"
	"sync/atomic"

	"github.com/Philipp01105/serlog/core"
	"github.com/Philipp01105/serlog/formatter"
	"github.com/Philipp01105/serlog/transport"
)

// Logger writes leveled, timestamped lines to a transport.
//
// A Logger is meant for a single execution context: it keeps one scratch
// buffer and writes without locking. Build it WithSerialized(true) when
// several goroutines log through it; each line then holds a mutex from
// header to terminator.
type Logger struct {
	transport  transport.Transport
	interp     *formatter.Interpreter
	clock      core.Clock
	level      atomic.Int32
	depth      atomic.Int32
	lineEnding string
	serialized bool
	onError    func(error)
	mu         sync.Mutex
	buf        []byte
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	transport  transport.Transport
	format     formatter.Config
	clock      core.Clock
	level      core.Level
	lineEnding string
	serialized bool
	onError    func(error)
}

// NewBuilder creates a new logger builder
func NewBuilder() *Builder {
	return &Builder{
		level:      core.DebugLevel, // Everything is emitted until Init says otherwise
		lineEnding: "\n",
	}
}

// WithTransport sets the output transport
func (b *Builder) WithTransport(t transport.Transport) *Builder {
	b.transport = t
	return b
}

// WithLevel sets the threshold
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithClock sets the millisecond clock used for line headers
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithLineEnding sets the line terminator, "\n" by default
func (b *Builder) WithLineEnding(s string) *Builder {
	b.lineEnding = s
	return b
}

// WithFormatter configures the format interpreter
func (b *Builder) WithFormatter(cfg formatter.Config) *Builder {
	b.format = cfg
	return b
}

// WithSerialized guards every line with a mutex. The mutex is held from
// BeginEvent to Event.Close, so code running while an event is open must
// not log through the same logger.
func (b *Builder) WithSerialized(enabled bool) *Builder {
	b.serialized = enabled
	return b
}

// WithErrorHandler installs a callback for transport errors. Log calls
// never return errors; without a handler failures are only counted by
// the transport.
func (b *Builder) WithErrorHandler(fn func(error)) *Builder {
	b.onError = fn
	return b
}

// Build creates the Logger instance
func (b *Builder) Build() *Logger {
	clock := b.clock
	if clock == nil {
		clock = core.NewMonotonicClock()
	}
	l := &Logger{
		transport:  b.transport,
		interp:     formatter.NewInterpreter(b.format),
		clock:      clock,
		lineEnding: b.lineEnding,
		serialized: b.serialized,
		onError:    b.onError,
		buf:        make([]byte, 0, 128),
	}
	l.level.Store(int32(b.level))
	return l
}

// Level returns the current threshold
func (l *Logger) Level() core.Level {
	return core.Level(l.level.Load())
}

// SetLevel changes the threshold
func (l *Logger) SetLevel(level core.Level) {
	l.level.Store(int32(level))
}

// Enabled reports whether a line at level would be written
func (l *Logger) Enabled(level core.Level) bool {
	return l.transport != nil && level.Enabled(l.Level())
}

// Depth returns the current indentation depth
func (l *Logger) Depth() int {
	return int(l.depth.Load())
}

// Log writes one complete line at the specified level
func (l *Logger) Log(level core.Level, format core.Source, args ...core.Arg) {
	// Level check before any locking or formatting
	if !l.Enabled(level) {
		return
	}
	l.log(level, format, args)
}

// log renders header, message and terminator into the scratch buffer and
// hands the line to the transport in one write.
func (l *Logger) log(level core.Level, format core.Source, args []core.Arg) {
	l.lock()
	b := formatter.AppendHeader(l.buf[:0], core.Now(l.clock), level, l.Depth())
	b = l.interp.AppendFormat(b, format, args)
	b = append(b, l.lineEnding...)
	l.write(b)
	l.flush()
	l.buf = b[:0]
	l.unlock()
}

// Error logs a message at ERROR level
func (l *Logger) Error(format string, args ...core.Arg) {
	if !l.Enabled(core.ErrorLevel) {
		return
	}
	l.log(core.ErrorLevel, core.Text(format), args)
}

// Info logs a message at INFO level
func (l *Logger) Info(format string, args ...core.Arg) {
	if !l.Enabled(core.InfoLevel) {
		return
	}
	l.log(core.InfoLevel, core.Text(format), args)
}

// Debug logs a message at DEBUG level
func (l *Logger) Debug(format string, args ...core.Arg) {
	if !l.Enabled(core.DebugLevel) {
		return
	}
	l.log(core.DebugLevel, core.Text(format), args)
}

// ErrorFrom logs a message whose format lives in read-only memory
func (l *Logger) ErrorFrom(format core.Source, args ...core.Arg) {
	l.Log(core.ErrorLevel, format, args...)
}

// InfoFrom logs a message whose format lives in read-only memory
func (l *Logger) InfoFrom(format core.Source, args ...core.Arg) {
	l.Log(core.InfoLevel, format, args...)
}

// DebugFrom logs a message whose format lives in read-only memory
func (l *Logger) DebugFrom(format core.Source, args ...core.Arg) {
	l.Log(core.DebugLevel, format, args...)
}

// Stats returns the transport statistics, if the transport keeps any
func (l *Logger) Stats() transport.Snapshot {
	if sp, ok := l.transport.(transport.StatsProvider); ok {
		return sp.Stats()
	}
	return transport.Snapshot{}
}

// Close closes the logger's transport
func (l *Logger) Close() error {
	if l.transport != nil {
		return l.transport.Close()
	}
	return nil
}

func (l *Logger) lock() {
	if l.serialized {
		l.mu.Lock()
	}
}

func (l *Logger) unlock() {
	if l.serialized {
		l.mu.Unlock()
	}
}

func (l *Logger) write(b []byte) {
	if _, err := l.transport.Write(b); err != nil && l.onError != nil {
		l.onError(err)
	}
}

func (l *Logger) flush() {
	if err := l.transport.Flush(); err != nil && l.onError != nil {
		l.onError(err)
	}
}

// Flush flushes the transport outside of any line
func (l *Logger) Flush() error {
	if l.transport == nil {
		return nil
	}
	return l.transport.Flush()
}
