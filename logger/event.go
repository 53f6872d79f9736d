package logger

import (
	"github.com/Philipp01105/serlog/core"
	"github.com/Philipp01105/serlog/formatter"
)

// Event composes one line from several Printf calls. The decision to
// emit or suppress is made once, when the event begins; a suppressed
// event ignores every call. Close terminates and flushes the line.
//
// On a logger built WithSerialized(true) an open event holds the line
// mutex until Close. Logging through the same logger from the goroutine
// that holds the event, before closing it, deadlocks.
//
//	ev := log.BeginEvent(logger.InfoLevel)
//	defer ev.Close()
//	ev.Printf("sensors:")
//	for _, s := range sensors {
//	    ev.Printf(" %d", logger.Int8(s))
//	}
type Event struct {
	logger  *Logger
	enabled bool
}

// suppressed is shared by every disabled event so the filtered path does
// not allocate.
var suppressed = &Event{}

// BeginEvent checks level against the threshold. If it passes, the line
// header is written immediately and an enabled Event is returned.
func (l *Logger) BeginEvent(level core.Level) *Event {
	if !l.Enabled(level) {
		return suppressed
	}

	l.lock()
	b := formatter.AppendHeader(l.buf[:0], core.Now(l.clock), level, l.Depth())
	l.write(b)
	l.buf = b[:0]
	return &Event{logger: l, enabled: true}
}

// Event runs fn inside an event and closes it on every exit path
func (l *Logger) Event(level core.Level, fn func(e *Event)) {
	e := l.BeginEvent(level)
	defer e.Close()
	fn(e)
}

// Enabled reports whether the event writes anything
func (e *Event) Enabled() bool {
	return e != nil && e.enabled
}

// Printf appends formatted text to the line
func (e *Event) Printf(format string, args ...core.Arg) {
	if !e.Enabled() {
		return
	}
	e.printf(core.Text(format), args)
}

// PrintfFrom appends formatted text whose format lives in read-only memory
func (e *Event) PrintfFrom(format core.Source, args ...core.Arg) {
	if !e.Enabled() {
		return
	}
	e.printf(format, args)
}

// printf renders one fragment through the interpreter's pooled buffer
// straight to the transport.
func (e *Event) printf(format core.Source, args []core.Arg) {
	l := e.logger
	if err := l.interp.Render(l.transport, format, args); err != nil && l.onError != nil {
		l.onError(err)
	}
}

// Close writes the line terminator and flushes the transport. It is safe
// to call more than once.
func (e *Event) Close() {
	if !e.Enabled() {
		return
	}
	e.enabled = false

	l := e.logger
	b := append(l.buf[:0], l.lineEnding...)
	l.write(b)
	l.flush()
	l.buf = b[:0]
	l.unlock()
}
