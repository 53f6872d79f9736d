package logger

import (
	"sync"

	"github.com/Philipp01105/serlog/core"
	"github.com/Philipp01105/serlog/transport"
	"github.com/Philipp01105/serlog/transport/serialport"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
)

func init() {
	// Initialize default logger on stdout until Init picks a port
	defaultLogger = NewBuilder().
		WithTransport(transport.NewWriterTransport(transport.WriterConfig{})).
		WithLevel(core.DebugLevel).
		Build()
}

// Default returns the default logger
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Init sets the threshold of the default logger
func Init(threshold Level) {
	Default().SetLevel(threshold)
}

// InitSerial opens a serial port and makes a logger writing to it the
// default. The previous default logger is not closed.
func InitSerial(cfg serialport.Config, threshold Level) error {
	port, err := serialport.Open(cfg)
	if err != nil {
		return err
	}
	SetDefault(NewBuilder().
		WithTransport(port).
		WithLevel(threshold).
		Build())
	return nil
}

// Package-level convenience functions using the default logger

// Error logs an error message using the default logger
func Error(format string, args ...Arg) {
	Default().Error(format, args...)
}

// Info logs an info message using the default logger
func Info(format string, args ...Arg) {
	Default().Info(format, args...)
}

// Debug logs a debug message using the default logger
func Debug(format string, args ...Arg) {
	Default().Debug(format, args...)
}

// ErrorFrom logs an error message with a read-only format using the default logger
func ErrorFrom(format core.Source, args ...Arg) {
	Default().ErrorFrom(format, args...)
}

// InfoFrom logs an info message with a read-only format using the default logger
func InfoFrom(format core.Source, args ...Arg) {
	Default().InfoFrom(format, args...)
}

// DebugFrom logs a debug message with a read-only format using the default logger
func DebugFrom(format core.Source, args ...Arg) {
	Default().DebugFrom(format, args...)
}

// BeginEvent starts an event on the default logger
func BeginEvent(level Level) *Event {
	return Default().BeginEvent(level)
}

// Indent opens an indentation scope on the default logger
func Indent() *IndentScope {
	return Default().Indent()
}
