// Package logger is the public API of serlog. Most users only need to
// import this package.
//
// Every emitted line has the form
//
//	HHHH:MM:SS.mmm<TAB>LEVEL<TAB><indent>message<line ending>
//
// where the time is taken from a millisecond Clock, LEVEL is DEBUG, INFO
// or ERROR, and indent is two spaces per open IndentScope. Lines below
// the threshold cost a single comparison and produce no output.
//
// The package keeps a default Logger writing to stdout. Init sets its
// threshold and InitSerial moves it to a serial port:
//
//	logger.InitSerial(serialport.Config{Baud: 115200}, logger.InfoLevel)
//	logger.Info("boot %d of %s", logger.Int8(3), logger.Str("fw"))
//
// A line can be assembled from several calls with an Event, and nested
// output is indented with Indent:
//
//	scope := log.Indent()
//	defer scope.Close()
//	ev := log.BeginEvent(logger.DebugLevel)
//	defer ev.Close()
//	ev.Printf("regs:")
//	ev.Printf(" %X", logger.Int8(reg))
//
// Format strings follow the conversion table of the formatter package.
// Arguments are typed values built with Str, Int8, Bool and friends, so
// a conversion never reads an argument of the wrong width.
//
// A Logger has no internal locking unless built WithSerialized(true).
// With serialization enabled, do not log through the same Logger while
// one of its events is open on the same goroutine.
package logger
