// Package transport provides the Transport interface and its built-in
// implementations for moving finished log bytes to a device.
//
// A logger writes header, message and line terminator through Write and
// then calls Flush once per line, so a transport may buffer freely between
// flushes. All transports are synchronous: a call returns after the bytes
// are handed to the device or buffer.
//
// Built-in transports:
//
//   - WriterTransport writes to any io.Writer (default: stdout) and uses the
//     writer's Flush or Sync when present.
//   - FileTransport captures the stream into a file through bufio.
//   - MultiTransport fans out to several transports and combines their
//     errors with multierr.
//   - The uart subpackage drives a serial port through periph.io, or
//     machine.Serial when built with TinyGo.
//
// Every built-in transport counts writes, bytes, flushes and errors in a
// Stats value that can be queried at runtime.
package transport
