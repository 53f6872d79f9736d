// Package formatter turns format sources, typed arguments and clock
// readings into bytes.
//
// The Interpreter walks a core.Source one byte at a time. Literal bytes are
// copied, a '%' selects a conversion from a small fixed table, and each
// conversion that needs a value consumes the next core.Arg. Unknown codes
// are echoed, a trailing '%' ends the scan at the terminator, and a missing
// or mistyped argument is rendered as a single placeholder byte.
//
// Everything is built on Append-style functions (AppendFormat, AppendFixed,
// AppendHeader) so callers can render into a reused slice. Render uses a
// pooled bytes.Buffer and writes the result with one Write call; the
// logger renders event fragments this way.
//
// Buffers larger than 64 KiB are not returned to the pool to prevent
// a single large log line from permanently inflating memory usage.
package formatter
