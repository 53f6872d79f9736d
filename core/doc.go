// Package core defines the shared types used across serlog.
//
// It provides the Level type for threshold filtering, the Arg type that
// carries one typed format argument, the Source abstraction over text
// stored in ordinary or read-only memory, and the millisecond Clock with
// its H:M:S.mmm Snapshot.
//
// Arg replaces a C-style variadic list: every value is tagged with its
// kind, so a format conversion can never read an argument of the wrong
// width. Numeric values share a single int64 or float64 slot and only
// Source arguments hold an interface.
//
// A Source reads one byte at a time and returns 0 past the end. Text
// wraps a Go string; Paged reads a NUL-terminated string out of a Memory
// such as a flash image. Consumers never index a Source directly and
// never scan more than MaxSourceLen bytes.
package core
