// Package kstream runs parsers against Kaitai Struct runtime streams, so
// grammars written with this module drop into code that already moves a
// *kaitai.Stream around (file readers, nested substreams).
//
// Parse reads the stream's unread remainder, applies a []byte parser, and
// leaves the stream positioned exactly past what the parser consumed; on
// failure the position is restored, preserving the no-consumption rule
// across the stream boundary.
package kstream
