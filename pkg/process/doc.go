// Package process applies byte-level transforms (XOR, zlib inflation,
// bit rotation) to delimited regions of input before parsing them, the
// way container formats wrap an obfuscated or compressed payload inside a
// framed outer structure.
//
// A [Func] is a plain []byte transform backed by the Kaitai Struct
// runtime's process functions. [Region] lifts one into a parser: it
// slices a region out of the stream with an ordinary parser (typically
// [github.com/mogest/elnom/pkg/elnom.LengthData] or
// [github.com/mogest/elnom/pkg/bin.Take]), transforms the slice, and runs
// an inner parser over the transformed bytes.
//
// [Registry] resolves textual specifications such as "xor(0x5f)" or
// "zlib" for callers that configure processing dynamically, for example
// from a command line flag.
package process
