// Package bin provides the []byte-mode primitive recognizers: literals,
// byte classes, bounded takes, escape loops and fixed-width numeric
// decoders for both endiannesses. Offsets are plain byte counts with no
// encoding awareness; decoding encoded text out of byte buffers is the job
// of [github.com/mogest/elnom/pkg/textenc].
//
// Combine these with the combinators in
// [github.com/mogest/elnom/pkg/elnom]. The string-oriented equivalents
// live in [github.com/mogest/elnom/pkg/text]; a parser tree should stick
// to one mode package.
//
// # Numeric decoders
//
// Integer decoders exist for widths 1, 2, 3, 4, 8 and 16 bytes, signed and
// unsigned, big and little endian, plus IEEE-754 floats of 4 and 8 bytes.
// Each consumes exactly its width or fails with eof; there is no partial
// decode. The 16-byte decoders return *big.Int since no machine integer
// holds them.
package bin
