// Package textenc parses encoded text fields out of byte buffers: the
// fixed-size, terminated and take-the-rest string shapes that binary
// formats use, decoded through golang.org/x/text encodings.
//
// Parsers here take []byte input like package bin but produce Go strings.
// The encoding argument is any [encoding.Encoding]; ByName resolves the
// common names ("UTF-16LE", "SJIS", "ISO-8859-1", ...) for callers
// configured with a string. Decoding failures surface as
// Recoverable(map_res), keeping the closed error model; use [Decode]
// directly when the underlying decoder error matters.
package textenc
