package bin

import (
	"bytes"

	"github.com/mogest/elnom/pkg/elnom"
)

// Newline matches a single '\n' byte.
func Newline() elnom.Parser[[]byte, byte] {
	return func(in []byte) (byte, []byte, error) {
		if len(in) == 0 || in[0] != '\n' {
			return 0, in, elnom.NewError(elnom.KindNewline, in)
		}
		return '\n', in[1:], nil
	}
}

// Crlf matches exactly the two-byte sequence "\r\n".
func Crlf() elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		if !bytes.HasPrefix(in, []byte("\r\n")) {
			return nil, in, elnom.NewError(elnom.KindCRLF, in)
		}
		return in[:2], in[2:], nil
	}
}

// LineEnding matches "\n" or "\r\n".
func LineEnding() elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		if len(in) > 0 && in[0] == '\n' {
			return in[:1], in[1:], nil
		}
		if len(in) > 1 && in[0] == '\r' && in[1] == '\n' {
			return in[:2], in[2:], nil
		}
		return nil, in, elnom.NewError(elnom.KindLineEnding, in)
	}
}

// NotLineEnding consumes everything before the first "\n" or "\r\n",
// which may be nothing. A lone '\r' not followed by '\n' is a malformed
// line terminator and fails the whole parse.
func NotLineEnding() elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		idx := bytes.IndexAny(in, "\r\n")
		if idx < 0 {
			return in, in[len(in):], nil
		}
		if in[idx] == '\r' && (idx+1 >= len(in) || in[idx+1] != '\n') {
			return nil, in, elnom.NewError(elnom.KindLineEnding, in)
		}
		return in[:idx], in[idx:], nil
	}
}
