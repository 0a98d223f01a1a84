package text

import (
	"strings"

	"github.com/mogest/elnom/pkg/elnom"
)

// Newline matches a single '\n'.
func Newline() elnom.Parser[string, rune] {
	return func(in string) (rune, string, error) {
		if len(in) == 0 || in[0] != '\n' {
			return 0, in, elnom.NewError(elnom.KindNewline, in)
		}
		return '\n', in[1:], nil
	}
}

// Crlf matches exactly the two-character sequence "\r\n".
func Crlf() elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		if !strings.HasPrefix(in, "\r\n") {
			return "", in, elnom.NewError(elnom.KindCRLF, in)
		}
		return in[:2], in[2:], nil
	}
}

// LineEnding matches "\n" or "\r\n".
func LineEnding() elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		switch {
		case strings.HasPrefix(in, "\n"):
			return in[:1], in[1:], nil
		case strings.HasPrefix(in, "\r\n"):
			return in[:2], in[2:], nil
		}
		return "", in, elnom.NewError(elnom.KindLineEnding, in)
	}
}

// NotLineEnding consumes everything before the first "\n" or "\r\n",
// which may be nothing. A lone '\r' not followed by '\n' is a malformed
// line terminator and fails the whole parse rather than passing through.
func NotLineEnding() elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		idx := strings.IndexAny(in, "\r\n")
		if idx < 0 {
			return in, in[len(in):], nil
		}
		if in[idx] == '\r' && !strings.HasPrefix(in[idx:], "\r\n") {
			return "", in, elnom.NewError(elnom.KindLineEnding, in)
		}
		return in[:idx], in[idx:], nil
	}
}
