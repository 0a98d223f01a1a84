package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mogest/elnom/pkg/elnom"
)

// Tag matches the literal tag at the start of the input. The empty literal
// matches trivially without consuming.
func Tag(tag string) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		if !strings.HasPrefix(in, tag) {
			return "", in, elnom.NewError(elnom.KindTag, in)
		}
		return in[:len(tag)], in[len(tag):], nil
	}
}

// TagNoCase matches the literal tag ignoring case, comparing rune by rune
// under simple Unicode case folding. The matched input is returned in its
// original spelling.
func TagNoCase(tag string) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		off := 0
		for _, want := range tag {
			r, size := utf8.DecodeRuneInString(in[off:])
			if size == 0 || !foldEq(r, want) {
				return "", in, elnom.NewError(elnom.KindTag, in)
			}
			off += size
		}
		return in[:off], in[off:], nil
	}
}

func foldEq(a, b rune) bool {
	if a == b {
		return true
	}
	for r := unicode.SimpleFold(a); r != a; r = unicode.SimpleFold(r) {
		if r == b {
			return true
		}
	}
	return false
}
