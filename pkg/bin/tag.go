package bin

import (
	"bytes"

	"github.com/mogest/elnom/pkg/elnom"
)

// Tag matches the literal byte sequence tag at the start of the input. The
// empty literal matches trivially without consuming.
func Tag(tag []byte) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		if !bytes.HasPrefix(in, tag) {
			return nil, in, elnom.NewError(elnom.KindTag, in)
		}
		return in[:len(tag)], in[len(tag):], nil
	}
}

// TagNoCase matches tag ignoring ASCII letter case; bytes outside A-Z and
// a-z must match exactly. The matched input keeps its original bytes.
func TagNoCase(tag []byte) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		if len(in) < len(tag) {
			return nil, in, elnom.NewError(elnom.KindTag, in)
		}
		for i, want := range tag {
			if lowerASCII(in[i]) != lowerASCII(want) {
				return nil, in, elnom.NewError(elnom.KindTag, in)
			}
		}
		return in[:len(tag)], in[len(tag):], nil
	}
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
