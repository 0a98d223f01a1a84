package bin

import (
	"strings"

	"github.com/mogest/elnom/pkg/elnom"
)

// Byte matches exactly the byte want.
func Byte(want byte) elnom.Parser[[]byte, byte] {
	return func(in []byte) (byte, []byte, error) {
		if len(in) == 0 || in[0] != want {
			return 0, in, elnom.NewError(elnom.KindChar, in)
		}
		return in[0], in[1:], nil
	}
}

// Satisfy matches a single byte for which pred holds.
func Satisfy(pred func(byte) bool) elnom.Parser[[]byte, byte] {
	return func(in []byte) (byte, []byte, error) {
		if len(in) == 0 || !pred(in[0]) {
			return 0, in, elnom.NewError(elnom.KindSatisfy, in)
		}
		return in[0], in[1:], nil
	}
}

// OneOf matches a single byte contained in set.
func OneOf(set string) elnom.Parser[[]byte, byte] {
	return func(in []byte) (byte, []byte, error) {
		if len(in) == 0 || strings.IndexByte(set, in[0]) < 0 {
			return 0, in, elnom.NewError(elnom.KindOneOf, in)
		}
		return in[0], in[1:], nil
	}
}

// NoneOf matches a single byte NOT contained in set.
func NoneOf(set string) elnom.Parser[[]byte, byte] {
	return func(in []byte) (byte, []byte, error) {
		if len(in) == 0 || strings.IndexByte(set, in[0]) >= 0 {
			return 0, in, elnom.NewError(elnom.KindNoneOf, in)
		}
		return in[0], in[1:], nil
	}
}

// AnyByte matches any single byte, failing only at end of input.
func AnyByte() elnom.Parser[[]byte, byte] {
	return func(in []byte) (byte, []byte, error) {
		if len(in) == 0 {
			return 0, in, elnom.NewError(elnom.KindAnyChar, in)
		}
		return in[0], in[1:], nil
	}
}

// Tab matches a single tab byte.
func Tab() elnom.Parser[[]byte, byte] { return Byte('\t') }
