package text

import (
	"strings"
	"unicode/utf8"

	"github.com/mogest/elnom/pkg/elnom"
)

// Char matches exactly the rune want.
func Char(want rune) elnom.Parser[string, rune] {
	return func(in string) (rune, string, error) {
		r, size := utf8.DecodeRuneInString(in)
		if size == 0 || r != want {
			return 0, in, elnom.NewError(elnom.KindChar, in)
		}
		return r, in[size:], nil
	}
}

// Satisfy matches a single rune for which pred holds.
func Satisfy(pred func(rune) bool) elnom.Parser[string, rune] {
	return func(in string) (rune, string, error) {
		r, size := utf8.DecodeRuneInString(in)
		if size == 0 || !pred(r) {
			return 0, in, elnom.NewError(elnom.KindSatisfy, in)
		}
		return r, in[size:], nil
	}
}

// OneOf matches a single rune contained in set.
func OneOf(set string) elnom.Parser[string, rune] {
	return func(in string) (rune, string, error) {
		r, size := utf8.DecodeRuneInString(in)
		if size == 0 || !strings.ContainsRune(set, r) {
			return 0, in, elnom.NewError(elnom.KindOneOf, in)
		}
		return r, in[size:], nil
	}
}

// NoneOf matches a single rune NOT contained in set.
func NoneOf(set string) elnom.Parser[string, rune] {
	return func(in string) (rune, string, error) {
		r, size := utf8.DecodeRuneInString(in)
		if size == 0 || strings.ContainsRune(set, r) {
			return 0, in, elnom.NewError(elnom.KindNoneOf, in)
		}
		return r, in[size:], nil
	}
}

// AnyChar matches any single rune, failing only at end of input.
func AnyChar() elnom.Parser[string, rune] {
	return func(in string) (rune, string, error) {
		r, size := utf8.DecodeRuneInString(in)
		if size == 0 {
			return 0, in, elnom.NewError(elnom.KindAnyChar, in)
		}
		return r, in[size:], nil
	}
}

// Tab matches a single tab character.
func Tab() elnom.Parser[string, rune] { return Char('\t') }
