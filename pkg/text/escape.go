package text

import (
	"strings"
	"unicode/utf8"

	"github.com/mogest/elnom/pkg/elnom"
)

// Escaped recognizes text interleaving runs matched by normal with escape
// sequences introduced by the control rune ctrl. On seeing ctrl the
// escapable parser must match what follows; a miss there fails the whole
// parse with Recoverable(escaped). The loop ends when neither side can
// progress, and the consumed input is returned verbatim, control runes and
// escape text included.
//
// normal must not match ctrl and must consume when it matches, or the
// loop ends where it stands. At least one unit must be consumed overall;
// otherwise the normal recognizer's own error is returned.
func Escaped[N, E any](normal elnom.Parser[string, N], ctrl rune, escapable elnom.Parser[string, E]) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		cur := in
		for len(cur) > 0 {
			r, size := utf8.DecodeRuneInString(cur)
			if r == ctrl {
				_, rest, err := escapable(cur[size:])
				if err != nil {
					if elnom.IsRecoverable(err) {
						return "", in, elnom.NewError(elnom.KindEscaped, in)
					}
					return "", in, err
				}
				cur = rest
				continue
			}
			_, rest, err := normal(cur)
			if err != nil {
				if !elnom.IsRecoverable(err) {
					return "", in, err
				}
				break
			}
			if len(rest) == len(cur) {
				break
			}
			cur = rest
		}
		if len(cur) == len(in) {
			return failEmptyEscape(normal, in)
		}
		return in[:len(in)-len(cur)], cur, nil
	}
}

// EscapedTransform is Escaped with substitution: each escape sequence is
// replaced by the transform parser's value and each normal run by its own
// value, producing a new string rather than a slice of the input.
func EscapedTransform(normal elnom.Parser[string, string], ctrl rune, transform elnom.Parser[string, string]) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		var b strings.Builder
		cur := in
		for len(cur) > 0 {
			r, size := utf8.DecodeRuneInString(cur)
			if r == ctrl {
				v, rest, err := transform(cur[size:])
				if err != nil {
					if elnom.IsRecoverable(err) {
						return "", in, elnom.NewError(elnom.KindEscaped, in)
					}
					return "", in, err
				}
				b.WriteString(v)
				cur = rest
				continue
			}
			v, rest, err := normal(cur)
			if err != nil {
				if !elnom.IsRecoverable(err) {
					return "", in, err
				}
				break
			}
			if len(rest) == len(cur) {
				break
			}
			b.WriteString(v)
			cur = rest
		}
		if len(cur) == len(in) {
			return failEmptyEscape(normal, in)
		}
		return b.String(), cur, nil
	}
}

// failEmptyEscape reports the zero-consumption case: the normal
// recognizer's error when it fails, a bare escaped error when it matched
// zero-width.
func failEmptyEscape[N any](normal elnom.Parser[string, N], in string) (string, string, error) {
	_, _, err := normal(in)
	if err != nil {
		return "", in, err
	}
	return "", in, elnom.NewError(elnom.KindEscaped, in)
}
