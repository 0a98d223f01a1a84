package bin

import "github.com/mogest/elnom/pkg/elnom"

// Escaped recognizes bytes interleaving runs matched by normal with
// escape sequences introduced by the control byte ctrl. On seeing ctrl
// the escapable parser must match what follows; a miss there fails the
// whole parse with Recoverable(escaped). The loop ends when neither side
// can progress and the consumed input is returned verbatim.
//
// normal must not match ctrl and must consume when it matches. At least
// one byte must be consumed overall; otherwise the normal recognizer's
// own error is returned.
func Escaped[N, E any](normal elnom.Parser[[]byte, N], ctrl byte, escapable elnom.Parser[[]byte, E]) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		cur := in
		for len(cur) > 0 {
			if cur[0] == ctrl {
				_, rest, err := escapable(cur[1:])
				if err != nil {
					if elnom.IsRecoverable(err) {
						return nil, in, elnom.NewError(elnom.KindEscaped, in)
					}
					return nil, in, err
				}
				cur = rest
				continue
			}
			_, rest, err := normal(cur)
			if err != nil {
				if !elnom.IsRecoverable(err) {
					return nil, in, err
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
// value, producing a fresh byte slice.
func EscapedTransform(normal elnom.Parser[[]byte, []byte], ctrl byte, transform elnom.Parser[[]byte, []byte]) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		var out []byte
		cur := in
		for len(cur) > 0 {
			if cur[0] == ctrl {
				v, rest, err := transform(cur[1:])
				if err != nil {
					if elnom.IsRecoverable(err) {
						return nil, in, elnom.NewError(elnom.KindEscaped, in)
					}
					return nil, in, err
				}
				out = append(out, v...)
				cur = rest
				continue
			}
			v, rest, err := normal(cur)
			if err != nil {
				if !elnom.IsRecoverable(err) {
					return nil, in, err
				}
				break
			}
			if len(rest) == len(cur) {
				break
			}
			out = append(out, v...)
			cur = rest
		}
		if len(cur) == len(in) {
			return failEmptyEscape(normal, in)
		}
		return out, cur, nil
	}
}

func failEmptyEscape[N any](normal elnom.Parser[[]byte, N], in []byte) ([]byte, []byte, error) {
	_, _, err := normal(in)
	if err != nil {
		return nil, in, err
	}
	return nil, in, elnom.NewError(elnom.KindEscaped, in)
}
