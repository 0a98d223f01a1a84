package text

import (
	"strings"
	"unicode/utf8"

	"github.com/mogest/elnom/pkg/elnom"
)

// Take consumes exactly n runes, failing with eof on shorter input.
func Take(n uint) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		off := 0
		for count := uint(0); count < n; count++ {
			if off >= len(in) {
				return "", in, elnom.NewError(elnom.KindEOF, in)
			}
			_, size := utf8.DecodeRuneInString(in[off:])
			off += size
		}
		return in[:off], in[off:], nil
	}
}

// TakeWhile consumes the maximal prefix of runes satisfying pred. It
// always succeeds, possibly with an empty match.
func TakeWhile(pred func(rune) bool) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		end := spanWhile(in, pred)
		return in[:end], in[end:], nil
	}
}

// TakeWhile1 is TakeWhile requiring a non-empty match.
func TakeWhile1(pred func(rune) bool) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		end := spanWhile(in, pred)
		if end == 0 {
			return "", in, elnom.NewError(elnom.KindTakeWhile1, in)
		}
		return in[:end], in[end:], nil
	}
}

// TakeWhileMN consumes between m and n runes satisfying pred, stopping at
// n even when more would match. Fewer than m matching runes is a failure,
// as is m > n.
func TakeWhileMN(m, n int, pred func(rune) bool) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		if m > n {
			return "", in, elnom.NewError(elnom.KindTakeWhileMN, in)
		}
		off, count := 0, 0
		for count < n {
			r, size := utf8.DecodeRuneInString(in[off:])
			if size == 0 || !pred(r) {
				break
			}
			off += size
			count++
		}
		if count < m {
			return "", in, elnom.NewError(elnom.KindTakeWhileMN, in)
		}
		return in[:off], in[off:], nil
	}
}

// TakeTill consumes the maximal prefix of runes NOT satisfying pred,
// stopping before the first rune that does. It always succeeds.
func TakeTill(pred func(rune) bool) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		end := spanTill(in, pred)
		return in[:end], in[end:], nil
	}
}

// TakeTill1 is TakeTill requiring a non-empty match.
func TakeTill1(pred func(rune) bool) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		end := spanTill(in, pred)
		if end == 0 {
			return "", in, elnom.NewError(elnom.KindTakeTill1, in)
		}
		return in[:end], in[end:], nil
	}
}

// TakeUntil consumes everything before the first occurrence of sub,
// leaving sub itself unconsumed. A missing pattern is a failure.
func TakeUntil(sub string) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		idx := strings.Index(in, sub)
		if idx < 0 {
			return "", in, elnom.NewError(elnom.KindTakeUntil, in)
		}
		return in[:idx], in[idx:], nil
	}
}

// TakeUntil1 is TakeUntil additionally requiring a non-empty prefix
// before the pattern.
func TakeUntil1(sub string) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		idx := strings.Index(in, sub)
		if idx <= 0 {
			return "", in, elnom.NewError(elnom.KindTakeUntil, in)
		}
		return in[:idx], in[idx:], nil
	}
}

// spanWhile returns the byte offset ending the maximal prefix of runes
// satisfying pred.
func spanWhile(s string, pred func(rune) bool) int {
	for i, r := range s {
		if !pred(r) {
			return i
		}
	}
	return len(s)
}

// spanTill is spanWhile with the predicate inverted.
func spanTill(s string, pred func(rune) bool) int {
	for i, r := range s {
		if pred(r) {
			return i
		}
	}
	return len(s)
}
