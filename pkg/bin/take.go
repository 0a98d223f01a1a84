package bin

import (
	"bytes"

	"github.com/mogest/elnom/pkg/elnom"
)

// Take consumes exactly n bytes, failing with eof on shorter input.
func Take(n uint) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		if uint(len(in)) < n {
			return nil, in, elnom.NewError(elnom.KindEOF, in)
		}
		return in[:n], in[n:], nil
	}
}

// TakeWhile consumes the maximal prefix of bytes satisfying pred. It
// always succeeds, possibly with an empty match.
func TakeWhile(pred func(byte) bool) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		end := spanWhile(in, pred)
		return in[:end], in[end:], nil
	}
}

// TakeWhile1 is TakeWhile requiring a non-empty match.
func TakeWhile1(pred func(byte) bool) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		end := spanWhile(in, pred)
		if end == 0 {
			return nil, in, elnom.NewError(elnom.KindTakeWhile1, in)
		}
		return in[:end], in[end:], nil
	}
}

// TakeWhileMN consumes between m and n bytes satisfying pred, stopping at
// n even when more would match. Fewer than m matching bytes is a failure,
// as is m > n.
func TakeWhileMN(m, n int, pred func(byte) bool) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		if m > n {
			return nil, in, elnom.NewError(elnom.KindTakeWhileMN, in)
		}
		end := 0
		for end < len(in) && end < n && pred(in[end]) {
			end++
		}
		if end < m {
			return nil, in, elnom.NewError(elnom.KindTakeWhileMN, in)
		}
		return in[:end], in[end:], nil
	}
}

// TakeTill consumes the maximal prefix of bytes NOT satisfying pred,
// stopping before the first byte that does. It always succeeds.
func TakeTill(pred func(byte) bool) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		end := spanTill(in, pred)
		return in[:end], in[end:], nil
	}
}

// TakeTill1 is TakeTill requiring a non-empty match.
func TakeTill1(pred func(byte) bool) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		end := spanTill(in, pred)
		if end == 0 {
			return nil, in, elnom.NewError(elnom.KindTakeTill1, in)
		}
		return in[:end], in[end:], nil
	}
}

// TakeUntil consumes everything before the first occurrence of sub,
// leaving sub itself unconsumed. A missing pattern is a failure.
func TakeUntil(sub []byte) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		idx := bytes.Index(in, sub)
		if idx < 0 {
			return nil, in, elnom.NewError(elnom.KindTakeUntil, in)
		}
		return in[:idx], in[idx:], nil
	}
}

// TakeUntil1 is TakeUntil additionally requiring a non-empty prefix
// before the pattern.
func TakeUntil1(sub []byte) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		idx := bytes.Index(in, sub)
		if idx <= 0 {
			return nil, in, elnom.NewError(elnom.KindTakeUntil, in)
		}
		return in[:idx], in[idx:], nil
	}
}

func spanWhile(b []byte, pred func(byte) bool) int {
	for i, c := range b {
		if !pred(c) {
			return i
		}
	}
	return len(b)
}

func spanTill(b []byte, pred func(byte) bool) int {
	for i, c := range b {
		if pred(c) {
			return i
		}
	}
	return len(b)
}
