package elnom

import "unicode/utf8"

// unitCount returns the length of in measured in units: runes for strings,
// bytes for byte slices.
func unitCount[I Input](in I) int {
	switch v := any(in).(type) {
	case string:
		return utf8.RuneCountInString(v)
	case []byte:
		return len(v)
	}
	return 0
}

// splitUnits splits off the first n units of in. When the buffer is too
// short it reports ok=false along with the number of units present.
func splitUnits[I Input](in I, n int) (chunk, rest I, have int, ok bool) {
	if n <= 0 {
		return in[:0], in, 0, true
	}
	switch v := any(in).(type) {
	case string:
		off := 0
		for count := 0; count < n; count++ {
			if off >= len(v) {
				return in[:0], in, count, false
			}
			_, size := utf8.DecodeRuneInString(v[off:])
			off += size
		}
		return in[:off], in[off:], n, true
	case []byte:
		if len(v) < n {
			return in[:0], in, len(v), false
		}
		return in[:n], in[n:], n, true
	}
	return in[:0], in, 0, false
}
