package text

import (
	"errors"
	"math/big"
	"strconv"

	"github.com/mogest/elnom/pkg/elnom"
)

// Integer consumes a maximal run of ASCII digits and returns its value as
// an arbitrary-precision integer. No sign, no radix prefixes.
func Integer() elnom.Parser[string, *big.Int] {
	return func(in string) (*big.Int, string, error) {
		end := spanWhile(in, IsDigit)
		if end == 0 {
			return nil, in, elnom.NewError(elnom.KindDigit, in)
		}
		z, ok := new(big.Int).SetString(in[:end], 10)
		if !ok {
			return nil, in, elnom.NewError(elnom.KindDigit, in)
		}
		return z, in[end:], nil
	}
}

// Float consumes the longest prefix forming a decimal floating point
// literal (optional sign, digits with optional fraction, optional
// exponent) and returns its value. Word forms like inf and NaN are not
// recognized. A dangling exponent marker is left unconsumed: "1.2e" parses
// as 1.2 with "e" remaining. Values beyond the float64 range saturate to
// infinity.
func Float() elnom.Parser[string, float64] {
	return func(in string) (float64, string, error) {
		end := floatPrefixLen(in)
		if end == 0 {
			return 0, in, elnom.NewError(elnom.KindFloat, in)
		}
		f, err := strconv.ParseFloat(in[:end], 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, in, elnom.NewError(elnom.KindFloat, in)
		}
		return f, in[end:], nil
	}
}

// floatPrefixLen scans the longest valid float literal prefix and returns
// its byte length, 0 when none. Accepts "1", "1.", ".5", "1.2e-3"; a sign
// or exponent marker without digits after it is excluded from the prefix.
func floatPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intDigits := digitSpan(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fd := digitSpan(s[i+1:])
		if intDigits > 0 || fd > 0 {
			i += 1 + fd
			fracDigits = fd
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if ed := digitSpan(s[j:]); ed > 0 {
			i = j + ed
		}
	}
	return i
}

func digitSpan(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

// HexU32 consumes between one and eight ASCII hex digits, leaving any
// further hex digits unconsumed, and returns the value as a uint32.
func HexU32() elnom.Parser[string, uint32] {
	return func(in string) (uint32, string, error) {
		end := 0
		for end < len(in) && end < 8 && IsHexDigit(rune(in[end])) {
			end++
		}
		if end == 0 {
			return 0, in, elnom.NewError(elnom.KindHexDigit, in)
		}
		v, err := strconv.ParseUint(in[:end], 16, 32)
		if err != nil {
			return 0, in, elnom.NewError(elnom.KindHexDigit, in)
		}
		return uint32(v), in[end:], nil
	}
}
