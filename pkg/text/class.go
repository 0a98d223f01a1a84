package text

import "github.com/mogest/elnom/pkg/elnom"

// Character classes follow the ASCII definitions of the nom tradition:
// alpha is [A-Za-z] regardless of Unicode letter categories. The
// predicates are exported so callers can hand them to TakeWhile and
// friends directly.

// IsAlpha reports whether r is an ASCII letter.
func IsAlpha(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }

// IsDigit reports whether r is an ASCII decimal digit.
func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsHexDigit reports whether r is an ASCII hexadecimal digit.
func IsHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// IsOctDigit reports whether r is an ASCII octal digit.
func IsOctDigit(r rune) bool { return r >= '0' && r <= '7' }

// IsAlphanumeric reports whether r is an ASCII letter or digit.
func IsAlphanumeric(r rune) bool { return IsAlpha(r) || IsDigit(r) }

// IsSpace reports whether r is a space or tab.
func IsSpace(r rune) bool { return r == ' ' || r == '\t' }

// IsMultispace reports whether r is a space, tab, carriage return or
// newline.
func IsMultispace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }

// Alpha0 consumes zero or more ASCII letters.
func Alpha0() elnom.Parser[string, string] { return class0(IsAlpha) }

// Alpha1 consumes one or more ASCII letters.
func Alpha1() elnom.Parser[string, string] { return class1(elnom.KindAlpha, IsAlpha) }

// Digit0 consumes zero or more ASCII digits.
func Digit0() elnom.Parser[string, string] { return class0(IsDigit) }

// Digit1 consumes one or more ASCII digits.
func Digit1() elnom.Parser[string, string] { return class1(elnom.KindDigit, IsDigit) }

// HexDigit0 consumes zero or more hex digits.
func HexDigit0() elnom.Parser[string, string] { return class0(IsHexDigit) }

// HexDigit1 consumes one or more hex digits.
func HexDigit1() elnom.Parser[string, string] { return class1(elnom.KindHexDigit, IsHexDigit) }

// OctDigit0 consumes zero or more octal digits.
func OctDigit0() elnom.Parser[string, string] { return class0(IsOctDigit) }

// OctDigit1 consumes one or more octal digits.
func OctDigit1() elnom.Parser[string, string] { return class1(elnom.KindOctDigit, IsOctDigit) }

// Alphanumeric0 consumes zero or more ASCII letters and digits.
func Alphanumeric0() elnom.Parser[string, string] { return class0(IsAlphanumeric) }

// Alphanumeric1 consumes one or more ASCII letters and digits.
func Alphanumeric1() elnom.Parser[string, string] {
	return class1(elnom.KindAlphanumeric, IsAlphanumeric)
}

// Space0 consumes zero or more spaces and tabs.
func Space0() elnom.Parser[string, string] { return class0(IsSpace) }

// Space1 consumes one or more spaces and tabs.
func Space1() elnom.Parser[string, string] { return class1(elnom.KindSpace, IsSpace) }

// Multispace0 consumes zero or more spaces, tabs, carriage returns and
// newlines.
func Multispace0() elnom.Parser[string, string] { return class0(IsMultispace) }

// Multispace1 consumes one or more spaces, tabs, carriage returns and
// newlines.
func Multispace1() elnom.Parser[string, string] { return class1(elnom.KindMultispace, IsMultispace) }

func class0(pred func(rune) bool) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		end := spanWhile(in, pred)
		return in[:end], in[end:], nil
	}
}

func class1(kind elnom.Kind, pred func(rune) bool) elnom.Parser[string, string] {
	return func(in string) (string, string, error) {
		end := spanWhile(in, pred)
		if end == 0 {
			return "", in, elnom.NewError(kind, in)
		}
		return in[:end], in[end:], nil
	}
}
