package bin

import "github.com/mogest/elnom/pkg/elnom"

// Byte-class predicates use the ASCII definitions; they are exported for
// use with TakeWhile and friends.

// IsAlpha reports whether b is an ASCII letter.
func IsAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

// IsDigit reports whether b is an ASCII decimal digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsHexDigit reports whether b is an ASCII hexadecimal digit.
func IsHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// IsOctDigit reports whether b is an ASCII octal digit.
func IsOctDigit(b byte) bool { return b >= '0' && b <= '7' }

// IsAlphanumeric reports whether b is an ASCII letter or digit.
func IsAlphanumeric(b byte) bool { return IsAlpha(b) || IsDigit(b) }

// IsSpace reports whether b is a space or tab.
func IsSpace(b byte) bool { return b == ' ' || b == '\t' }

// IsMultispace reports whether b is a space, tab, carriage return or
// newline.
func IsMultispace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }

// Alpha0 consumes zero or more ASCII letters.
func Alpha0() elnom.Parser[[]byte, []byte] { return class0(IsAlpha) }

// Alpha1 consumes one or more ASCII letters.
func Alpha1() elnom.Parser[[]byte, []byte] { return class1(elnom.KindAlpha, IsAlpha) }

// Digit0 consumes zero or more ASCII digits.
func Digit0() elnom.Parser[[]byte, []byte] { return class0(IsDigit) }

// Digit1 consumes one or more ASCII digits.
func Digit1() elnom.Parser[[]byte, []byte] { return class1(elnom.KindDigit, IsDigit) }

// HexDigit0 consumes zero or more hex digits.
func HexDigit0() elnom.Parser[[]byte, []byte] { return class0(IsHexDigit) }

// HexDigit1 consumes one or more hex digits.
func HexDigit1() elnom.Parser[[]byte, []byte] { return class1(elnom.KindHexDigit, IsHexDigit) }

// OctDigit0 consumes zero or more octal digits.
func OctDigit0() elnom.Parser[[]byte, []byte] { return class0(IsOctDigit) }

// OctDigit1 consumes one or more octal digits.
func OctDigit1() elnom.Parser[[]byte, []byte] { return class1(elnom.KindOctDigit, IsOctDigit) }

// Alphanumeric0 consumes zero or more ASCII letters and digits.
func Alphanumeric0() elnom.Parser[[]byte, []byte] { return class0(IsAlphanumeric) }

// Alphanumeric1 consumes one or more ASCII letters and digits.
func Alphanumeric1() elnom.Parser[[]byte, []byte] {
	return class1(elnom.KindAlphanumeric, IsAlphanumeric)
}

// Space0 consumes zero or more spaces and tabs.
func Space0() elnom.Parser[[]byte, []byte] { return class0(IsSpace) }

// Space1 consumes one or more spaces and tabs.
func Space1() elnom.Parser[[]byte, []byte] { return class1(elnom.KindSpace, IsSpace) }

// Multispace0 consumes zero or more spaces, tabs, carriage returns and
// newlines.
func Multispace0() elnom.Parser[[]byte, []byte] { return class0(IsMultispace) }

// Multispace1 consumes one or more spaces, tabs, carriage returns and
// newlines.
func Multispace1() elnom.Parser[[]byte, []byte] { return class1(elnom.KindMultispace, IsMultispace) }

func class0(pred func(byte) bool) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		end := spanWhile(in, pred)
		return in[:end], in[end:], nil
	}
}

func class1(kind elnom.Kind, pred func(byte) bool) elnom.Parser[[]byte, []byte] {
	return func(in []byte) ([]byte, []byte, error) {
		end := spanWhile(in, pred)
		if end == 0 {
			return nil, in, elnom.NewError(kind, in)
		}
		return in[:end], in[end:], nil
	}
}
