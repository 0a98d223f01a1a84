package elnom

// Input is the set of buffer types parsers operate on. A buffer is never
// mutated; every successful match returns a suffix of it. string buffers
// are measured in runes, []byte buffers in bytes.
//
// The constraint members are exact (no ~) so that generic code can recover
// the concrete representation of a buffer when it needs to count units.
type Input interface {
	string | []byte
}

// Parser consumes a prefix of in and returns the parsed value together
// with the unconsumed suffix. A nil error means the parser matched.
//
// On failure the returned suffix is the original in, untouched: failing
// parsers never consume. The error is a recoverable or fatal *Error, or an
// *Incomplete; see the package documentation for how combinators react to
// each.
type Parser[I Input, O any] func(in I) (O, I, error)

// PairOf is the ordered result of two sub-parses.
type PairOf[A, B any] struct {
	A A
	B B
}

// Integer is the set of count types accepted by the length-prefixed
// combinators LengthCount, LengthData and LengthValue.
type Integer interface {
	int | int8 | int16 | int32 | int64 | uint | uint8 | uint16 | uint32 | uint64
}
