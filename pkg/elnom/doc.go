// Package elnom provides the combinator layer of a parser-combinator
// toolkit: small parsers are composed into larger ones by plain function
// application, with no scheduler, callback registry, or shared state.
//
// # Overview
//
// A parser is a function from an input buffer to a value, the unconsumed
// suffix of that buffer, and an error:
//
//	type Parser[I Input, O any] func(in I) (O, I, error)
//
// Buffers are either string (text mode, measured in runes) or []byte
// (binary mode, measured in bytes). This package contains everything that
// is mode-agnostic: sequencing, branching, repetition and the meta
// combinators. The primitive recognizers that actually inspect buffer
// contents live in the two mode packages:
//
//   - [github.com/mogest/elnom/pkg/text] for string input
//   - [github.com/mogest/elnom/pkg/bin] for []byte input
//
// A parser tree uses exactly one mode package; offsets are not
// interchangeable between modes.
//
// # Quick Start
//
// Build parsers bottom-up and apply the result directly:
//
//	digits := text.Digit1()
//	csv := elnom.SeparatedList1(text.Char(','), digits)
//
//	fields, rest, err := csv("3,14,159 tail")
//	// fields = ["3" "14" "159"], rest = " tail", err = nil
//
// # Failure Model
//
// A non-nil error is one of three things:
//
//   - a recoverable *[Error]: the ordinary "this expectation was not met"
//     signal. Alt moves on to its next alternative, Opt substitutes nil,
//     repetition combinators stop collecting.
//   - a fatal *[Error]: produced only by [Cut]. Every combinator stops
//     backtracking and returns it unchanged.
//   - an *[Incomplete]: the buffer ended before a length-prefixed slice
//     could be filled ([LengthData] is the only producer). Treated like a
//     fatal error by the control flow, except where [Complete] or
//     [LengthValue] convert it back into a recoverable failure.
//
// Failing parsers never consume: on error the returned suffix is the
// original input. The error itself carries the exact unconsumed buffer at
// the point of failure together with a [Kind] naming the parser that
// failed, so diagnostics need no separate position tracking.
//
// # Concurrency
//
// A constructed parser closes over immutable configuration only (literals,
// bounds, sub-parsers). Invoking it allocates nothing shared, so the same
// parser value is safe to call from any number of goroutines.
//
// # Tracing
//
// [Trace] wraps any parser with slog debug output for watching a grammar
// walk its input; it changes no semantics and is meant to be left out of
// production parser trees.
package elnom
