package elnom

// Map transforms a successful parse value with a pure function.
func Map[I Input, O, R any](p Parser[I, O], f func(O) R) Parser[I, R] {
	return func(in I) (R, I, error) {
		v, rest, err := p(in)
		if err != nil {
			var zero R
			return zero, in, err
		}
		return f(v), rest, nil
	}
}

// MapRes transforms a successful parse value with a function that can
// itself fail. A non-nil error from f becomes Recoverable(map_res) at the
// position where p started; the closed error model carries no cause, so
// callers needing the underlying error should wrap the whole parse at
// their boundary instead.
func MapRes[I Input, O, R any](p Parser[I, O], f func(O) (R, error)) Parser[I, R] {
	return func(in I) (R, I, error) {
		var zero R
		v, rest, err := p(in)
		if err != nil {
			return zero, in, err
		}
		r, ferr := f(v)
		if ferr != nil {
			return zero, in, NewError(KindMapRes, in)
		}
		return r, rest, nil
	}
}

// FlatMap feeds p's value to f and runs the parser f builds against the
// remaining buffer.
func FlatMap[I Input, O, R any](p Parser[I, O], f func(O) Parser[I, R]) Parser[I, R] {
	return func(in I) (R, I, error) {
		var zero R
		v, rest, err := p(in)
		if err != nil {
			return zero, in, err
		}
		r, rest, err := f(v)(rest)
		if err != nil {
			return zero, in, err
		}
		return r, rest, nil
	}
}

// Opt turns a recoverable failure into a successful nil without consuming
// anything. Fatal and incomplete failures still propagate.
func Opt[I Input, O any](p Parser[I, O]) Parser[I, *O] {
	return func(in I) (*O, I, error) {
		v, rest, err := p(in)
		if err == nil {
			return &v, rest, nil
		}
		if IsRecoverable(err) {
			return nil, in, nil
		}
		return nil, in, err
	}
}

// Cut commits to the current branch: a recoverable failure from p is
// promoted to fatal, preserving kind and position, so enclosing Alt,
// Opt and repetition combinators stop backtracking. Fatal and incomplete
// failures pass through untouched.
func Cut[I Input, O any](p Parser[I, O]) Parser[I, O] {
	return func(in I) (O, I, error) {
		v, rest, err := p(in)
		if err == nil {
			return v, rest, nil
		}
		var zero O
		if e, ok := err.(*Error[I]); ok && !e.Fatal {
			return zero, in, &Error[I]{Kind: e.Kind, Input: e.Input, Fatal: true}
		}
		return zero, in, err
	}
}

// Peek runs p as lookahead: on success the original buffer is restored so
// nothing is consumed. Failures propagate unchanged.
func Peek[I Input, O any](p Parser[I, O]) Parser[I, O] {
	return func(in I) (O, I, error) {
		v, _, err := p(in)
		if err != nil {
			var zero O
			return zero, in, err
		}
		return v, in, nil
	}
}

// Not succeeds, consuming nothing, exactly when p fails recoverably. A
// match by p becomes Recoverable(not); fatal and incomplete failures
// propagate.
func Not[I Input, O any](p Parser[I, O]) Parser[I, struct{}] {
	return func(in I) (struct{}, I, error) {
		_, _, err := p(in)
		if err == nil {
			return struct{}{}, in, NewError(KindNot, in)
		}
		if IsRecoverable(err) {
			return struct{}{}, in, nil
		}
		return struct{}{}, in, err
	}
}

// Verify succeeds when p succeeds and pred holds for its value; a false
// predicate fails with Recoverable(verify) at the pre-match position.
func Verify[I Input, O any](p Parser[I, O], pred func(O) bool) Parser[I, O] {
	return func(in I) (O, I, error) {
		v, rest, err := p(in)
		if err != nil {
			var zero O
			return zero, in, err
		}
		if !pred(v) {
			var zero O
			return zero, in, NewError(KindVerify, in)
		}
		return v, rest, nil
	}
}

// Recognize discards p's value and returns the exact slice it consumed,
// computed from the length difference between input and remainder.
func Recognize[I Input, O any](p Parser[I, O]) Parser[I, I] {
	return func(in I) (I, I, error) {
		var zero I
		_, rest, err := p(in)
		if err != nil {
			return zero, in, err
		}
		return in[:len(in)-len(rest)], rest, nil
	}
}

// Consumed returns both the consumed slice and p's value.
func Consumed[I Input, O any](p Parser[I, O]) Parser[I, PairOf[I, O]] {
	return func(in I) (PairOf[I, O], I, error) {
		v, rest, err := p(in)
		if err != nil {
			return PairOf[I, O]{}, in, err
		}
		return PairOf[I, O]{A: in[:len(in)-len(rest)], B: v}, rest, nil
	}
}

// AllConsuming succeeds only when p consumes the entire buffer; trailing
// input fails with Recoverable(all_consuming) at the leftover suffix.
func AllConsuming[I Input, O any](p Parser[I, O]) Parser[I, O] {
	return func(in I) (O, I, error) {
		v, rest, err := p(in)
		if err != nil {
			var zero O
			return zero, in, err
		}
		if len(rest) != 0 {
			var zero O
			return zero, in, NewError(KindAllConsuming, rest)
		}
		return v, rest, nil
	}
}

// Complete demotes an incomplete signal from p to Recoverable(complete),
// for callers whose input is known to be final. Other outcomes pass
// through unchanged.
func Complete[I Input, O any](p Parser[I, O]) Parser[I, O] {
	return func(in I) (O, I, error) {
		v, rest, err := p(in)
		if err != nil {
			if _, ok := NeededSize(err); ok {
				var zero O
				return zero, in, NewError(KindComplete, in)
			}
			var zero O
			return zero, in, err
		}
		return v, rest, nil
	}
}

// Eof matches only at the end of input, yielding the empty buffer.
func Eof[I Input]() Parser[I, I] {
	return func(in I) (I, I, error) {
		if len(in) != 0 {
			var zero I
			return zero, in, NewError(KindEOF, in)
		}
		return in, in, nil
	}
}

// Rest consumes and returns everything left in the buffer; it matches the
// empty buffer too.
func Rest[I Input]() Parser[I, I] {
	return func(in I) (I, I, error) {
		return in, in[len(in):], nil
	}
}

// RestLen reports the remaining length in units (runes for string input,
// bytes for []byte) without consuming anything.
func RestLen[I Input]() Parser[I, int] {
	return func(in I) (int, I, error) {
		return unitCount(in), in, nil
	}
}

// Success always matches without consuming, producing v.
func Success[I Input, O any](v O) Parser[I, O] {
	return func(in I) (O, I, error) {
		return v, in, nil
	}
}

// Value replaces p's result with the fixed constant v.
func Value[I Input, O, V any](v V, p Parser[I, O]) Parser[I, V] {
	return func(in I) (V, I, error) {
		_, rest, err := p(in)
		if err != nil {
			var zero V
			return zero, in, err
		}
		return v, rest, nil
	}
}

// Fail always fails with Recoverable(fail).
func Fail[I Input, O any]() Parser[I, O] {
	return func(in I) (O, I, error) {
		var zero O
		return zero, in, NewError(KindFail, in)
	}
}
