package elnom

// Pair applies first then second, threading the buffer left to right, and
// returns both results. The first failure short-circuits and is returned
// verbatim.
func Pair[I Input, A, B any](first Parser[I, A], second Parser[I, B]) Parser[I, PairOf[A, B]] {
	return func(in I) (PairOf[A, B], I, error) {
		a, rest, err := first(in)
		if err != nil {
			return PairOf[A, B]{}, in, err
		}
		b, rest, err := second(rest)
		if err != nil {
			return PairOf[A, B]{}, in, err
		}
		return PairOf[A, B]{A: a, B: b}, rest, nil
	}
}

// Preceded runs prefix then p, returning only p's result.
func Preceded[I Input, P, O any](prefix Parser[I, P], p Parser[I, O]) Parser[I, O] {
	return func(in I) (O, I, error) {
		var zero O
		_, rest, err := prefix(in)
		if err != nil {
			return zero, in, err
		}
		v, rest, err := p(rest)
		if err != nil {
			return zero, in, err
		}
		return v, rest, nil
	}
}

// Terminated runs p then suffix, returning only p's result.
func Terminated[I Input, O, S any](p Parser[I, O], suffix Parser[I, S]) Parser[I, O] {
	return func(in I) (O, I, error) {
		var zero O
		v, rest, err := p(in)
		if err != nil {
			return zero, in, err
		}
		_, rest, err = suffix(rest)
		if err != nil {
			return zero, in, err
		}
		return v, rest, nil
	}
}

// Delimited runs open, p and end in order, returning only p's result.
func Delimited[I Input, L, O, R any](open Parser[I, L], p Parser[I, O], end Parser[I, R]) Parser[I, O] {
	return func(in I) (O, I, error) {
		var zero O
		_, rest, err := open(in)
		if err != nil {
			return zero, in, err
		}
		v, rest, err := p(rest)
		if err != nil {
			return zero, in, err
		}
		_, rest, err = end(rest)
		if err != nil {
			return zero, in, err
		}
		return v, rest, nil
	}
}

// SeparatedPair runs first, a separator whose result is discarded, then
// second, and returns the two outer results.
func SeparatedPair[I Input, A, S, B any](first Parser[I, A], sep Parser[I, S], second Parser[I, B]) Parser[I, PairOf[A, B]] {
	return func(in I) (PairOf[A, B], I, error) {
		a, rest, err := first(in)
		if err != nil {
			return PairOf[A, B]{}, in, err
		}
		_, rest, err = sep(rest)
		if err != nil {
			return PairOf[A, B]{}, in, err
		}
		b, rest, err := second(rest)
		if err != nil {
			return PairOf[A, B]{}, in, err
		}
		return PairOf[A, B]{A: a, B: b}, rest, nil
	}
}

// Sequence applies each parser in call order and collects every result.
// The parsers share one output type; heterogeneous sequences are built by
// nesting Pair instead.
func Sequence[I Input, O any](ps ...Parser[I, O]) Parser[I, []O] {
	return func(in I) ([]O, I, error) {
		out := make([]O, 0, len(ps))
		cur := in
		for _, p := range ps {
			v, rest, err := p(cur)
			if err != nil {
				return nil, in, err
			}
			out = append(out, v)
			cur = rest
		}
		return out, cur, nil
	}
}
