package elnom

// Repetition combinators share one loop discipline: invoke the sub-parser
// on the advancing buffer, stop collecting on the first recoverable
// failure, propagate fatal and incomplete failures immediately. A
// successful sub-match that consumes zero units is a hard error for the
// whole repetition, discarding prior iterations; this guards every loop
// against zero-width sub-parsers.

// Many0 applies p zero or more times and collects the results.
func Many0[I Input, O any](p Parser[I, O]) Parser[I, []O] {
	return func(in I) ([]O, I, error) {
		var out []O
		cur := in
		for {
			v, rest, err := p(cur)
			if err != nil {
				if IsRecoverable(err) {
					return out, cur, nil
				}
				return nil, in, err
			}
			if len(rest) == len(cur) {
				return nil, in, NewError(KindMany, cur)
			}
			out = append(out, v)
			cur = rest
		}
	}
}

// Many1 applies p one or more times. A failure on the first iteration is
// returned as-is, so the error names the sub-parser rather than the loop.
func Many1[I Input, O any](p Parser[I, O]) Parser[I, []O] {
	return func(in I) ([]O, I, error) {
		v, rest, err := p(in)
		if err != nil {
			return nil, in, err
		}
		if len(rest) == len(in) {
			return nil, in, NewError(KindMany, in)
		}
		out := []O{v}
		cur := rest
		for {
			v, rest, err := p(cur)
			if err != nil {
				if IsRecoverable(err) {
					return out, cur, nil
				}
				return nil, in, err
			}
			if len(rest) == len(cur) {
				return nil, in, NewError(KindMany, cur)
			}
			out = append(out, v)
			cur = rest
		}
	}
}

// ManyMN applies p between min and max times inclusive. Collection stops
// at max or on the first recoverable failure; if fewer than min results
// were collected by then, the parse fails (with the sub-parser's error
// when one stopped the loop, Recoverable(many_m_n) otherwise).
func ManyMN[I Input, O any](min, max int, p Parser[I, O]) Parser[I, []O] {
	return func(in I) ([]O, I, error) {
		var out []O
		cur := in
		for len(out) < max {
			v, rest, err := p(cur)
			if err != nil {
				if !IsRecoverable(err) {
					return nil, in, err
				}
				if len(out) < min {
					return nil, in, err
				}
				return out, cur, nil
			}
			if len(rest) == len(cur) {
				return nil, in, NewError(KindManyMN, cur)
			}
			out = append(out, v)
			cur = rest
		}
		if len(out) < min {
			return nil, in, NewError(KindManyMN, cur)
		}
		return out, cur, nil
	}
}

// Many0Count counts how many times p matches without keeping the values.
func Many0Count[I Input, O any](p Parser[I, O]) Parser[I, int] {
	return func(in I) (int, I, error) {
		n := 0
		cur := in
		for {
			_, rest, err := p(cur)
			if err != nil {
				if IsRecoverable(err) {
					return n, cur, nil
				}
				return 0, in, err
			}
			if len(rest) == len(cur) {
				return 0, in, NewError(KindMany, cur)
			}
			n++
			cur = rest
		}
	}
}

// Many1Count is Many0Count requiring at least one match; the first
// iteration's failure is returned as-is.
func Many1Count[I Input, O any](p Parser[I, O]) Parser[I, int] {
	return func(in I) (int, I, error) {
		_, rest, err := p(in)
		if err != nil {
			return 0, in, err
		}
		if len(rest) == len(in) {
			return 0, in, NewError(KindMany, in)
		}
		n := 1
		cur := rest
		for {
			_, rest, err := p(cur)
			if err != nil {
				if IsRecoverable(err) {
					return n, cur, nil
				}
				return 0, in, err
			}
			if len(rest) == len(cur) {
				return 0, in, NewError(KindMany, cur)
			}
			n++
			cur = rest
		}
	}
}

// FoldMany0 applies p zero or more times, folding each value into an
// accumulator. init builds a fresh accumulator per invocation so the
// returned parser stays reusable.
func FoldMany0[I Input, O, R any](p Parser[I, O], init func() R, fold func(R, O) R) Parser[I, R] {
	return func(in I) (R, I, error) {
		acc := init()
		cur := in
		for {
			v, rest, err := p(cur)
			if err != nil {
				if IsRecoverable(err) {
					return acc, cur, nil
				}
				var zero R
				return zero, in, err
			}
			if len(rest) == len(cur) {
				var zero R
				return zero, in, NewError(KindFoldMany, cur)
			}
			acc = fold(acc, v)
			cur = rest
		}
	}
}

// FoldMany1 is FoldMany0 requiring at least one match; the first
// iteration's failure is returned as-is.
func FoldMany1[I Input, O, R any](p Parser[I, O], init func() R, fold func(R, O) R) Parser[I, R] {
	return func(in I) (R, I, error) {
		var zero R
		v, rest, err := p(in)
		if err != nil {
			return zero, in, err
		}
		if len(rest) == len(in) {
			return zero, in, NewError(KindFoldMany, in)
		}
		acc := fold(init(), v)
		cur := rest
		for {
			v, rest, err := p(cur)
			if err != nil {
				if IsRecoverable(err) {
					return acc, cur, nil
				}
				return zero, in, err
			}
			if len(rest) == len(cur) {
				return zero, in, NewError(KindFoldMany, cur)
			}
			acc = fold(acc, v)
			cur = rest
		}
	}
}

// FoldManyMN folds between min and max matches of p, with the same bound
// handling as ManyMN.
func FoldManyMN[I Input, O, R any](min, max int, p Parser[I, O], init func() R, fold func(R, O) R) Parser[I, R] {
	return func(in I) (R, I, error) {
		var zero R
		acc := init()
		cur := in
		for n := 0; ; n++ {
			if n >= max {
				if n < min {
					return zero, in, NewError(KindFoldMany, cur)
				}
				return acc, cur, nil
			}
			v, rest, err := p(cur)
			if err != nil {
				if !IsRecoverable(err) {
					return zero, in, err
				}
				if n < min {
					return zero, in, err
				}
				return acc, cur, nil
			}
			if len(rest) == len(cur) {
				return zero, in, NewError(KindFoldMany, cur)
			}
			acc = fold(acc, v)
			cur = rest
		}
	}
}

// Count applies p exactly n times. Any failure is the sub-parser's own,
// raised wherever the loop had advanced to; there is no partial result. A
// non-positive n matches trivially.
func Count[I Input, O any](p Parser[I, O], n int) Parser[I, []O] {
	return func(in I) ([]O, I, error) {
		out := make([]O, 0, max(n, 0))
		cur := in
		for i := 0; i < n; i++ {
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

// LengthCount runs lenp to obtain an element count, then applies p exactly
// that many times. An incomplete or negative count from the prefix becomes
// Recoverable(length_count); other prefix failures propagate verbatim.
func LengthCount[I Input, L Integer, O any](lenp Parser[I, L], p Parser[I, O]) Parser[I, []O] {
	return func(in I) ([]O, I, error) {
		n, rest, err := lenp(in)
		if err != nil {
			if _, ok := NeededSize(err); ok {
				return nil, in, NewError(KindLengthCount, in)
			}
			return nil, in, err
		}
		count := int(n)
		if count < 0 {
			return nil, in, NewError(KindLengthCount, in)
		}
		out := make([]O, 0, count)
		cur := rest
		for i := 0; i < count; i++ {
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

// LengthData runs lenp to obtain a unit count and slices exactly that many
// units from the remainder (runes in text mode, bytes in binary mode).
//
// This is the one parser that produces Incomplete: when the remainder is
// shorter than the declared length the result reports how many units are
// missing. An incomplete or negative length from the prefix itself is
// demoted to Recoverable(length_data).
func LengthData[I Input, L Integer](lenp Parser[I, L]) Parser[I, I] {
	return func(in I) (I, I, error) {
		var zero I
		n, rest, err := lenp(in)
		if err != nil {
			if _, ok := NeededSize(err); ok {
				return zero, in, NewError(KindLengthData, in)
			}
			return zero, in, err
		}
		count := int(n)
		if count < 0 {
			return zero, in, NewError(KindLengthData, in)
		}
		chunk, rest, have, ok := splitUnits(rest, count)
		if !ok {
			return zero, in, &Incomplete{Needed: uint(count - have)}
		}
		return chunk, rest, nil
	}
}

// LengthValue slices a length-prefixed chunk as LengthData does, then runs
// p against that chunk alone. Leftover units inside the chunk are
// discarded: the declared boundary, not p, decides total consumption. An
// incomplete signal from p is demoted to Recoverable(complete) since no
// amount of further input can grow the chunk.
func LengthValue[I Input, L Integer, O any](lenp Parser[I, L], p Parser[I, O]) Parser[I, O] {
	data := LengthData(lenp)
	return func(in I) (O, I, error) {
		var zero O
		chunk, rest, err := data(in)
		if err != nil {
			return zero, in, err
		}
		v, _, err := p(chunk)
		if err != nil {
			if _, ok := NeededSize(err); ok {
				return zero, in, NewError(KindComplete, chunk)
			}
			return zero, in, err
		}
		return v, rest, nil
	}
}

// SeparatedList0 parses zero or more occurrences of p separated by sep.
// The list stops at the first position where the separator or the element
// fails, leaving the separator unconsumed. A separator/element pair that
// consumes nothing is a hard error, as in Many0.
func SeparatedList0[I Input, S, O any](sep Parser[I, S], p Parser[I, O]) Parser[I, []O] {
	return func(in I) ([]O, I, error) {
		v, rest, err := p(in)
		if err != nil {
			if IsRecoverable(err) {
				return nil, in, nil
			}
			return nil, in, err
		}
		out := []O{v}
		cur := rest
		for {
			_, afterSep, err := sep(cur)
			if err != nil {
				if IsRecoverable(err) {
					return out, cur, nil
				}
				return nil, in, err
			}
			v, rest, err := p(afterSep)
			if err != nil {
				if IsRecoverable(err) {
					return out, cur, nil
				}
				return nil, in, err
			}
			if len(rest) == len(cur) {
				return nil, in, NewError(KindSeparatedList, cur)
			}
			out = append(out, v)
			cur = rest
		}
	}
}

// SeparatedList1 is SeparatedList0 requiring at least one element; the
// first element's failure is returned as-is.
func SeparatedList1[I Input, S, O any](sep Parser[I, S], p Parser[I, O]) Parser[I, []O] {
	return func(in I) ([]O, I, error) {
		v, rest, err := p(in)
		if err != nil {
			return nil, in, err
		}
		out := []O{v}
		cur := rest
		for {
			_, afterSep, err := sep(cur)
			if err != nil {
				if IsRecoverable(err) {
					return out, cur, nil
				}
				return nil, in, err
			}
			v, rest, err := p(afterSep)
			if err != nil {
				if IsRecoverable(err) {
					return out, cur, nil
				}
				return nil, in, err
			}
			if len(rest) == len(cur) {
				return nil, in, NewError(KindSeparatedList, cur)
			}
			out = append(out, v)
			cur = rest
		}
	}
}

// ManyTill accumulates matches of p until end succeeds, returning the
// collected values together with end's result. At each step end is probed
// first; only when it fails recoverably does p run. Failures of p and
// fatal or incomplete failures of either side abort the whole parse.
func ManyTill[I Input, O, E any](p Parser[I, O], end Parser[I, E]) Parser[I, PairOf[[]O, E]] {
	return func(in I) (PairOf[[]O, E], I, error) {
		var out []O
		cur := in
		for {
			ev, rest, err := end(cur)
			if err == nil {
				return PairOf[[]O, E]{A: out, B: ev}, rest, nil
			}
			if !IsRecoverable(err) {
				return PairOf[[]O, E]{}, in, err
			}
			v, rest, err := p(cur)
			if err != nil {
				return PairOf[[]O, E]{}, in, err
			}
			if len(rest) == len(cur) {
				return PairOf[[]O, E]{}, in, NewError(KindMany, cur)
			}
			out = append(out, v)
			cur = rest
		}
	}
}
