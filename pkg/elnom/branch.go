package elnom

// Alt tries each alternative in order on the same starting buffer and
// returns the first match. A recoverable failure moves to the next
// alternative; a fatal or incomplete failure aborts the branch and
// propagates. When every alternative fails, the LAST error is returned so
// the final, most specific branch dominates the message.
func Alt[I Input, O any](ps ...Parser[I, O]) Parser[I, O] {
	return func(in I) (O, I, error) {
		var lastErr error
		for _, p := range ps {
			v, rest, err := p(in)
			if err == nil {
				return v, rest, nil
			}
			if !IsRecoverable(err) {
				var zero O
				return zero, in, err
			}
			lastErr = err
		}
		var zero O
		if lastErr == nil {
			lastErr = NewError(KindAlt, in)
		}
		return zero, in, lastErr
	}
}

// Permutation matches every parser exactly once, in whatever order the
// input presents them. It repeatedly sweeps the not-yet-matched parsers in
// declaration order against the current buffer, committing the first one
// that succeeds and restarting the sweep; a later parser that could also
// match at the same position is not considered. Results are returned in
// declaration order regardless of match order.
//
// A sweep in which nothing matches fails with the last recorded error. A
// fatal or incomplete failure on any attempt aborts immediately.
func Permutation[I Input, O any](ps ...Parser[I, O]) Parser[I, []O] {
	return func(in I) ([]O, I, error) {
		out := make([]O, len(ps))
		done := make([]bool, len(ps))
		cur := in
		var lastErr error
		for remaining := len(ps); remaining > 0; remaining-- {
			matched := false
			for i, p := range ps {
				if done[i] {
					continue
				}
				v, rest, err := p(cur)
				if err == nil {
					out[i] = v
					done[i] = true
					cur = rest
					matched = true
					break
				}
				if !IsRecoverable(err) {
					return nil, in, err
				}
				lastErr = err
			}
			if !matched {
				return nil, in, lastErr
			}
		}
		return out, cur, nil
	}
}
