package elnom

import "log/slog"

// Trace wraps p with slog debug output under the given name, reporting
// whether each invocation matched, how many bytes it consumed, and the
// failure class otherwise. Semantics are unchanged; a nil logger uses
// slog.Default.
func Trace[I Input, O any](logger *slog.Logger, name string, p Parser[I, O]) Parser[I, O] {
	if logger == nil {
		logger = slog.Default()
	}
	return func(in I) (O, I, error) {
		v, rest, err := p(in)
		switch {
		case err == nil:
			logger.Debug("parser matched",
				"parser", name,
				"consumed_bytes", len(in)-len(rest),
				"remaining_bytes", len(rest))
		case IsFatal(err):
			logger.Debug("parser aborted", "parser", name, "err", err)
		case IsRecoverable(err):
			logger.Debug("parser backtracked", "parser", name, "err", err)
		default:
			logger.Debug("parser needs more input", "parser", name, "err", err)
		}
		return v, rest, err
	}
}
