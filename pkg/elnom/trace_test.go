package elnom_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogest/elnom/pkg/bin"
	"github.com/mogest/elnom/pkg/elnom"
	"github.com/mogest/elnom/pkg/text"
	"github.com/mogest/elnom/testutil"
)

func newDebugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestTraceMatch(t *testing.T) {
	var buf bytes.Buffer
	p := elnom.Trace(newDebugLogger(&buf), "digits", text.Digit1())

	v, rest, err := p("123ab")
	require.NoError(t, err)
	assert.Equal(t, "123", v)
	assert.Equal(t, "ab", rest)

	out := buf.String()
	assert.Contains(t, out, "parser matched")
	assert.Contains(t, out, "parser=digits")
	assert.Contains(t, out, "consumed_bytes=3")
	assert.Contains(t, out, "remaining_bytes=2")
}

func TestTraceBacktrack(t *testing.T) {
	var buf bytes.Buffer
	p := elnom.Trace(newDebugLogger(&buf), "digits", text.Digit1())

	_, rest, err := p("xyz")
	testutil.RequireRecoverable(t, err, elnom.KindDigit)
	assert.Equal(t, "xyz", rest, "tracing must not change parse semantics")
	assert.Contains(t, buf.String(), "parser backtracked")
}

func TestTraceAbort(t *testing.T) {
	var buf bytes.Buffer
	p := elnom.Trace(newDebugLogger(&buf), "committed", elnom.Cut(text.Digit1()))

	_, _, err := p("xyz")
	testutil.RequireFatal(t, err, elnom.KindDigit)
	assert.Contains(t, buf.String(), "parser aborted")
}

func TestTraceIncomplete(t *testing.T) {
	var buf bytes.Buffer
	p := elnom.Trace(newDebugLogger(&buf), "frame", elnom.LengthData(bin.U8()))

	_, _, err := p([]byte{0x04, 0x01})
	testutil.RequireIncomplete(t, err, 3)
	assert.Contains(t, buf.String(), "parser needs more input")
}

func TestTraceNilLoggerUsesDefault(t *testing.T) {
	p := elnom.Trace(nil, "digits", text.Digit1())

	v, _, err := p("7")
	require.NoError(t, err)
	assert.Equal(t, "7", v)
}
