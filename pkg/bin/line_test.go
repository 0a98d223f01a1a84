package bin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogest/elnom/pkg/bin"
	"github.com/mogest/elnom/pkg/elnom"
	"github.com/mogest/elnom/testutil"
)

func TestNewline(t *testing.T) {
	v, rest, err := bin.Newline()([]byte("\nrest"))
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), v)
	assert.Equal(t, []byte("rest"), rest)

	_, _, err = bin.Newline()([]byte("\r\n"))
	testutil.RequireRecoverable(t, err, elnom.KindNewline)
}

func TestCrlf(t *testing.T) {
	v, _, err := bin.Crlf()([]byte("\r\nx"))
	require.NoError(t, err)
	assert.Equal(t, []byte("\r\n"), v)

	_, _, err = bin.Crlf()([]byte("\nx"))
	testutil.RequireRecoverable(t, err, elnom.KindCRLF)
}

func TestLineEnding(t *testing.T) {
	v, _, err := bin.LineEnding()([]byte("\nx"))
	require.NoError(t, err)
	assert.Equal(t, []byte("\n"), v)

	v, _, err = bin.LineEnding()([]byte("\r\nx"))
	require.NoError(t, err)
	assert.Equal(t, []byte("\r\n"), v)

	_, _, err = bin.LineEnding()([]byte("\rx"))
	testutil.RequireRecoverable(t, err, elnom.KindLineEnding)
}

func TestNotLineEnding(t *testing.T) {
	v, rest, err := bin.NotLineEnding()([]byte("ab\r\ncd"))
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), v)
	assert.Equal(t, []byte("\r\ncd"), rest)

	v, rest, err = bin.NotLineEnding()([]byte("abcd"))
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), v)
	assert.Empty(t, rest)

	_, rest, err = bin.NotLineEnding()([]byte("ab\rcd"))
	testutil.RequireRecoverable(t, err, elnom.KindLineEnding)
	assert.Equal(t, []byte("ab\rcd"), rest)
}
