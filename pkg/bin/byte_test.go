package bin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogest/elnom/pkg/bin"
	"github.com/mogest/elnom/pkg/elnom"
	"github.com/mogest/elnom/testutil"
)

func TestByte(t *testing.T) {
	v, rest, err := bin.Byte(0x1F)(testutil.MustHex(t, "1f8b08"))
	require.NoError(t, err)
	assert.Equal(t, byte(0x1F), v)
	assert.Equal(t, []byte{0x8B, 0x08}, rest)

	_, rest, err = bin.Byte(0x1F)([]byte{0x42})
	testutil.RequireRecoverable(t, err, elnom.KindChar)
	assert.Equal(t, []byte{0x42}, rest)

	_, _, err = bin.Byte(0x1F)(nil)
	testutil.RequireRecoverable(t, err, elnom.KindChar)
}

func TestSatisfy(t *testing.T) {
	highBit := bin.Satisfy(func(b byte) bool { return b&0x80 != 0 })

	v, _, err := highBit([]byte{0xC0})
	require.NoError(t, err)
	assert.Equal(t, byte(0xC0), v)

	_, _, err = highBit([]byte{0x40})
	testutil.RequireRecoverable(t, err, elnom.KindSatisfy)
}

func TestOneOf(t *testing.T) {
	p := bin.OneOf("\x00\x01")

	v, _, err := p([]byte{0x01, 0xFF})
	require.NoError(t, err)
	assert.Equal(t, byte(0x01), v)

	_, _, err = p([]byte{0x02})
	testutil.RequireRecoverable(t, err, elnom.KindOneOf)
}

func TestNoneOf(t *testing.T) {
	p := bin.NoneOf("\r\n")

	v, _, err := p([]byte("x"))
	require.NoError(t, err)
	assert.Equal(t, byte('x'), v)

	_, _, err = p([]byte("\n"))
	testutil.RequireRecoverable(t, err, elnom.KindNoneOf)
}

func TestAnyByte(t *testing.T) {
	v, rest, err := bin.AnyByte()([]byte{0xFF, 0x00})
	require.NoError(t, err)
	assert.Equal(t, byte(0xFF), v)
	assert.Equal(t, []byte{0x00}, rest)

	_, _, err = bin.AnyByte()([]byte{})
	testutil.RequireRecoverable(t, err, elnom.KindAnyChar)
}

func TestTab(t *testing.T) {
	v, _, err := bin.Tab()([]byte("\tx"))
	require.NoError(t, err)
	assert.Equal(t, byte('\t'), v)
}
