package process_test

import (
	"bytes"
	"compress/zlib"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogest/elnom/pkg/bin"
	"github.com/mogest/elnom/pkg/elnom"
	"github.com/mogest/elnom/pkg/process"
	"github.com/mogest/elnom/pkg/textenc"
	"github.com/mogest/elnom/testutil"
)

func TestXOR(t *testing.T) {
	f := process.XOR([]byte{0x5F})

	out, err := f([]byte{0x37, 0x3A, 0x33, 0x33, 0x30})
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), out)

	// Applying the same key twice restores the original.
	back, err := f(out)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x37, 0x3A, 0x33, 0x33, 0x30}, back)
}

func TestXORMultiByteKey(t *testing.T) {
	f := process.XOR([]byte{0x01, 0x02})

	out, err := f([]byte{0x01, 0x02, 0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, out)
}

func TestXOREmptyKey(t *testing.T) {
	f := process.XOR(nil)
	_, err := f([]byte{0x01})
	require.Error(t, err)
}

func TestXORKeyCopied(t *testing.T) {
	key := []byte{0xAA}
	f := process.XOR(key)
	key[0] = 0x00

	out, err := f([]byte{0xAA})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00}, out, "mutating the caller's key must not affect the transform")
}

func TestRotateRoundTrip(t *testing.T) {
	data := testutil.MustHex(t, "0180ff42")

	left, err := process.Rotate(3)(data)
	require.NoError(t, err)
	back, err := process.Rotate(-3)(left)
	require.NoError(t, err)
	assert.Equal(t, data, back)
}

func TestRotateLeftOne(t *testing.T) {
	out, err := process.Rotate(1)([]byte{0x81})
	require.NoError(t, err)
	assert.Equal(t, []byte{0x03}, out, "the high bit wraps to the low bit")
}

func TestZlib(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte("inflate me"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	out, err := process.Zlib()(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []byte("inflate me"), out)
}

func TestZlibGarbage(t *testing.T) {
	_, err := process.Zlib()([]byte{0x00, 0x01, 0x02})
	require.Error(t, err)
}

func TestRegion(t *testing.T) {
	// A length-prefixed region, XOR-masked, holding a latin-1 string.
	masked, err := process.XOR([]byte{0x10})([]byte("secret"))
	require.NoError(t, err)
	input := append(append([]byte{byte(len(masked))}, masked...), 0xEE)

	p := process.Region(
		elnom.LengthData(bin.U8()),
		process.XOR([]byte{0x10}),
		textenc.Rest(textenc.ASCII),
	)

	v, rest, err := p(input)
	require.NoError(t, err)
	assert.Equal(t, "secret", v)
	assert.Equal(t, []byte{0xEE}, rest, "consumption is decided by the region parser")
}

func TestRegionDiscardsLeftover(t *testing.T) {
	p := process.Region(
		elnom.LengthData(bin.U8()),
		process.Rotate(0),
		bin.U16BE(),
	)

	v, rest, err := p(testutil.MustHex(t, "03 010299 aa"))
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0102), v)
	assert.Equal(t, []byte{0xAA}, rest)
}

func TestRegionTransformFailure(t *testing.T) {
	p := process.Region(
		elnom.LengthData(bin.U8()),
		process.Zlib(),
		bin.U8(),
	)

	_, rest, err := p(testutil.MustHex(t, "03 000102"))
	testutil.RequireRecoverable(t, err, elnom.KindMapRes)
	assert.Equal(t, testutil.MustHex(t, "03000102"), rest)
}

func TestRegionInnerIncompleteDemoted(t *testing.T) {
	p := process.Region(
		elnom.LengthData(bin.U8()),
		process.Rotate(0),
		elnom.LengthData(bin.U8()),
	)

	// The region holds a prefix declaring five bytes with only one behind
	// it; more input can never arrive inside a transformed chunk.
	_, _, err := p(testutil.MustHex(t, "02 0501"))
	testutil.RequireRecoverable(t, err, elnom.KindComplete)
}

func TestRegionFailurePropagates(t *testing.T) {
	p := process.Region(
		elnom.LengthData(bin.U8()),
		process.Rotate(0),
		bin.Tag([]byte("OK")),
	)

	_, rest, err := p([]byte{0x02, 'N', 'O'})
	testutil.RequireRecoverable(t, err, elnom.KindTag)
	assert.Equal(t, []byte{0x02, 'N', 'O'}, rest)
}
