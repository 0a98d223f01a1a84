package elnom_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogest/elnom/pkg/bin"
	"github.com/mogest/elnom/pkg/elnom"
	"github.com/mogest/elnom/pkg/text"
	"github.com/mogest/elnom/testutil"
)

func TestMap(t *testing.T) {
	p := elnom.Map(text.Digit1(), func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	})

	v, rest, err := p("42!")
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, "!", rest)
}

func TestMapRes(t *testing.T) {
	p := elnom.MapRes(text.HexDigit1(), func(s string) (uint64, error) {
		return strconv.ParseUint(s, 16, 8)
	})

	v, rest, err := p("ff rest")
	require.NoError(t, err)
	assert.Equal(t, uint64(0xFF), v)
	assert.Equal(t, " rest", rest)

	_, rest, err = p("ffff")
	testutil.RequireRecoverable(t, err, elnom.KindMapRes)
	assert.Equal(t, "ffff", rest)
}

func TestFlatMap(t *testing.T) {
	// The leading digit names how many characters follow.
	p := elnom.FlatMap(
		elnom.Map(text.Satisfy(text.IsDigit), func(r rune) uint { return uint(r - '0') }),
		func(n uint) elnom.Parser[string, string] { return text.Take(n) },
	)

	v, rest, err := p("3abcd")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
	assert.Equal(t, "d", rest)
}

func TestOpt(t *testing.T) {
	p := elnom.Opt(text.Char('-'))

	v, rest, err := p("-12")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, '-', *v)
	assert.Equal(t, "12", rest)

	v, rest, err = p("12")
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.Equal(t, "12", rest)
}

func TestOptFatalPropagates(t *testing.T) {
	p := elnom.Opt(elnom.Cut(text.Digit1()))
	_, _, err := p("ab")
	testutil.RequireFatal(t, err, elnom.KindDigit)
}

func TestCutCommitment(t *testing.T) {
	// A sign commits to a number: the fallback must not run.
	p := elnom.Alt(
		elnom.Preceded(text.OneOf("+-"), elnom.Cut(text.Digit1())),
		elnom.Rest[string](),
	)

	_, rest, err := p("+")
	testutil.RequireFatal(t, err, elnom.KindDigit)
	assert.Equal(t, "+", rest)

	var perr *elnom.Error[string]
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "", perr.Input, "failure position is after the sign")
}

func TestCutLeavesMatchesAlone(t *testing.T) {
	p := elnom.Cut(text.Digit1())

	v, rest, err := p("12ab")
	require.NoError(t, err)
	assert.Equal(t, "12", v)
	assert.Equal(t, "ab", rest)
}

func TestCutIgnoresIncomplete(t *testing.T) {
	p := elnom.Cut(elnom.LengthData(bin.U8()))
	_, _, err := p([]byte{0x05, 0x01})
	testutil.RequireIncomplete(t, err, 4)
}

func TestPeek(t *testing.T) {
	p := elnom.Peek(text.Tag("ab"))

	v, rest, err := p("abc")
	require.NoError(t, err)
	assert.Equal(t, "ab", v)
	assert.Equal(t, "abc", rest, "peek never consumes")
}

func TestNot(t *testing.T) {
	p := elnom.Not(text.Digit1())

	_, rest, err := p("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", rest)

	_, rest, err = p("123")
	testutil.RequireRecoverable(t, err, elnom.KindNot)
	assert.Equal(t, "123", rest)
}

func TestVerify(t *testing.T) {
	long := elnom.Verify(text.Alpha1(), func(s string) bool { return len(s) >= 3 })

	v, rest, err := long("hello!")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
	assert.Equal(t, "!", rest)

	_, rest, err = long("hi!")
	testutil.RequireRecoverable(t, err, elnom.KindVerify)
	assert.Equal(t, "hi!", rest)

	var perr *elnom.Error[string]
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "hi!", perr.Input, "verify fails at the pre-match position")
}

func TestRecognize(t *testing.T) {
	p := elnom.Recognize(elnom.SeparatedPair(text.Alpha1(), text.Char('='), text.Digit1()))

	v, rest, err := p("width=80;")
	require.NoError(t, err)
	assert.Equal(t, "width=80", v)
	assert.Equal(t, ";", rest)
}

func TestConsumed(t *testing.T) {
	p := elnom.Consumed(elnom.Map(text.Digit1(), func(s string) int {
		n, _ := strconv.Atoi(s)
		return n
	}))

	v, rest, err := p("42!")
	require.NoError(t, err)
	assert.Equal(t, "42", v.A)
	assert.Equal(t, 42, v.B)
	assert.Equal(t, "!", rest)
}

func TestAllConsuming(t *testing.T) {
	p := elnom.AllConsuming(text.Alpha1())

	v, rest, err := p("abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
	assert.Empty(t, rest)

	_, rest, err = p("abc1")
	testutil.RequireRecoverable(t, err, elnom.KindAllConsuming)
	assert.Equal(t, "abc1", rest)

	var perr *elnom.Error[string]
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "1", perr.Input, "error reports the leftover suffix")
}

func TestComplete(t *testing.T) {
	p := elnom.Complete(elnom.LengthData(bin.U8()))

	_, rest, err := p([]byte{0x05, 0x01})
	testutil.RequireRecoverable(t, err, elnom.KindComplete)
	assert.Equal(t, []byte{0x05, 0x01}, rest)

	v, _, err := p([]byte{0x02, 'h', 'i'})
	require.NoError(t, err)
	assert.Equal(t, []byte("hi"), v)
}

func TestEof(t *testing.T) {
	p := elnom.Eof[string]()

	v, rest, err := p("")
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.Empty(t, rest)

	_, _, err = p("x")
	testutil.RequireRecoverable(t, err, elnom.KindEOF)
}

func TestRestAndRestLen(t *testing.T) {
	v, rest, err := elnom.Rest[string]()("héllo")
	require.NoError(t, err)
	assert.Equal(t, "héllo", v)
	assert.Empty(t, rest)

	n, rest, err := elnom.RestLen[string]()("héllo")
	require.NoError(t, err)
	assert.Equal(t, 5, n, "length in runes for text")
	assert.Equal(t, "héllo", rest)

	bn, _, err := elnom.RestLen[[]byte]()([]byte("héllo"))
	require.NoError(t, err)
	assert.Equal(t, 6, bn, "length in bytes for binary buffers")
}

func TestSuccessValueFail(t *testing.T) {
	v, rest, err := elnom.Success[string](7)("abc")
	require.NoError(t, err)
	assert.Equal(t, 7, v)
	assert.Equal(t, "abc", rest)

	b, rest, err := elnom.Value(true, text.Tag("yes"))("yes!")
	require.NoError(t, err)
	assert.True(t, b)
	assert.Equal(t, "!", rest)

	_, _, err = elnom.Fail[string, int]()("anything")
	testutil.RequireRecoverable(t, err, elnom.KindFail)
}

func TestBacktrackingPurity(t *testing.T) {
	// The first branch consumes letters before failing on the digit; the
	// second branch must see the untouched input.
	p := elnom.Alt(
		elnom.Pair(text.Alpha1(), text.Digit1()),
		elnom.Pair(text.Alpha1(), text.Tag("!")),
	)

	v, rest, err := p("abc!")
	require.NoError(t, err)
	assert.Equal(t, "abc", v.A)
	assert.Equal(t, "!", v.B)
	assert.Empty(t, rest)
}
