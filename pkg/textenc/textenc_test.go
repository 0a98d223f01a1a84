package textenc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"

	"github.com/mogest/elnom/pkg/elnom"
	"github.com/mogest/elnom/pkg/textenc"
	"github.com/mogest/elnom/testutil"
)

func TestSized(t *testing.T) {
	tests := []struct {
		name     string
		parser   elnom.Parser[[]byte, string]
		input    []byte
		want     string
		wantRest []byte
	}{
		{
			name:   "Latin1",
			parser: textenc.Sized(4, charmap.ISO8859_1),
			input:  []byte{'c', 'a', 'f', 0xE9, '!'},
			want:   "café", wantRest: []byte{'!'},
		},
		{
			name:   "UTF16LE",
			parser: textenc.Sized(4, unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)),
			input:  []byte{'h', 0, 'i', 0},
			want:   "hi", wantRest: []byte{},
		},
		{
			name:   "UTF16BE",
			parser: textenc.Sized(4, unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)),
			input:  []byte{0, 'h', 0, 'i'},
			want:   "hi", wantRest: []byte{},
		},
		{
			name:   "ShiftJIS",
			parser: textenc.Sized(4, japanese.ShiftJIS),
			input:  []byte{0x93, 0xFA, 0x96, 0x7B},
			want:   "日本", wantRest: []byte{},
		},
		{
			name:   "CodePage437",
			parser: textenc.Sized(1, charmap.CodePage437),
			input:  []byte{0x80},
			want:   "Ç", wantRest: []byte{},
		},
		{
			name:   "Windows1252",
			parser: textenc.Sized(1, charmap.Windows1252),
			input:  []byte{0x80},
			want:   "€", wantRest: []byte{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, rest, err := tt.parser(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestSizedShortInput(t *testing.T) {
	p := textenc.Sized(4, charmap.ISO8859_1)
	_, rest, err := p([]byte{'a', 'b'})
	testutil.RequireRecoverable(t, err, elnom.KindEOF)
	assert.Equal(t, []byte{'a', 'b'}, rest)
}

func TestTerminated(t *testing.T) {
	p := textenc.Terminated(0, charmap.ISO8859_1)

	v, rest, err := p([]byte{'h', 'i', 0, 'x'})
	require.NoError(t, err)
	assert.Equal(t, "hi", v)
	assert.Equal(t, []byte{'x'}, rest, "the terminator itself is consumed but excluded")

	_, _, err = p([]byte("no terminator"))
	testutil.RequireRecoverable(t, err, elnom.KindTakeUntil)
}

func TestRest(t *testing.T) {
	p := textenc.Rest(unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM))

	v, rest, err := p([]byte{'o', 0, 'k', 0})
	require.NoError(t, err)
	assert.Equal(t, "ok", v)
	assert.Empty(t, rest)
}

func TestASCIIStrict(t *testing.T) {
	v, err := textenc.Decode(textenc.ASCII, []byte("plain text"))
	require.NoError(t, err)
	assert.Equal(t, "plain text", v)

	_, err = textenc.Decode(textenc.ASCII, []byte{'o', 'k', 0x80})
	require.ErrorIs(t, err, textenc.ErrNonASCII)
}

func TestASCIIStrictInParser(t *testing.T) {
	p := textenc.Sized(2, textenc.ASCII)
	_, _, err := p([]byte{0xC3, 0xA9})
	testutil.RequireRecoverable(t, err, elnom.KindMapRes)
}

func TestByName(t *testing.T) {
	aliases := map[string][]string{
		"utf8":        {"UTF-8", "utf_8"},
		"utf16le":     {"UTF-16LE", "utf_16 le"},
		"iso88591":    {"ISO-8859-1", "latin1"},
		"windows1252": {"CP1252", "Windows-1252"},
		"shiftjis":    {"SJIS", "Shift_JIS"},
	}
	for canonical, names := range aliases {
		for _, name := range append(names, canonical) {
			t.Run(name, func(t *testing.T) {
				enc, err := textenc.ByName(name)
				require.NoError(t, err)
				assert.NotNil(t, enc)
			})
		}
	}

	_, err := textenc.ByName("klingon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestByNameDecodesEquivalently(t *testing.T) {
	byLabel, err := textenc.ByName("euc-jp")
	require.NoError(t, err)

	want, err := textenc.Decode(japanese.EUCJP, []byte{0xC6, 0xFC})
	require.NoError(t, err)
	got, err := textenc.Decode(byLabel, []byte{0xC6, 0xFC})
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "日", got)
}
