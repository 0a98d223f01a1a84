package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mogest/elnom/pkg/textenc"
)

func TestEvalArithmetic(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "Single", input: "42", want: 42},
		{name: "Precedence", input: "1 + 2 * 3", want: 7},
		{name: "Parens", input: "(1 + 2) * 3", want: 9},
		{name: "NestedParens", input: "2 * (3 + (4 - 1))", want: 12},
		{name: "NegativeLiteral", input: "-4 + 10", want: 6},
		{name: "TightSpacing", input: "6/2-1", want: 2},
		{name: "DivisionByZero", input: "1 / 0", wantErr: true},
		{name: "TrailingJunk", input: "1 + 2 !", wantErr: true},
		{name: "UnbalancedParen", input: "(1 + 2", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := evalArithmetic(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestExtractStrings(t *testing.T) {
	data := []byte{0x00, 'h', 'e', 'l', 'l', 'o', 0x01, 0x02, 'h', 'i', 0x00, 'w', 'o', 'r', 'l', 'd', '!'}

	got := extractStrings(data, 4, textenc.ASCII)
	assert.Equal(t, []string{"hello", "world!"}, got)
}

func TestExtractStringsEncodingFilter(t *testing.T) {
	// 0xE9 is é in latin-1 but bare 0xE9 is not valid ASCII; the run
	// qualifies by length either way, but only latin-1 decodes it.
	data := []byte{'c', 'a', 'f', 0xE9, 0x00}

	ascii := extractStrings(data, 4, textenc.ASCII)
	assert.Empty(t, ascii)

	latin, err := textenc.ByName("latin1")
	require.NoError(t, err)
	got := extractStrings(data, 4, latin)
	assert.Equal(t, []string{"café"}, got)
}

func TestDecoderRendering(t *testing.T) {
	tests := []struct {
		name  string
		typ   string
		input []byte
		want  string
	}{
		{name: "U16BE", typ: "u16be", input: []byte{0x01, 0x02}, want: "258"},
		{name: "I8Negative", typ: "i8", input: []byte{0xFF}, want: "-1"},
		{name: "F32LE", typ: "f32le", input: []byte{0x00, 0x00, 0x80, 0x3F}, want: "1"},
		{name: "U128BE", typ: "u128be", input: append(make([]byte, 15), 0x09), want: "9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := decoders[tt.typ]
			require.True(t, ok)
			got, rest, err := p(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Empty(t, rest)
		})
	}
}
