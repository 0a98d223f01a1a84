package textenc

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"

	"github.com/mogest/elnom/pkg/bin"
	"github.com/mogest/elnom/pkg/elnom"
)

// Sized reads exactly n bytes and decodes them with enc.
func Sized(n uint, enc encoding.Encoding) elnom.Parser[[]byte, string] {
	return elnom.MapRes(bin.Take(n), decoderFor(enc))
}

// Terminated reads bytes up to the terminator byte, consumes the
// terminator, and decodes everything before it with enc. A buffer without
// the terminator fails with take_until. The terminator is matched on the
// raw bytes, so this suits single-byte-terminated fields; multi-byte
// encodings with embedded zero bytes need Sized instead.
func Terminated(term byte, enc encoding.Encoding) elnom.Parser[[]byte, string] {
	raw := elnom.Terminated(bin.TakeUntil([]byte{term}), bin.Take(1))
	return elnom.MapRes(raw, decoderFor(enc))
}

// Rest decodes the entire remaining buffer with enc.
func Rest(enc encoding.Encoding) elnom.Parser[[]byte, string] {
	return elnom.MapRes(elnom.Rest[[]byte](), decoderFor(enc))
}

// Decode converts data to a string through enc. A fresh decoder is built
// per call; decoders carry state and must not be shared.
func Decode(enc encoding.Encoding, data []byte) (string, error) {
	out, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("decoding %d bytes: %w", len(data), err)
	}
	return string(out), nil
}

func decoderFor(enc encoding.Encoding) func([]byte) (string, error) {
	return func(data []byte) (string, error) {
		return Decode(enc, data)
	}
}

// ByName resolves an encoding label to its implementation. Case, spaces,
// hyphens and underscores in the label are ignored, so "UTF-16LE",
// "utf_16le" and "utf16le" are the same encoding.
func ByName(name string) (encoding.Encoding, error) {
	switch normalize(name) {
	case "ASCII":
		return ASCII, nil
	case "UTF8":
		return unicode.UTF8, nil
	case "UTF16LE":
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), nil
	case "UTF16BE":
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), nil
	case "UTF32LE":
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM), nil
	case "UTF32BE":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM), nil
	case "ISO88591", "LATIN1":
		return charmap.ISO8859_1, nil
	case "ISO885915":
		return charmap.ISO8859_15, nil
	case "WINDOWS1252", "CP1252":
		return charmap.Windows1252, nil
	case "CP437", "IBM437":
		return charmap.CodePage437, nil
	case "SHIFTJIS", "SJIS":
		return japanese.ShiftJIS, nil
	case "EUCJP":
		return japanese.EUCJP, nil
	}
	return nil, fmt.Errorf("unsupported encoding: %s", name)
}

func normalize(name string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		}
		return r
	}, name))
}
