package textenc

import (
	"errors"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ASCII is a strict 7-bit encoding: any byte above 0x7F is a decode (or
// encode) error rather than a replacement character. x/text ships no
// validating ASCII codec, so this one implements the Encoding interface
// directly.
var ASCII encoding.Encoding = asciiEncoding{}

// ErrNonASCII is returned when a buffer contains a byte outside the
// 7-bit range.
var ErrNonASCII = errors.New("byte outside ASCII range")

type asciiEncoding struct{}

func (asciiEncoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: asciiTransformer{}}
}

func (asciiEncoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: asciiTransformer{}}
}

type asciiTransformer struct{}

func (asciiTransformer) Reset() {}

func (asciiTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		c := src[nSrc]
		if c > 0x7F {
			return nDst, nSrc, ErrNonASCII
		}
		dst[nDst] = c
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
