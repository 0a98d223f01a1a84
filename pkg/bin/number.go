package bin

import (
	"encoding/binary"
	"math"
	"math/big"

	"github.com/mogest/elnom/pkg/elnom"
)

// Fixed-width decoders consume exactly their width or fail with eof.

// U8 decodes one unsigned byte.
func U8() elnom.Parser[[]byte, uint8] {
	return func(in []byte) (uint8, []byte, error) {
		if len(in) < 1 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return in[0], in[1:], nil
	}
}

// I8 decodes one signed byte.
func I8() elnom.Parser[[]byte, int8] {
	return func(in []byte) (int8, []byte, error) {
		if len(in) < 1 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return int8(in[0]), in[1:], nil
	}
}

// U16BE decodes a big-endian unsigned 16-bit integer.
func U16BE() elnom.Parser[[]byte, uint16] {
	return func(in []byte) (uint16, []byte, error) {
		if len(in) < 2 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return binary.BigEndian.Uint16(in), in[2:], nil
	}
}

// U16LE decodes a little-endian unsigned 16-bit integer.
func U16LE() elnom.Parser[[]byte, uint16] {
	return func(in []byte) (uint16, []byte, error) {
		if len(in) < 2 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return binary.LittleEndian.Uint16(in), in[2:], nil
	}
}

// I16BE decodes a big-endian signed 16-bit integer.
func I16BE() elnom.Parser[[]byte, int16] {
	return func(in []byte) (int16, []byte, error) {
		if len(in) < 2 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return int16(binary.BigEndian.Uint16(in)), in[2:], nil
	}
}

// I16LE decodes a little-endian signed 16-bit integer.
func I16LE() elnom.Parser[[]byte, int16] {
	return func(in []byte) (int16, []byte, error) {
		if len(in) < 2 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return int16(binary.LittleEndian.Uint16(in)), in[2:], nil
	}
}

// U24BE decodes a big-endian unsigned 24-bit integer into a uint32.
func U24BE() elnom.Parser[[]byte, uint32] {
	return func(in []byte) (uint32, []byte, error) {
		if len(in) < 3 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		v := uint32(in[0])<<16 | uint32(in[1])<<8 | uint32(in[2])
		return v, in[3:], nil
	}
}

// U24LE decodes a little-endian unsigned 24-bit integer into a uint32.
func U24LE() elnom.Parser[[]byte, uint32] {
	return func(in []byte) (uint32, []byte, error) {
		if len(in) < 3 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		v := uint32(in[2])<<16 | uint32(in[1])<<8 | uint32(in[0])
		return v, in[3:], nil
	}
}

// I24BE decodes a big-endian signed 24-bit integer into an int32.
func I24BE() elnom.Parser[[]byte, int32] {
	return elnom.Map(U24BE(), signExtend24)
}

// I24LE decodes a little-endian signed 24-bit integer into an int32.
func I24LE() elnom.Parser[[]byte, int32] {
	return elnom.Map(U24LE(), signExtend24)
}

func signExtend24(v uint32) int32 {
	return int32(v<<8) >> 8
}

// U32BE decodes a big-endian unsigned 32-bit integer.
func U32BE() elnom.Parser[[]byte, uint32] {
	return func(in []byte) (uint32, []byte, error) {
		if len(in) < 4 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return binary.BigEndian.Uint32(in), in[4:], nil
	}
}

// U32LE decodes a little-endian unsigned 32-bit integer.
func U32LE() elnom.Parser[[]byte, uint32] {
	return func(in []byte) (uint32, []byte, error) {
		if len(in) < 4 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return binary.LittleEndian.Uint32(in), in[4:], nil
	}
}

// I32BE decodes a big-endian signed 32-bit integer.
func I32BE() elnom.Parser[[]byte, int32] {
	return func(in []byte) (int32, []byte, error) {
		if len(in) < 4 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return int32(binary.BigEndian.Uint32(in)), in[4:], nil
	}
}

// I32LE decodes a little-endian signed 32-bit integer.
func I32LE() elnom.Parser[[]byte, int32] {
	return func(in []byte) (int32, []byte, error) {
		if len(in) < 4 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return int32(binary.LittleEndian.Uint32(in)), in[4:], nil
	}
}

// U64BE decodes a big-endian unsigned 64-bit integer.
func U64BE() elnom.Parser[[]byte, uint64] {
	return func(in []byte) (uint64, []byte, error) {
		if len(in) < 8 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return binary.BigEndian.Uint64(in), in[8:], nil
	}
}

// U64LE decodes a little-endian unsigned 64-bit integer.
func U64LE() elnom.Parser[[]byte, uint64] {
	return func(in []byte) (uint64, []byte, error) {
		if len(in) < 8 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return binary.LittleEndian.Uint64(in), in[8:], nil
	}
}

// I64BE decodes a big-endian signed 64-bit integer.
func I64BE() elnom.Parser[[]byte, int64] {
	return func(in []byte) (int64, []byte, error) {
		if len(in) < 8 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return int64(binary.BigEndian.Uint64(in)), in[8:], nil
	}
}

// I64LE decodes a little-endian signed 64-bit integer.
func I64LE() elnom.Parser[[]byte, int64] {
	return func(in []byte) (int64, []byte, error) {
		if len(in) < 8 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return int64(binary.LittleEndian.Uint64(in)), in[8:], nil
	}
}

// two128 is 2^128, used to adjust signed 16-byte values.
var two128 = new(big.Int).Lsh(big.NewInt(1), 128)

// U128BE decodes a big-endian unsigned 128-bit integer into a *big.Int.
func U128BE() elnom.Parser[[]byte, *big.Int] {
	return func(in []byte) (*big.Int, []byte, error) {
		if len(in) < 16 {
			return nil, in, elnom.NewError(elnom.KindEOF, in)
		}
		return new(big.Int).SetBytes(in[:16]), in[16:], nil
	}
}

// U128LE decodes a little-endian unsigned 128-bit integer into a *big.Int.
func U128LE() elnom.Parser[[]byte, *big.Int] {
	return func(in []byte) (*big.Int, []byte, error) {
		if len(in) < 16 {
			return nil, in, elnom.NewError(elnom.KindEOF, in)
		}
		return new(big.Int).SetBytes(reverse16(in)), in[16:], nil
	}
}

// I128BE decodes a big-endian signed (two's complement) 128-bit integer.
func I128BE() elnom.Parser[[]byte, *big.Int] {
	return func(in []byte) (*big.Int, []byte, error) {
		if len(in) < 16 {
			return nil, in, elnom.NewError(elnom.KindEOF, in)
		}
		z := new(big.Int).SetBytes(in[:16])
		if in[0]&0x80 != 0 {
			z.Sub(z, two128)
		}
		return z, in[16:], nil
	}
}

// I128LE decodes a little-endian signed (two's complement) 128-bit
// integer.
func I128LE() elnom.Parser[[]byte, *big.Int] {
	return func(in []byte) (*big.Int, []byte, error) {
		if len(in) < 16 {
			return nil, in, elnom.NewError(elnom.KindEOF, in)
		}
		z := new(big.Int).SetBytes(reverse16(in))
		if in[15]&0x80 != 0 {
			z.Sub(z, two128)
		}
		return z, in[16:], nil
	}
}

func reverse16(in []byte) []byte {
	out := make([]byte, 16)
	for i := 0; i < 16; i++ {
		out[i] = in[15-i]
	}
	return out
}

// F32BE decodes a big-endian IEEE-754 single-precision float.
func F32BE() elnom.Parser[[]byte, float32] {
	return func(in []byte) (float32, []byte, error) {
		if len(in) < 4 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return math.Float32frombits(binary.BigEndian.Uint32(in)), in[4:], nil
	}
}

// F32LE decodes a little-endian IEEE-754 single-precision float.
func F32LE() elnom.Parser[[]byte, float32] {
	return func(in []byte) (float32, []byte, error) {
		if len(in) < 4 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return math.Float32frombits(binary.LittleEndian.Uint32(in)), in[4:], nil
	}
}

// F64BE decodes a big-endian IEEE-754 double-precision float.
func F64BE() elnom.Parser[[]byte, float64] {
	return func(in []byte) (float64, []byte, error) {
		if len(in) < 8 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return math.Float64frombits(binary.BigEndian.Uint64(in)), in[8:], nil
	}
}

// F64LE decodes a little-endian IEEE-754 double-precision float.
func F64LE() elnom.Parser[[]byte, float64] {
	return func(in []byte) (float64, []byte, error) {
		if len(in) < 8 {
			return 0, in, elnom.NewError(elnom.KindEOF, in)
		}
		return math.Float64frombits(binary.LittleEndian.Uint64(in)), in[8:], nil
	}
}
