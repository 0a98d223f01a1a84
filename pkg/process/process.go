package process

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"

	"github.com/mogest/elnom/pkg/elnom"
)

// Func transforms a raw byte region before it is parsed. Implementations
// must not modify the input slice.
type Func func(data []byte) ([]byte, error)

// XOR returns a transform XORing data with the repeating key.
func XOR(key []byte) Func {
	k := append([]byte(nil), key...)
	return func(data []byte) ([]byte, error) {
		if len(k) == 0 {
			return nil, errors.New("xor key must not be empty")
		}
		return kaitai.ProcessXOR(data, k), nil
	}
}

// Zlib returns a transform inflating a zlib-compressed region.
func Zlib() Func {
	return kaitai.ProcessZlib
}

// Rotate returns a transform rotating each byte left by amount bits; a
// negative amount rotates right.
func Rotate(amount int) Func {
	return func(data []byte) ([]byte, error) {
		if amount >= 0 {
			return kaitai.ProcessRotateLeft(data, amount), nil
		}
		return kaitai.ProcessRotateRight(data, -amount), nil
	}
}

// Region slices a raw chunk out of the stream with region, applies f, and
// runs p over the transformed bytes. Consumption of the outer stream is
// decided entirely by region; whatever p leaves unread inside the
// transformed chunk is discarded.
//
// A transform failure surfaces as Recoverable(map_res) at the region
// start. Since the transformed chunk cannot grow, an incomplete signal
// from p is demoted to Recoverable(complete), mirroring LengthValue.
func Region[O any](region elnom.Parser[[]byte, []byte], f Func, p elnom.Parser[[]byte, O]) elnom.Parser[[]byte, O] {
	return func(in []byte) (O, []byte, error) {
		var zero O
		raw, rest, err := region(in)
		if err != nil {
			return zero, in, err
		}
		cooked, err := f(raw)
		if err != nil {
			return zero, in, elnom.NewError(elnom.KindMapRes, in)
		}
		v, _, err := p(cooked)
		if err != nil {
			if _, ok := elnom.NeededSize(err); ok {
				return zero, in, elnom.NewError(elnom.KindComplete, cooked)
			}
			return zero, in, err
		}
		return v, rest, nil
	}
}

// Registry resolves textual process specifications such as "xor(0x5f)",
// "xor(0x5f, 0x10)", "rotate(3)" or "zlib" into transforms. The zero
// value is unusable; NewRegistry installs the built-in transforms, and
// Register adds custom ones.
type Registry struct {
	builders map[string]func(args []int64) (Func, error)
}

// NewRegistry returns a registry with the xor, zlib and rotate transforms
// installed.
func NewRegistry() *Registry {
	r := &Registry{builders: make(map[string]func(args []int64) (Func, error))}
	r.Register("xor", buildXOR)
	r.Register("zlib", buildZlib)
	r.Register("rotate", buildRotate)
	return r
}

// Register adds a named transform builder. The builder receives the
// numeric arguments from the specification in order. Names are matched
// case-insensitively.
func (r *Registry) Register(name string, build func(args []int64) (Func, error)) {
	r.builders[strings.ToLower(name)] = build
}

// Resolve parses a specification and builds the transform it names.
func (r *Registry) Resolve(spec string) (Func, error) {
	name, args, err := parseSpec(spec)
	if err != nil {
		return nil, err
	}
	build, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown process function: %s", name)
	}
	fn, err := build(args)
	if err != nil {
		return nil, fmt.Errorf("process %s: %w", name, err)
	}
	return fn, nil
}

func buildXOR(args []int64) (Func, error) {
	if len(args) == 0 {
		return nil, errors.New("xor requires at least one key byte")
	}
	key := make([]byte, len(args))
	for i, a := range args {
		if a < 0 || a > 0xFF {
			return nil, fmt.Errorf("key byte %d out of range: %d", i, a)
		}
		key[i] = byte(a)
	}
	return XOR(key), nil
}

func buildZlib(args []int64) (Func, error) {
	if len(args) != 0 {
		return nil, errors.New("zlib takes no arguments")
	}
	return Zlib(), nil
}

func buildRotate(args []int64) (Func, error) {
	if len(args) != 1 {
		return nil, errors.New("rotate requires exactly one amount")
	}
	return Rotate(int(args[0])), nil
}
