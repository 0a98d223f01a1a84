package kstream

import (
	"fmt"
	"io"

	"github.com/kaitai-io/kaitai_struct_go_runtime/kaitai"

	"github.com/mogest/elnom/pkg/elnom"
)

// Parse applies p to everything between the stream's current position and
// its end. On a match the stream is left positioned after the consumed
// bytes, so successive calls parse successive records. On failure the
// position is restored and the parse error is returned wrapped; use
// elnom.ErrKind or elnom.NeededSize on the unwrapped chain to classify
// it.
func Parse[O any](s *kaitai.Stream, p elnom.Parser[[]byte, O]) (O, error) {
	var zero O

	start, err := s.Pos()
	if err != nil {
		return zero, fmt.Errorf("reading stream position: %w", err)
	}
	data, err := s.ReadBytesFull()
	if err != nil {
		return zero, fmt.Errorf("reading stream: %w", err)
	}

	v, rest, perr := p(data)
	if perr != nil {
		if _, err := s.Seek(start, io.SeekStart); err != nil {
			return zero, fmt.Errorf("restoring stream position: %w", err)
		}
		return zero, fmt.Errorf("parsing stream at offset %d: %w", start, perr)
	}

	consumed := int64(len(data) - len(rest))
	if _, err := s.Seek(start+consumed, io.SeekStart); err != nil {
		return zero, fmt.Errorf("positioning stream after %d parsed bytes: %w", consumed, err)
	}
	return v, nil
}
