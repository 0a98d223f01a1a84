package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"

	"github.com/mogest/elnom/pkg/bin"
	"github.com/mogest/elnom/pkg/textenc"
)

func newStringsCmd() *cobra.Command {
	var (
		encName  string
		minLen   int
		hexInput bool
	)

	cmd := &cobra.Command{
		Use:   "strings [file]",
		Short: "Extract decodable text runs from binary data",
		Long: `Scan binary data for runs of text bytes, decode each run with the
chosen encoding, and print the ones at least --min bytes long. Runs
that do not decode cleanly are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args, hexInput)
			if err != nil {
				return err
			}
			enc, err := textenc.ByName(encName)
			if err != nil {
				return err
			}
			for _, s := range extractStrings(data, minLen, enc) {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&encName, "encoding", "e", "ascii", "text encoding, e.g. latin1, utf16le, shiftjis")
	cmd.Flags().IntVarP(&minLen, "min", "m", 4, "minimum run length in bytes")
	cmd.Flags().BoolVarP(&hexInput, "hex", "x", false, "treat the argument as inline hex instead of a filename")

	return cmd
}

// extractStrings walks the buffer alternating between text-byte runs and
// single skipped bytes. A run qualifies when it reaches minLen and
// decodes without error.
func extractStrings(data []byte, minLen int, enc encoding.Encoding) []string {
	run := bin.TakeWhile1(func(b byte) bool { return b >= 0x20 && b != 0x7F })
	skip := bin.AnyByte()

	var out []string
	cur := data
	for len(cur) > 0 {
		if chunk, rest, err := run(cur); err == nil {
			if len(chunk) >= minLen {
				if s, derr := textenc.Decode(enc, chunk); derr == nil {
					out = append(out, s)
				}
			}
			cur = rest
			continue
		}
		_, rest, _ := skip(cur)
		cur = rest
	}
	return out
}
