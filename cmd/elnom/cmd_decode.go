package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mogest/elnom/pkg/bin"
	"github.com/mogest/elnom/pkg/elnom"
)

// decoders maps type names to fixed-width parsers with their values
// rendered as strings, so one command covers every width.
var decoders = map[string]elnom.Parser[[]byte, string]{
	"u8":     render(bin.U8()),
	"i8":     render(bin.I8()),
	"u16be":  render(bin.U16BE()),
	"u16le":  render(bin.U16LE()),
	"i16be":  render(bin.I16BE()),
	"i16le":  render(bin.I16LE()),
	"u24be":  render(bin.U24BE()),
	"u24le":  render(bin.U24LE()),
	"i24be":  render(bin.I24BE()),
	"i24le":  render(bin.I24LE()),
	"u32be":  render(bin.U32BE()),
	"u32le":  render(bin.U32LE()),
	"i32be":  render(bin.I32BE()),
	"i32le":  render(bin.I32LE()),
	"u64be":  render(bin.U64BE()),
	"u64le":  render(bin.U64LE()),
	"i64be":  render(bin.I64BE()),
	"i64le":  render(bin.I64LE()),
	"u128be": render(bin.U128BE()),
	"u128le": render(bin.U128LE()),
	"i128be": render(bin.I128BE()),
	"i128le": render(bin.I128LE()),
	"f32be":  render(bin.F32BE()),
	"f32le":  render(bin.F32LE()),
	"f64be":  render(bin.F64BE()),
	"f64le":  render(bin.F64LE()),
}

func render[O any](p elnom.Parser[[]byte, O]) elnom.Parser[[]byte, string] {
	return elnom.Map(p, func(v O) string { return fmt.Sprint(v) })
}

func decoderNames() string {
	names := make([]string, 0, len(decoders))
	for name := range decoders {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

func newDecodeCmd() *cobra.Command {
	var (
		typeName string
		count    int
		hexInput bool
	)

	cmd := &cobra.Command{
		Use:   "decode [file]",
		Short: "Decode fixed-width numbers from binary data",
		Long: `Decode a run of fixed-width values from a file, stdin, or an inline
hex argument, printing one value per line.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(args, hexInput)
			if err != nil {
				return err
			}
			p, ok := decoders[typeName]
			if !ok {
				return fmt.Errorf("unknown type %q (have %s)", typeName, decoderNames())
			}

			run := elnom.Many1(p)
			if count > 0 {
				run = elnom.Count(p, count)
			}
			values, rest, err := run(data)
			if err != nil {
				return fmt.Errorf("decoding %s values: %w", typeName, err)
			}
			for _, v := range values {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			if len(rest) > 0 {
				slog.Warn("trailing bytes left undecoded", "count", len(rest))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "u8", "value type, e.g. u32be, i16le, f64be")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of values to decode (0 decodes as many as fit)")
	cmd.Flags().BoolVarP(&hexInput, "hex", "x", false, "treat the argument as inline hex instead of a filename")

	return cmd
}
