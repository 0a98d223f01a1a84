package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mogest/elnom/pkg/bin"
	"github.com/mogest/elnom/pkg/elnom"
	"github.com/mogest/elnom/pkg/process"
)

var regionParsers = map[string]elnom.Parser[[]byte, []byte]{
	"u8":    elnom.LengthData(bin.U8()),
	"u16be": elnom.LengthData(bin.U16BE()),
	"u16le": elnom.LengthData(bin.U16LE()),
	"u32be": elnom.LengthData(bin.U32BE()),
	"u32le": elnom.LengthData(bin.U32LE()),
}

func newUnwrapCmd() *cobra.Command {
	var (
		spec     string
		prefix   string
		hexInput bool
		outPath  string
	)

	cmd := &cobra.Command{
		Use:   "unwrap [file]",
		Short: "Apply a process transform to a binary payload",
		Long: `Run a transform such as "xor(0x5f)", "rotate(3)" or "zlib" over a
payload and write the result.

With --prefix the payload starts with a length prefix; only the framed
region is transformed, and trailing bytes are reported and left alone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if spec == "" {
				return fmt.Errorf("--process is required")
			}
			data, err := readInput(args, hexInput)
			if err != nil {
				return err
			}
			fn, err := process.NewRegistry().Resolve(spec)
			if err != nil {
				return err
			}

			var out []byte
			if prefix == "" {
				out, err = fn(data)
				if err != nil {
					return fmt.Errorf("applying %s: %w", spec, err)
				}
			} else {
				region, ok := regionParsers[prefix]
				if !ok {
					return fmt.Errorf("unknown prefix type %q (have u8, u16be, u16le, u32be, u32le)", prefix)
				}
				var rest []byte
				out, rest, err = process.Region(region, fn, elnom.Rest[[]byte]())(data)
				if err != nil {
					return fmt.Errorf("unwrapping region: %w", err)
				}
				if len(rest) > 0 {
					slog.Info("trailing bytes after region", "count", len(rest))
				}
			}
			return writeOutput(outPath, out)
		},
	}

	cmd.Flags().StringVarP(&spec, "process", "p", "", `transform specification, e.g. "xor(0x5f, 0x10)"`)
	cmd.Flags().StringVar(&prefix, "prefix", "", "length prefix framing the region (u8, u16be, u16le, u32be, u32le)")
	cmd.Flags().BoolVarP(&hexInput, "hex", "x", false, "treat the argument as inline hex instead of a filename")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the result to a file instead of stdout")

	return cmd
}
