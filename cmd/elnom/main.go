package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "elnom",
		Short: "Parser combinator toolkit for text and binary data",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log parser activity to stderr")

	rootCmd.AddCommand(newCalcCmd())
	rootCmd.AddCommand(newDecodeCmd())
	rootCmd.AddCommand(newStringsCmd())
	rootCmd.AddCommand(newUnwrapCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
