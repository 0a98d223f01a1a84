package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// readInput returns the payload for a command: the named file, inline hex
// when hexInline is set, or stdin when no argument is given.
func readInput(args []string, hexInline bool) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	if hexInline {
		clean := strings.Map(func(r rune) rune {
			switch r {
			case ' ', '\t', '\n':
				return -1
			}
			return r
		}, args[0])
		data, err := hex.DecodeString(clean)
		if err != nil {
			return nil, fmt.Errorf("decode hex argument: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return data, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
