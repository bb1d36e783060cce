package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for CLI I/O.
var (
	ErrNoInput      = errors.New("no input provided")
	ErrReadInput    = errors.New("failed to read input")
	ErrWriteOutput  = errors.New("failed to write output")
	ErrTooManyArgs  = errors.New("too many arguments")
	ErrBadFormat    = errors.New("unsupported output format")
	ErrReadCSS      = errors.New("failed to read CSS file")
)

// readInput returns the transcript content and a display name.
// A single positional argument names a file; "-" or no argument reads
// from stdin.
func readInput(args []string, env *Environment) (content, name string, err error) {
	if len(args) > 1 {
		return "", "", fmt.Errorf("%w: expected at most one input file", ErrTooManyArgs)
	}

	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(env.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
		}
		if len(data) == 0 {
			return "", "", ErrNoInput
		}
		return string(data), "transcript", nil
	}

	path := args[0]
	data, err := os.ReadFile(path) // #nosec G304 -- input path is user-provided
	if err != nil {
		return "", "", fmt.Errorf("%w: %s: %v", ErrReadInput, path, err)
	}

	base := filepath.Base(path)
	return string(data), strings.TrimSuffix(base, filepath.Ext(base)), nil
}
