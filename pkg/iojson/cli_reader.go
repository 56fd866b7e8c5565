package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader decodes a JSON value of type T from a -f file or piped stdin.
// The import command reads export archives through it.
type FileReader[T any] struct {
	path string
}

// Flag returns the -f/--file flag to register on the consuming command.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.path,
	}
}

// Read decodes the input. Reading from an interactive terminal with no -f
// flag is an error rather than a hang.
func (fr *FileReader[T]) Read() (T, error) {
	var in io.Reader
	var value T

	if fr.path != "" {
		f, err := os.Open(fr.path)
		if err != nil {
			return value, fmt.Errorf("open file: %w", err)
		}
		defer func() { _ = f.Close() }()
		in = f
	} else {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return value, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
		}
		in = os.Stdin
	}

	if err := json.NewDecoder(in).Decode(&value); err != nil {
		return value, fmt.Errorf("decode JSON: %w", err)
	}

	return value, nil
}
