// Package logutils configures pal's zerolog output.
package logutils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// New builds the process logger. With a file path it writes JSON log lines
// to that file, creating parent directories and appending across runs;
// with an empty path it writes to stdout. The returned closer releases the
// log file.
//
// level is one of: debug, info, warn, error, fatal.
func New(level, path string) (zerolog.Logger, func(), error) {
	closer := func() {}

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Logger{}, closer, fmt.Errorf("parse log level: %w", err)
	}

	out := io.Writer(os.Stdout)
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("create log dir: %w", err)
		}

		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, closer, fmt.Errorf("open log file: %w", err)
		}
		closer = func() { _ = f.Close() }
		out = f
	}

	logger := zerolog.New(out).With().Timestamp().Logger().Level(lvl)

	return logger, closer, nil
}
