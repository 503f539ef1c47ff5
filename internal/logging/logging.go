package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

// Options selects the level, format and destination of the logger.
type Options struct {
	// Level is a zerolog level name; unknown or empty values fall back to info.
	Level string
	// Format is "pretty" for console output, anything else writes JSON lines.
	Format string
	// Path appends log records to a file instead of the fallback writer.
	Path string
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Setup builds a logger from opts. Records go to opts.Path when set, otherwise
// to fallback. A nil fallback with no path yields a disabled logger, which is
// what the live UI uses while it owns the terminal.
func Setup(opts Options, fallback io.Writer) (zerolog.Logger, io.Closer, error) {
	var (
		writer io.Writer = fallback
		closer io.Closer = nopCloser{}
		toFile bool
	)
	if opts.Path != "" {
		if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("create log dir: %w", err)
		}
		file, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), nil, fmt.Errorf("open log file: %w", err)
		}
		writer, closer, toFile = file, file, true
	}
	if writer == nil {
		return zerolog.Nop(), closer, nil
	}

	if opts.Format == "pretty" {
		writer = zerolog.ConsoleWriter{
			Out:        writer,
			TimeFormat: time.RFC3339,
			NoColor:    toFile,
		}
	}

	lvl, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		lvl = zerolog.InfoLevel
	}

	log := zerolog.New(writer).
		Level(lvl).
		With().
		Timestamp().
		Logger()
	return log, closer, nil
}
