// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Options selects where logs go.
type Options struct {
	// File receives JSON lines when set. It takes precedence over Console.
	File string
	// Console writes human-readable lines to stderr.
	Console bool
	Level   string
}

// Setup points log.Logger at the configured output and returns a closer for
// any opened file. With neither File nor Console set, logs are discarded:
// the TUI owns the terminal.
func Setup(opts Options) (io.Closer, error) {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil || opts.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	var (
		output io.Writer = io.Discard
		closer io.Closer = nopCloser{}
	)

	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return closer, fmt.Errorf("creating log dir: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o600)
		if err != nil {
			return closer, fmt.Errorf("opening log file: %w", err)
		}
		output, closer = f, f
	case opts.Console:
		output = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
