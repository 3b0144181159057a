// Package logging builds the zerolog logger marquee writes to. The TUI owns
// the terminal, so log output always goes to a rotated file.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configure the log sink.
type Options struct {
	Path       string // empty disables logging
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

const (
	defaultMaxSizeMB  = 5
	defaultMaxBackups = 3
	defaultLevel      = zerolog.InfoLevel
)

// New returns a logger writing JSON lines to opts.Path and the closer that
// flushes and releases the file.
func New(opts Options) (zerolog.Logger, io.Closer) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return zerolog.Nop(), nopCloser{}
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups <= 0 {
		maxBackups = defaultMaxBackups
	}
	sink := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
	}

	logger := zerolog.New(sink).
		Level(ParseLevel(opts.Level)).
		With().
		Timestamp().
		Int("pid", os.Getpid()).
		Logger()
	return logger, sink
}

// ParseLevel maps a config value to a zerolog level, defaulting to info.
func ParseLevel(value string) zerolog.Level {
	trimmed := strings.ToLower(strings.TrimSpace(value))
	if trimmed == "" {
		return defaultLevel
	}
	level, err := zerolog.ParseLevel(trimmed)
	if err != nil || level == zerolog.NoLevel {
		return defaultLevel
	}
	return level
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
