// Package logging sets up the JSON log file. The terminal belongs to the
// UI, so nothing is ever logged to stdout.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Logger is an slog logger bound to a log file.
type Logger struct {
	*slog.Logger
	file  *os.File
	level *slog.LevelVar
}

// Open creates (or appends to) the log file at path.
func Open(path string, rawLevel string) (*Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	l := newLogger(f, rawLevel)
	l.file = f
	return l, nil
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return newLogger(io.Discard, "error")
}

func newLogger(w io.Writer, rawLevel string) *Logger {
	levelVar := &slog.LevelVar{}
	levelVar.Set(ParseLevel(rawLevel))

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     levelVar,
		AddSource: false,
	})
	return &Logger{
		Logger: slog.New(handler),
		level:  levelVar,
	}
}

// SetLevel changes the minimum level at runtime.
func (l *Logger) SetLevel(rawLevel string) {
	l.level.Set(ParseLevel(rawLevel))
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// ParseLevel maps a config string to a level; unknown values mean info.
func ParseLevel(rawLevel string) slog.Level {
	switch strings.ToLower(rawLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
