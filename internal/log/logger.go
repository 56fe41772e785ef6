// Package log provides a thin component-scoped wrapper over log/slog.
package log

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with a component attribute carried on every
// record.
type Logger struct {
	*slog.Logger
	component string
}

// New creates a Logger writing text records to stderr at the given level.
func New(level slog.Level, component string) *Logger {
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return &Logger{
		Logger:    slog.New(h).With("component", component),
		component: component,
	}
}

// NewWithHandler creates a Logger on an explicit handler; tests use this
// to capture output.
func NewWithHandler(h slog.Handler, component string) *Logger {
	return &Logger{
		Logger:    slog.New(h).With("component", component),
		component: component,
	}
}

// Discard returns a Logger that drops every record.
func Discard() *Logger {
	return NewWithHandler(slog.NewTextHandler(discardWriter{}, &slog.HandlerOptions{Level: slog.LevelError + 1}), "discard")
}

// WithComponent returns a Logger scoped to a different component.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{
		Logger:    l.Logger.With("component", component),
		component: component,
	}
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
