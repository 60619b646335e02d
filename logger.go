package fockspace

import (
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with fockspace-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewWriterLogger(os.Stderr, level)
}

// NewWriterLogger creates a text Logger writing to w.
func NewWriterLogger(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSites adds a num_sites field to the logger.
func (l *Logger) WithSites(numSites int) *Logger {
	return &Logger{
		Logger: l.Logger.With("num_sites", numSites),
	}
}

// WithFillings adds n_up and n_dn fields to the logger.
func (l *Logger) WithFillings(f Fillings) *Logger {
	return &Logger{
		Logger: l.Logger.With("n_up", f.Up, "n_dn", f.Dn),
	}
}

// LogInit logs a basis (re)initialization.
func (l *Logger) LogInit(numSites, numStates int, duration time.Duration, err error) {
	if err != nil {
		l.Error("basis init failed",
			"num_sites", numSites,
			"error", err,
		)
	} else {
		l.Info("basis initialized",
			"num_sites", numSites,
			"num_spin_states", numStates,
			"duration", duration,
		)
	}
}

// LogSector logs the construction of a basis sector.
func (l *Logger) LogSector(f Fillings, size int) {
	l.Debug("sector built",
		"n_up", f.Up,
		"n_dn", f.Dn,
		"size", size,
	)
}
