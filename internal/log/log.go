// Package log provides structured logging for hunter.
// It wraps slog with sensible defaults for the game and headless runs.
package log

import (
	"io"
	"log/slog"
	"os"
	"sync"
)

var (
	logger *slog.Logger
	mu     sync.Mutex
	level  = new(slog.LevelVar)
)

// ParseLevel maps "debug", "info", "warn", "error" to a slog level.
// Anything else is info.
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

// Init initializes the global logger with the specified level, writing
// to stdout.
func Init(lvl string) {
	SetOutput(os.Stdout, lvl)
}

// SetOutput replaces the global logger, writing to w at the given level
func SetOutput(w io.Writer, lvl string) {
	mu.Lock()
	defer mu.Unlock()

	level.Set(ParseLevel(lvl))
	opts := &slog.HandlerOptions{Level: level}

	// Use JSON in production, text in development
	if os.Getenv("GO_ENV") == "production" {
		logger = slog.New(slog.NewJSONHandler(w, opts))
	} else {
		logger = slog.New(slog.NewTextHandler(w, opts))
	}
}

// Discard silences all logging (tests)
func Discard() {
	SetOutput(io.Discard, "error")
}

// L returns the global logger instance.
func L() *slog.Logger {
	mu.Lock()
	l := logger
	mu.Unlock()
	if l == nil {
		Init("info")
		return L()
	}
	return l
}

// Debug logs at debug level.
func Debug(msg string, args ...any) {
	L().Debug(msg, args...)
}

// Info logs at info level.
func Info(msg string, args ...any) {
	L().Info(msg, args...)
}

// Warn logs at warn level.
func Warn(msg string, args ...any) {
	L().Warn(msg, args...)
}

// Error logs at error level.
func Error(msg string, args ...any) {
	L().Error(msg, args...)
}

// With returns a logger with the given attributes.
func With(args ...any) *slog.Logger {
	return L().With(args...)
}
