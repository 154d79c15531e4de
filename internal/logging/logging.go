// Package logging builds the slog loggers used by the tripods command.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// levelSilent is above every standard level and suppresses all output.
const levelSilent = slog.Level(100)

// NewLogger creates a text slog.Logger writing to w at the given level.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewDiscardLogger creates a logger that discards all output.
// Useful for tests or when logging should be completely suppressed.
func NewDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: levelSilent}))
}

// LevelFromString converts a string to a slog.Level.
// Supports: debug, info, warn, error (case-insensitive).
// Returns slog.LevelWarn for unrecognized strings.
func LevelFromString(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// LevelFromVerbosity converts the CLI -v count to a slog.Level.
// - verbosity=0: fallback
// - verbosity=1: info
// - verbosity>=2: debug
func LevelFromVerbosity(verbosity int, fallback slog.Level) slog.Level {
	switch verbosity {
	case 0:
		return fallback
	case 1:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
