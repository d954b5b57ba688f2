package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// NewLogger returns a text logger on stderr. The level comes from LOG_LEVEL
// (debug, info, warn/warning, error) and defaults to info.
func NewLogger() *slog.Logger {
	return New(os.Stderr, os.Getenv("LOG_LEVEL"))
}

// New builds a logger writing to w at the named level.
func New(w io.Writer, level string) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(h)
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// Scope tags log lines with the component that emitted them.
func Scope(name string) slog.Attr {
	return slog.String("scope", name)
}

func Error(err error) slog.Attr {
	return slog.Any("error", err)
}
