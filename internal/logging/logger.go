// Package logging builds the structured logger used by the justify command.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger creates a text logger writing to w.
// The level is debug when verbose is set or LOG_LEVEL=debug, info otherwise.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: Level(verbose),
	}))
}

// Level resolves the log level from the verbose flag and LOG_LEVEL.
func Level(verbose bool) slog.Level {
	if verbose || os.Getenv("LOG_LEVEL") == "debug" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
