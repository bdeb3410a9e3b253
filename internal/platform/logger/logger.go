package logger

import (
	"log/slog"
	"os"
)

// New returns the process-wide structured logger. Debug mode lowers the
// level so the request pipeline's per-call lines become visible.
func New(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
