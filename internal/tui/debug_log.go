package tui

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// newDebugLogger returns a logger writing to CALENDAR_TUI_DEBUG_LOG, or a
// discarding one. The TUI owns stdout/stderr, so it never logs there.
func newDebugLogger(path string) (*slog.Logger, func() error, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("component", "tui"), f.Close, nil
}
