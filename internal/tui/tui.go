package tui

import (
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures the interactive calendar.
type Options struct {
	// Now is the clock; nil means time.Now. "Today" is derived from it.
	Now func() time.Time
	// YearSpan is how many years the year picker shows.
	YearSpan int
	// Theme (light|dark|auto) and Glyphs (unicode|ascii) come from config;
	// CALENDAR_TUI_THEME / CALENDAR_TUI_GLYPHS override them.
	Theme  string
	Glyphs string
	Logger *slog.Logger
}

func Run(opts Options) error {
	applyColorProfilePreference()
	applyThemePreference(opts.Theme)
	applyGlyphPreference(opts.Glyphs)

	if opts.Logger == nil {
		logger, closeLog, err := newDebugLogger(os.Getenv("CALENDAR_TUI_DEBUG_LOG"))
		if err != nil {
			return err
		}
		defer func() { _ = closeLog() }()
		opts.Logger = logger
	}

	m := newAppModel(opts)
	opts.Logger.Info("start", "year", m.sel.Year, "month", m.sel.Month, "yearSpan", m.yearSpan)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
