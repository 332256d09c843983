package cli

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"calendar-cli/internal/calendar"
	"calendar-cli/internal/format"
	"calendar-cli/internal/store"
	"calendar-cli/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	PrettyJSON bool
	Format     string
	// Today pins "today" (YYYY-MM-DD); empty means the system clock.
	Today string

	now func() time.Time
}

func NewRootCmd() *cobra.Command {
	app := &App{now: time.Now}

	cmd := &cobra.Command{
		Use:          "calendar",
		Short:        "Month calendar (TUI + scriptable CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive calendar
  calendar

  # Print a month grid
  calendar grid 2024-02

  # Shortcut for: calendar grid 2024-02
  calendar 2024-02

  # Pin "today" for reproducible output
  calendar --today 2024-01-15 grid
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if !slices.Contains(format.Formats, app.Format) && app.Format != "yml" {
			return writeErr(cmd, fmt.Errorf("unknown format: %s (expected one of %v)", app.Format, format.Formats))
		}
		if _, err := app.todayDate(); err != nil {
			return writeErr(cmd, err)
		}
		return nil
	}

	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON/EDN output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("CALENDAR_FORMAT", "json"), "Output format (json|edn|yaml)")
	cmd.PersistentFlags().StringVar(&app.Today, "today", envOr("CALENDAR_TODAY", ""), "Pin today's date (YYYY-MM-DD) instead of reading the clock")

	cmd.AddCommand(newGridCmd(app))
	cmd.AddCommand(newDaysCmd(app))
	cmd.AddCommand(newMonthsCmd(app))
	cmd.AddCommand(newYearsCmd(app))
	cmd.AddCommand(newTodayCmd(app))
	cmd.AddCommand(newDocsCmd(app))
	cmd.AddCommand(newConfigCmd(app))

	return cmd
}

func runTUI(app *App) error {
	// Preferences are best effort in the TUI: a broken config file means defaults.
	cfg, err := store.LoadConfig()
	if err != nil {
		cfg = &store.GlobalConfig{}
	}
	opts := tui.Options{
		Now:      app.clock(),
		YearSpan: cfg.YearSpan(),
	}
	if cfg.TUI != nil {
		opts.Theme = cfg.TUI.Theme
		opts.Glyphs = cfg.TUI.Glyphs
	}
	return tui.Run(opts)
}

// clock returns the time source: the system clock, or the --today date at
// the current wall-clock time of day.
func (app *App) clock() func() time.Time {
	d, err := app.todayDate()
	if err != nil || strings.TrimSpace(app.Today) == "" {
		return app.now
	}
	return func() time.Time {
		t := app.now()
		return time.Date(d.Year, time.Month(d.Month), d.Day, t.Hour(), t.Minute(), t.Second(), 0, t.Location())
	}
}

func (app *App) todayDate() (calendar.Date, error) {
	if strings.TrimSpace(app.Today) == "" {
		return calendar.DateOf(app.now()), nil
	}
	d, err := calendar.ParseDate(app.Today)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("--today: %w", err)
	}
	return d, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

func envelope(data any) map[string]any {
	return map[string]any{"data": data}
}
