package cli

import (
	"calendar-cli/internal/calendar"
	"calendar-cli/internal/store"

	"github.com/spf13/cobra"
)

func newYearsCmd(app *App) *cobra.Command {
	var center, span int

	cmd := &cobra.Command{
		Use:   "years",
		Short: "Print the year picker window around a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("center") {
				today, err := app.todayDate()
				if err != nil {
					return writeErr(cmd, err)
				}
				center = today.Year
			}
			if !cmd.Flags().Changed("span") {
				cfg, err := store.LoadConfig()
				if err != nil {
					return writeErr(cmd, err)
				}
				span = cfg.YearSpan()
			}
			return writeOut(cmd, app, envelope(map[string]any{
				"center": center,
				"span":   span,
				"years":  calendar.YearRange(center, span),
			}))
		},
	}

	cmd.Flags().IntVar(&center, "center", 0, "Center year (default: this year)")
	cmd.Flags().IntVar(&span, "span", store.DefaultYearSpan, "Number of years (default: tui.yearSpan from config)")

	return cmd
}
