package cli

import (
	"calendar-cli/internal/calendar"

	"github.com/spf13/cobra"
)

func newTodayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Print today's date and the month selection it jumps to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := app.todayDate()
			if err != nil {
				return writeErr(cmd, err)
			}
			sel := calendar.JumpToToday(today)
			name, err := calendar.MonthName(sel.Month)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, envelope(map[string]any{
				"today":     today,
				"selection": sel,
				"monthName": name,
			}))
		},
	}
}
