package cli

import (
	"strconv"

	"calendar-cli/internal/calendar"

	"github.com/spf13/cobra"
)

func newDaysCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "days <year> <month>",
		Short: "Print the number of days in a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := strconv.Atoi(args[0])
			if err != nil {
				return writeErr(cmd, errInvalidArg("year", args[0], "expected an integer", err))
			}
			m, err := strconv.Atoi(args[1])
			if err != nil {
				return writeErr(cmd, errInvalidArg("month", args[1], "expected an integer", err))
			}
			if m < 1 || m > 12 {
				return writeErr(cmd, errInvalidArg("month", args[1], "expected 1..12", calendar.ErrOutOfRange))
			}
			return writeOut(cmd, app, envelope(map[string]any{
				"year":         y,
				"month":        m,
				"days":         calendar.DaysInMonth(y, m),
				"leapYear":     calendar.IsLeapYear(y),
				"firstWeekday": calendar.FirstWeekdayIndex(y, m),
			}))
		},
	}
}
