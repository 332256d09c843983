package cli

import (
	"strconv"

	"calendar-cli/internal/calendar"

	"github.com/spf13/cobra"
)

type gridOut struct {
	Year         int               `json:"year"`
	Month        int               `json:"month"`
	MonthName    string            `json:"monthName"`
	DaysInMonth  int               `json:"daysInMonth"`
	FirstWeekday int               `json:"firstWeekday"`
	Weekdays     []string          `json:"weekdays"`
	Today        calendar.Date     `json:"today"`
	Cells        []calendar.Cell   `json:"cells"`
	Weeks        [][]calendar.Cell `json:"weeks"`
}

func buildGridOut(sel calendar.Selection, today calendar.Date) (gridOut, error) {
	name, err := calendar.MonthName(sel.Month)
	if err != nil {
		return gridOut{}, err
	}
	cells := sel.Grid(today)
	return gridOut{
		Year:         sel.Year,
		Month:        sel.Month,
		MonthName:    name,
		DaysInMonth:  calendar.DaysInMonth(sel.Year, sel.Month),
		FirstWeekday: calendar.FirstWeekdayIndex(sel.Year, sel.Month),
		Weekdays:     calendar.WeekdayNames(),
		Today:        today,
		Cells:        cells,
		Weeks:        calendar.Weeks(cells),
	}, nil
}

func newGridCmd(app *App) *cobra.Command {
	var year, month int

	cmd := &cobra.Command{
		Use:   "grid [YYYY-MM]",
		Short: "Print the day grid of a month (default: this month)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			today, err := app.todayDate()
			if err != nil {
				return writeErr(cmd, err)
			}
			sel := calendar.JumpToToday(today)
			if len(args) == 1 {
				sel, err = calendar.ParseYearMonth(args[0])
				if err != nil {
					return writeErr(cmd, err)
				}
			}
			if cmd.Flags().Changed("year") {
				sel.SelectYear(year)
			}
			if cmd.Flags().Changed("month") {
				if month < 1 || month > 12 {
					return writeErr(cmd, errInvalidArg("--month", strconv.Itoa(month), "expected 1..12", calendar.ErrOutOfRange))
				}
				sel.SelectMonth(month)
			}

			out, err := buildGridOut(sel, today)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, envelope(out))
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (overrides YYYY-MM)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1..12 (overrides YYYY-MM)")

	return cmd
}
