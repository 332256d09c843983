package cli

import (
	"strconv"

	"calendar-cli/internal/calendar"

	"github.com/spf13/cobra"
)

type monthOut struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

func newMonthsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "months [index]",
		Short: "Print month names (1 = January)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				idx, err := strconv.Atoi(args[0])
				if err != nil {
					return writeErr(cmd, errInvalidArg("month index", args[0], "expected an integer", err))
				}
				name, err := calendar.MonthName(idx)
				if err != nil {
					return writeErr(cmd, err)
				}
				return writeOut(cmd, app, envelope(monthOut{Index: idx, Name: name}))
			}

			names := calendar.MonthNames()
			out := make([]monthOut, 0, len(names))
			for i, name := range names {
				out = append(out, monthOut{Index: i + 1, Name: name})
			}
			return writeOut(cmd, app, envelope(out))
		},
	}
}
