package main

import (
	"os"
	"strings"

	"calendar-cli/internal/calendar"
	"calendar-cli/internal/cli"
)

// rewriteYearMonthArgs turns `calendar 2024-03` into `calendar grid 2024-03`.
//
// Cobra treats the first non-flag token as a subcommand, so argv is rewritten
// before parsing. Persistent flags may come first (`calendar --format edn 2024-03`),
// so we look for the first positional token rather than argv[1]. Negative
// years need `calendar -- -44-03`.
func rewriteYearMonthArgs(argv []string) []string {
	if len(argv) < 2 {
		return argv
	}

	valueFlags := map[string]bool{
		"--format": true,
		"--today":  true,
	}
	boolFlags := map[string]bool{
		"--pretty": true,
	}

	insertGrid := func(at int) []string {
		out := make([]string, 0, len(argv)+1)
		out = append(out, argv[:at]...)
		out = append(out, "grid")
		out = append(out, argv[at:]...)
		return out
	}

	for i := 1; i < len(argv); i++ {
		a := strings.TrimSpace(argv[i])
		if a == "" {
			continue
		}
		if a == "--" {
			// Cobra stops resolving subcommands at "--", so grid goes in front of it.
			if i+1 < len(argv) && calendar.IsYearMonth(argv[i+1]) {
				return insertGrid(i)
			}
			return argv
		}

		if strings.HasPrefix(a, "-") {
			// A negative year looks like a flag; only a full YYYY-MM match counts.
			if calendar.IsYearMonth(a) {
				return argv
			}
			if strings.Contains(a, "=") || boolFlags[a] {
				continue
			}
			if valueFlags[a] {
				i++
			}
			continue
		}

		if calendar.IsYearMonth(a) {
			return insertGrid(i)
		}
		return argv
	}

	return argv
}

func main() {
	os.Args = rewriteYearMonthArgs(os.Args)

	cmd := cli.NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
