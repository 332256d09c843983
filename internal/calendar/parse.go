package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	reYearMonth = regexp.MustCompile(`^(-?\d{1,6})-(\d{1,2})$`)
	reDate      = regexp.MustCompile(`^(-?\d{1,6})-(\d{1,2})-(\d{1,2})$`)
)

// IsYearMonth reports whether s looks like YYYY-MM.
func IsYearMonth(s string) bool {
	return reYearMonth.MatchString(strings.TrimSpace(s))
}

// ParseYearMonth parses "YYYY-MM" into a Selection.
func ParseYearMonth(s string) (Selection, error) {
	s = strings.TrimSpace(s)
	m := reYearMonth.FindStringSubmatch(s)
	if m == nil {
		return Selection{}, fmt.Errorf("invalid year-month %q (expected YYYY-MM)", s)
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	if mo < 1 || mo > 12 {
		return Selection{}, fmt.Errorf("invalid year-month %q: month %d: %w", s, mo, ErrOutOfRange)
	}
	return Selection{Year: y, Month: mo}, nil
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	m := reDate.FindStringSubmatch(s)
	if m == nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	y, _ := strconv.Atoi(m[1])
	mo, _ := strconv.Atoi(m[2])
	d, _ := strconv.Atoi(m[3])
	if mo < 1 || mo > 12 {
		return Date{}, fmt.Errorf("invalid date %q: month %d: %w", s, mo, ErrOutOfRange)
	}
	if d < 1 || d > DaysInMonth(y, mo) {
		return Date{}, fmt.Errorf("invalid date %q: day %d: %w", s, d, ErrOutOfRange)
	}
	return Date{Year: y, Month: mo, Day: d}, nil
}
