package calendar

import (
	"fmt"
	"strconv"
	"strings"
)

// Selection is the year/month currently on screen.
//
// Methods keep Month within 1-12: SelectMonth clamps, StepMonth carries into
// the adjacent year.
type Selection struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
}

// JumpToToday returns the selection showing today's month.
func JumpToToday(today Date) Selection {
	return Selection{Year: today.Year, Month: today.Month}
}

// SelectYear replaces the year and keeps the month.
func (s *Selection) SelectYear(year int) {
	s.Year = year
}

// SelectMonth replaces the month, clamped to 1-12.
func (s *Selection) SelectMonth(month int) {
	s.Month = min(max(month, 1), 12)
}

// StepMonth moves delta months forward (or back), wrapping across years.
//
// Whole years are carried separately so large years do not overflow.
func (s *Selection) StepMonth(delta int) {
	m := s.Month - 1 + delta%12
	s.Year += delta/12 + floorDiv(m, 12)
	s.Month = floorMod(m, 12) + 1
}

// StepYear moves delta years and keeps the month.
func (s *Selection) StepYear(delta int) {
	s.Year += delta
}

// Valid reports whether Month is within 1-12.
func (s Selection) Valid() bool {
	return s.Month >= 1 && s.Month <= 12
}

// Grid is shorthand for BuildGrid(s.Year, s.Month, today).
func (s Selection) Grid(today Date) []Cell {
	return BuildGrid(s.Year, s.Month, today)
}

// String renders YYYY-MM; negative years keep four digits after the sign
// ("-0044-03"), which ParseYearMonth reads back.
func (s Selection) String() string {
	y := strconv.Itoa(s.Year)
	sign := ""
	if strings.HasPrefix(y, "-") {
		sign, y = "-", y[1:]
	}
	if len(y) < 4 {
		y = strings.Repeat("0", 4-len(y)) + y
	}
	return fmt.Sprintf("%s%s-%02d", sign, y, s.Month)
}
