// Package calendar computes month grids for a proleptic Gregorian calendar.
//
// Everything here is a pure function of its arguments. "Today" is always
// passed in by the caller; nothing in this package reads the clock.
package calendar

import "time"

// Date is a plain calendar date (no time of day, no location).
type Date struct {
	Year  int `json:"year" yaml:"year"`
	Month int `json:"month" yaml:"month"`
	Day   int `json:"day" yaml:"day"`
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// Cell is one unit of a month grid. Day == 0 marks leading padding.
type Cell struct {
	Day   int  `json:"day" yaml:"day"`
	Today bool `json:"today,omitempty" yaml:"today,omitempty"`
}

// Blank reports whether the cell is padding before the 1st.
func (c Cell) Blank() bool { return c.Day == 0 }

// IsLeapYear reports whether year has a February 29th.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month (1-12) of year.
// A month outside 1-12 is a caller error.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// FirstWeekdayIndex returns the weekday of the 1st of month, 0 = Sunday.
func FirstWeekdayIndex(year, month int) int {
	// 1970-01-01 was a Thursday.
	return floorMod(daysFromCivil(year, month, 1)+4, 7)
}

// daysFromCivil counts days since 1970-01-01. It uses floor division so it
// stays correct for years before 0 and outside the range of time.Time.
func daysFromCivil(y, m, d int) int {
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// BuildGrid returns the month laid out for display: FirstWeekdayIndex blank
// cells followed by one cell per day. At most one cell is flagged as today.
func BuildGrid(year, month int, today Date) []Cell {
	blanks := FirstWeekdayIndex(year, month)
	days := DaysInMonth(year, month)
	cells := make([]Cell, 0, blanks+days)
	for i := 0; i < blanks; i++ {
		cells = append(cells, Cell{})
	}
	sameMonth := year == today.Year && month == today.Month
	for day := 1; day <= days; day++ {
		cells = append(cells, Cell{Day: day, Today: sameMonth && day == today.Day})
	}
	return cells
}

// Weeks splits a grid into rows of seven. The last row is padded with blanks.
func Weeks(cells []Cell) [][]Cell {
	var rows [][]Cell
	for start := 0; start < len(cells); start += 7 {
		row := make([]Cell, 7)
		copy(row, cells[start:min(start+7, len(cells))])
		rows = append(rows, row)
	}
	return rows
}

// YearRange returns span consecutive years in ascending order starting at
// center-span/2, so a span of 10 around 2024 is 2019..2028.
func YearRange(center, span int) []int {
	if span <= 0 {
		return []int{}
	}
	start := center - span/2
	years := make([]int, span)
	for i := range years {
		years[i] = start + i
	}
	return years
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
