package calendar

import (
	"errors"
	"fmt"
)

var monthNames = [12]string{
	"Январь",
	"Февраль",
	"Март",
	"Апрель",
	"Май",
	"Июнь",
	"Июль",
	"Август",
	"Сентябрь",
	"Октябрь",
	"Ноябрь",
	"Декабрь",
}

// Sunday first, matching FirstWeekdayIndex.
var weekdayNames = [7]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

// ErrOutOfRange is matched (errors.Is) by every *OutOfRangeError.
var ErrOutOfRange = errors.New("out of range")

type OutOfRangeError struct {
	Index int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("month index %d out of range [1,12]", e.Index)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// MonthName returns the name of month index (1 = January).
func MonthName(index int) (string, error) {
	if index < 1 || index > 12 {
		return "", &OutOfRangeError{Index: index}
	}
	return monthNames[index-1], nil
}

// MonthNames returns a copy of the month table, January first.
func MonthNames() []string {
	out := make([]string, len(monthNames))
	copy(out, monthNames[:])
	return out
}

// WeekdayNames returns short weekday labels, Sunday first.
func WeekdayNames() []string {
	out := make([]string, len(weekdayNames))
	copy(out, weekdayNames[:])
	return out
}
