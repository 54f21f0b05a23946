// Package civil implements calendar time values and the validation
// rules of the supported calendar: proleptic Gregorian dates between
// the years 1601 and 30827, with millisecond resolution.
package civil

import (
	"errors"
	"fmt"
)

const (
	// MinYear and MaxYear bound the supported calendar span.
	MinYear = 1601
	MaxYear = 30827
)

// ErrInvalidTime reports a calendar time with a nonexistent date,
// out-of-range fields, or an inconsistent weekday.
var ErrInvalidTime = errors.New("civil: invalid calendar time")

// Weekday numbers the days of a week, Sunday first.
type Weekday int

// Days of the week.
const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

func (d Weekday) String() string {
	if d < Sunday || d > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return dayNames[d]
}

// Time is a calendar time. All fields are plain integers; a Time is
// only meaningful once it passes Valid or ValidIgnoringWeekday.
type Time struct {
	Year        int
	Month       int
	Day         int
	Hour        int
	Minute      int
	Second      int
	Millisecond int
	Weekday     Weekday
}

// String renders all fields, one per line.
func (t Time) String() string {
	return fmt.Sprintf("year: %d\nmonth: %d\nday: %d\nweekday: %d\nhour: %d\nminute: %d\nsecond: %d\nmillisecond: %d",
		t.Year, t.Month, t.Day, t.Weekday, t.Hour, t.Minute, t.Second, t.Millisecond)
}

// IsYearValid reports whether year is within the supported span.
func IsYearValid(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// IsLeapYear reports whether year is a Gregorian leap year. It is
// defined for all years and performs no range check.
func IsLeapYear(year int) bool {
	switch {
	case year%400 == 0:
		return true
	case year%100 == 0:
		return false
	case year%4 == 0:
		return true
	default:
		return false
	}
}

// daysInMonth[m-1] is the length of month m in a non-leap year.
var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth returns the number of days in the given month and year.
// month must be in [1, 12].
func DaysInMonth(month, year int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysInMonth[month-1]
}

// IsDateValid reports whether (day, month, year) is a date that
// exists within the supported calendar span.
func IsDateValid(day, month, year int) bool {
	if !IsYearValid(year) || month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	return day <= daysInMonth[month-1] ||
		(day == 29 && month == 2 && IsLeapYear(year))
}

// DayOfWeek computes the weekday of a date using Sakamoto's method.
// It is defined only for month in [1, 12]; for other months it
// returns a value in range whose meaning is unspecified.
func DayOfWeek(day, month, year int) Weekday {
	if month < 1 || month > 12 {
		return 0
	}
	t := [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}
	y := year
	if month < 3 {
		y--
	}
	return Weekday((y + y/4 - y/100 + y/400 + t[month-1] + day) % 7)
}

// ValidIgnoringWeekday reports whether t is a valid point in time,
// disregarding the Weekday field. Transition-rule computations leave
// Weekday unset until it can be derived, so they validate in this
// relaxed mode.
func (t Time) ValidIgnoringWeekday() bool {
	return IsDateValid(t.Day, t.Month, t.Year) &&
		t.Hour >= 0 && t.Hour <= 23 &&
		t.Minute >= 0 && t.Minute <= 59 &&
		t.Second >= 0 && t.Second <= 59 &&
		t.Millisecond >= 0 && t.Millisecond <= 999
}

// Valid reports whether t is a valid point in time and its Weekday
// field matches the weekday computed from the date.
func (t Time) Valid() bool {
	return t.ValidIgnoringWeekday() &&
		t.Weekday == DayOfWeek(t.Day, t.Month, t.Year)
}

// YearDay returns the day of the year of t, 1-based. The result is
// meaningful only for a relaxed-valid t.
func (t Time) YearDay() int {
	acc := [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
	yd := acc[t.Month-1] + t.Day
	if t.Month > 2 && IsLeapYear(t.Year) {
		yd++
	}
	return yd
}

// CompareIgnoringWeekday orders a and b lexicographically over
// (year, month, day, hour, minute, second, millisecond), returning
// -1, 0 or 1.
func CompareIgnoringWeekday(a, b Time) int {
	fields := [][2]int{
		{a.Year, b.Year},
		{a.Month, b.Month},
		{a.Day, b.Day},
		{a.Hour, b.Hour},
		{a.Minute, b.Minute},
		{a.Second, b.Second},
		{a.Millisecond, b.Millisecond},
	}
	for _, f := range fields {
		if f[0] < f[1] {
			return -1
		}
		if f[0] > f[1] {
			return 1
		}
	}
	return 0
}

// Compare orders a and b like CompareIgnoringWeekday, breaking ties
// on the Weekday field.
func Compare(a, b Time) int {
	if c := CompareIgnoringWeekday(a, b); c != 0 {
		return c
	}
	if a.Weekday < b.Weekday {
		return -1
	}
	if a.Weekday > b.Weekday {
		return 1
	}
	return 0
}
