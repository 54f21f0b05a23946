// Package epochdays converts between calendar dates and day counts
// relative to 1601-01-01, the epoch of the tick timestamp domain.
// It assumes the proleptic Gregorian calendar and ignores leap seconds.
//
// The cycle decomposition is based on the Go standard library's time
// package, rebased so that day zero is 1601-01-01. The year 1601 opens
// a 400-year Gregorian cycle, which keeps the decomposition exact
// without correction terms.
package epochdays

const (
	daysPer400Years = 365*400 + 97
	daysPer100Years = 365*100 + 24
	daysPer4Years   = 365*4 + 1

	// EpochYear is the calendar year of day zero.
	EpochYear = 1601
)

// daysBefore[m] counts the number of days in a non-leap year before
// month m+1. daysBefore[12] is the length of a non-leap year.
var daysBefore = [13]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// leapsBefore counts leap years in [EpochYear, year).
func leapsBefore(year int) int {
	f := func(y int) int { return y/4 - y/100 + y/400 }
	return f(year-1) - f(EpochYear-1)
}

// FromDate returns the number of days from 1601-01-01 to the given
// date. The date is not validated; callers validate first.
func FromDate(year, month, day int) int64 {
	d := int64(year-EpochYear)*365 + int64(leapsBefore(year))
	d += int64(daysBefore[month-1])
	if month > 2 && isLeap(year) {
		d++
	}
	return d + int64(day) - 1
}

// ToDate is the inverse of FromDate. days must be non-negative.
func ToDate(days int64) (year, month, day int) {
	d := days

	// 400-year cycles since the epoch.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// 100-year cycles within the 400-year cycle. The fourth century
	// of the cycle is one day longer, so cap n at 3.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// 4-year cycles within the century.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Years within the 4-year cycle. The fourth year is one day
	// longer, so cap n at 3.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(y) + EpochYear
	yday := int(d)

	if isLeap(year) {
		switch {
		case yday == 59: // Feb 29
			return year, 2, 29
		case yday > 59:
			yday--
		}
	}

	month = 1
	for daysBefore[month] <= yday {
		month++
	}
	day = yday - daysBefore[month-1] + 1
	return year, month, day
}
