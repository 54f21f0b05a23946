// Package tzrule implements timezone transition rules and their
// conversion between relative form ("nth occurrence of a weekday in a
// month") and absolute calendar dates for a specific year.
package tzrule

import (
	"errors"
	"fmt"

	"github.com/nvoss/ticktz/civil"
)

// ErrInvalidRule reports a transition rule that is neither a valid
// relative rule, a valid absolute rule, nor the ignored sentinel.
var ErrInvalidRule = errors.New("tzrule: invalid transition rule")

// LastOccurrence is the occurrence index that selects the final
// occurrence of the weekday within the month, whether or not the
// weekday occurs five times.
const LastOccurrence = 5

// Rule describes a timezone transition.
//
// A rule is relative when Year is zero: Day holds the occurrence of
// Weekday within Month, in [1, 5], where 5 selects the last
// occurrence. A rule is absolute when Year is non-zero: Day is a
// plain day of the month and Weekday is derived, not stored.
//
// The zero value (Month == 0) is the "not observed" sentinel used by
// rule sets that disable a transition.
type Rule struct {
	Year        int
	Month       int
	Day         int
	Weekday     civil.Weekday
	Hour        int
	Minute      int
	Second      int
	Millisecond int
}

// IsIgnored reports whether r is the "not observed" sentinel.
func (r Rule) IsIgnored() bool {
	return r.Month == 0
}

// IsRelativeValid reports whether r is a well-formed relative rule.
func (r Rule) IsRelativeValid() bool {
	return r.Year == 0 &&
		r.Month >= 1 && r.Month <= 12 &&
		r.Weekday >= civil.Sunday && r.Weekday <= civil.Saturday &&
		r.Day >= 1 && r.Day <= LastOccurrence &&
		r.Hour >= 0 && r.Hour <= 23 &&
		r.Minute >= 0 && r.Minute <= 59 &&
		r.Second >= 0 && r.Second <= 59 &&
		r.Millisecond >= 0 && r.Millisecond <= 999
}

// IsAbsoluteValid reports whether r is a well-formed absolute rule,
// i.e. a relaxed-valid calendar time.
func (r Rule) IsAbsoluteValid() bool {
	return r.time().ValidIgnoringWeekday()
}

// IsValid reports whether r is valid in either form.
func (r Rule) IsValid() bool {
	return r.IsRelativeValid() || r.IsAbsoluteValid()
}

func (r Rule) time() civil.Time {
	return civil.Time{
		Year:        r.Year,
		Month:       r.Month,
		Day:         r.Day,
		Weekday:     r.Weekday,
		Hour:        r.Hour,
		Minute:      r.Minute,
		Second:      r.Second,
		Millisecond: r.Millisecond,
	}
}

// FromAbsolute converts an absolute local time to a relative rule.
//
// The occurrence index is ceil(day/7), in [1, 5]. If the index is 4,
// the date is the final occurrence of its weekday in the month, and
// preferLast is set, the index is promoted to LastOccurrence. An
// occurrence of 5 is never produced any other way.
func FromAbsolute(local civil.Time, preferLast bool) (Rule, error) {
	if !local.ValidIgnoringWeekday() {
		return Rule{}, fmt.Errorf("%w: %+v", civil.ErrInvalidTime, local)
	}

	occurrence := (local.Day-1)/7 + 1
	if occurrence == 4 && preferLast &&
		!civil.IsDateValid(local.Day+7, local.Month, local.Year) {
		occurrence = LastOccurrence
	}

	return Rule{
		Month:       local.Month,
		Day:         occurrence,
		Weekday:     civil.DayOfWeek(local.Day, local.Month, local.Year),
		Hour:        local.Hour,
		Minute:      local.Minute,
		Second:      local.Second,
		Millisecond: local.Millisecond,
	}, nil
}

// Absolute converts r to an absolute local time in the given year.
//
// A relative rule is expanded by locating the requested occurrence of
// its weekday; when the fifth occurrence does not exist, the result
// falls back to the fourth. An absolute rule is copied with its
// weekday recomputed, ignoring year.
func (r Rule) Absolute(year int) (civil.Time, error) {
	if !r.IsRelativeValid() {
		if r.IsAbsoluteValid() {
			local := r.time()
			local.Weekday = civil.DayOfWeek(local.Day, local.Month, local.Year)
			return local, nil
		}
		return civil.Time{}, fmt.Errorf("%w: %+v", ErrInvalidRule, r)
	}
	if !civil.IsYearValid(year) {
		return civil.Time{}, fmt.Errorf("%w: year %d", ErrInvalidRule, year)
	}

	// Weekday of the first day of the month. [0=Sun, 6=Sat]
	first := civil.DayOfWeek(1, r.Month, year)

	// Days after the first occurrence of the target weekday. [0, 28]
	afterFirst := (r.Day - 1) * 7

	var day int
	if first <= r.Weekday {
		day = int(r.Weekday-first) + 1 + afterFirst
	} else {
		day = int(civil.Saturday-first) + 1 + int(r.Weekday) + 1 + afterFirst
	}

	// A weekday occurs 4 or 5 times in any month. If the requested
	// occurrence ran past the end of the month, step back a week to
	// the final occurrence.
	if !civil.IsDateValid(day, r.Month, year) {
		day -= 7
	}

	local := r.time()
	local.Year = year
	local.Day = day
	return local, nil
}

// CompareLocal orders a local time against the transition boundary r
// describes within local's year, returning -1, 0 or 1. The weekday
// field does not participate.
func (r Rule) CompareLocal(local civil.Time) (int, error) {
	boundary, err := r.Absolute(local.Year)
	if err != nil {
		return 0, err
	}
	return civil.CompareIgnoringWeekday(local, boundary), nil
}
