package tzlocal

import (
	"fmt"

	"github.com/nvoss/ticktz/civil"
	"github.com/nvoss/ticktz/ticks"
)

// Converter resolves UTC instants to local time, selecting the rule
// set for the instant's civil year and probing adjacent years when
// the instant sits on a year boundary.
type Converter struct {
	Provider Provider
	Clock    ticks.Clock
}

// NewConverter returns a Converter reading rule sets from p and the
// current time from the system clock.
func NewConverter(p Provider) *Converter {
	return &Converter{Provider: p, Clock: ticks.SystemClock{}}
}

// Convert resolves a UTC tick timestamp to local time.
func (c *Converter) Convert(utc ticks.Ticks) (Resolved, error) {
	ct, err := civil.FromTicks(utc)
	if err != nil {
		return Resolved{}, err
	}
	return c.ConvertCivil(ct)
}

// Now resolves the clock's current instant to local time.
func (c *Converter) Now() (Resolved, error) {
	return c.Convert(c.Clock.Now())
}

// ConvertCivil resolves a UTC calendar time to local time.
//
// For most instants the rule set of the instant's own civil year is
// used in strict mode. On January 1 the local time may still fall in
// the prior year, so the previous year's rule set is tried first in
// strict mode, with the current year's as a relaxed fallback. On
// December 31 the symmetric ladder applies with the next year's rule
// set. Provider errors are propagated unchanged; if every attempted
// rule set fails to resolve, ErrUnresolvable is returned.
func (c *Converter) ConvertCivil(utc civil.Time) (Resolved, error) {
	if !utc.Valid() {
		return Resolved{}, fmt.Errorf("%w: %+v", civil.ErrInvalidTime, utc)
	}

	var providerErr error
	try := func(year int, strict bool) (Resolved, bool) {
		set, err := c.Provider.RulesForYear(year)
		if err != nil {
			providerErr = err
			return Resolved{}, false
		}
		res, err := Resolve(set, utc, year, strict)
		if err != nil {
			return Resolved{}, false
		}
		return res, true
	}

	if utc.Month == 1 && utc.Day == 1 {
		// Local time west of the date line may still be in the
		// prior year.
		if res, ok := try(utc.Year-1, true); ok {
			return res, nil
		}
		if res, ok := try(utc.Year, false); ok {
			return res, nil
		}
	} else {
		if res, ok := try(utc.Year, true); ok {
			return res, nil
		}
		if utc.Month == 12 && utc.Day == 31 {
			// Local time ahead of UTC may already be in the
			// next year.
			if res, ok := try(utc.Year+1, false); ok {
				return res, nil
			}
		}
	}

	if providerErr != nil {
		return Resolved{}, providerErr
	}
	return Resolved{}, fmt.Errorf("%w: %04d-%02d-%02d %02d:%02d UTC",
		ErrUnresolvable, utc.Year, utc.Month, utc.Day, utc.Hour, utc.Minute)
}
