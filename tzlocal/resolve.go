package tzlocal

import (
	"fmt"

	"github.com/nvoss/ticktz/civil"
)

// Observance classifies the regime a resolved local time falls in.
type Observance int

const (
	// Invalid means resolution failed; the local time is unusable.
	Invalid Observance = iota
	// Standard means standard time applies.
	Standard
	// Daylight means daylight saving time applies.
	Daylight
	// Unknown means the timezone does not observe daylight saving
	// (or observance is disabled); only the base bias applies.
	Unknown
)

func (o Observance) String() string {
	switch o {
	case Invalid:
		return "invalid"
	case Standard:
		return "standard"
	case Daylight:
		return "daylight"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("Observance(%d)", int(o))
	}
}

// Resolved is a local calendar time with the bias that produced it
// and the observance regime it falls in. Values are produced by
// Resolve and Converter only.
type Resolved struct {
	Time        civil.Time
	BiasMinutes int
	Observance  Observance
}

// Resolve converts a UTC instant to local time under the given rule
// set, deciding the applicable observance.
//
// year selects the civil year the rule set's transitions expand in;
// zero means the UTC instant's own year. In strict mode the resolved
// local time must fall in that year, otherwise resolution fails with
// ErrYearMismatch. Strict mode lets callers probe adjacent years'
// rule sets near year boundaries without accepting a wrong match.
//
// utc must be strict-valid. On failure the returned Resolved carries
// the Invalid observance.
func Resolve(set RuleSet, utc civil.Time, year int, strict bool) (Resolved, error) {
	if !utc.Valid() {
		return Resolved{}, fmt.Errorf("%w: %+v", civil.ErrInvalidTime, utc)
	}
	if year == 0 {
		year = utc.Year
	}
	if !civil.IsYearValid(year) {
		return Resolved{}, fmt.Errorf("%w: year %d", civil.ErrInvalidTime, year)
	}

	commit := func(t civil.Time, o Observance, bias int) (Resolved, error) {
		if strict && t.Year != year {
			return Resolved{}, fmt.Errorf("%w: resolved %d, requested %d", ErrYearMismatch, t.Year, year)
		}
		return Resolved{Time: t, BiasMinutes: bias, Observance: o}, nil
	}

	if !set.Valid(true) {
		if !set.BiasesValid() {
			return Resolved{}, fmt.Errorf("%w: base %d, standard %+d, daylight %+d minutes",
				ErrBiasRange, set.BiasMinutes, set.StandardBiasMinutes, set.DaylightBiasMinutes)
		}
		return Resolved{}, fmt.Errorf("%w: %+v", ErrInvalidRuleSet, set)
	}

	// Candidate local times under each bias the rule set can apply.
	baseBias := set.BiasMinutes
	stdBias := set.BiasMinutes + set.StandardBiasMinutes
	dayBias := set.BiasMinutes + set.DaylightBiasMinutes

	ifUnknown, err := utc.SubMinutes(int64(baseBias))
	if err != nil {
		return Resolved{}, fmt.Errorf("base bias candidate: %w", err)
	}
	ifStandard, err := utc.SubMinutes(int64(stdBias))
	if err != nil {
		return Resolved{}, fmt.Errorf("standard bias candidate: %w", err)
	}
	ifDaylight, err := utc.SubMinutes(int64(dayBias))
	if err != nil {
		return Resolved{}, fmt.Errorf("daylight bias candidate: %w", err)
	}

	// In strict mode no candidate can succeed if none falls in the
	// requested year.
	if strict && ifUnknown.Year != year && ifStandard.Year != year && ifDaylight.Year != year {
		return Resolved{}, fmt.Errorf("%w: no candidate in year %d", ErrYearMismatch, year)
	}

	// Expand both transitions to local boundaries in the target
	// year. An ignored or unexpandable transition means observance
	// cannot be determined; only the base bias applies.
	standardStart, serr := set.StandardDate.Absolute(year)
	daylightStart, derr := set.DaylightDate.Absolute(year)
	if serr != nil || derr != nil {
		return commit(ifUnknown, Unknown, baseBias)
	}

	stdBeforeDaylightStart := civil.CompareIgnoringWeekday(ifStandard, daylightStart) < 0
	dayBeforeStandardStart := civil.CompareIgnoringWeekday(ifDaylight, standardStart) < 0

	switch cmp := civil.CompareIgnoringWeekday(standardStart, daylightStart); {
	case cmp < 0: // standard boundary first in the year (southern-style)
		if !dayBeforeStandardStart && stdBeforeDaylightStart {
			return commit(ifStandard, Standard, stdBias)
		}
		return commit(ifDaylight, Daylight, dayBias)
	case cmp > 0: // daylight boundary first in the year (northern-style)
		if !stdBeforeDaylightStart && dayBeforeStandardStart {
			return commit(ifDaylight, Daylight, dayBias)
		}
		return commit(ifStandard, Standard, stdBias)
	}

	// Coincident transitions. The platform this reproduces always
	// reports daylight time here, even when the zone does not
	// observe DST. Report daylight only when a daylight bias exists
	// (DST in effect year-round); otherwise observance is unknown
	// and only the base bias applies.
	if set.DaylightBiasMinutes != 0 {
		return commit(ifDaylight, Daylight, dayBias)
	}
	return commit(ifUnknown, Unknown, baseBias)
}
