// Package tzlocal resolves UTC instants to local calendar time for a
// timezone described by bias and transition rules, deciding whether
// standard time, daylight time, or an indeterminate regime applies.
package tzlocal

import (
	"errors"

	"github.com/nvoss/ticktz/tzrule"
)

var (
	// ErrBiasRange reports a rule set whose combined biases exceed
	// one day in either direction.
	ErrBiasRange = errors.New("tzlocal: combined bias exceeds 24 hours")
	// ErrInvalidRuleSet reports a rule set that fails validation.
	ErrInvalidRuleSet = errors.New("tzlocal: invalid rule set")
	// ErrRuleUnavailable reports a provider that could not supply a
	// rule set. Providers wrap their failures with it.
	ErrRuleUnavailable = errors.New("tzlocal: rule set unavailable")
	// ErrYearMismatch reports a strict-mode resolution whose local
	// calendar year does not match the requested civil year.
	ErrYearMismatch = errors.New("tzlocal: local year does not match requested year")
	// ErrUnresolvable reports that no candidate rule-set year
	// produced a valid resolution.
	ErrUnresolvable = errors.New("tzlocal: no rule set resolves the instant")
)

// maxBiasMinutes bounds the difference between UTC and local time.
// The resolver is not designed to reason about biases beyond one
// day; rule sets exceeding it are rejected rather than guessed at.
const maxBiasMinutes = 24 * 60

// RuleSet describes a timezone for one civil year: its base bias
// from UTC in minutes (positive west of Greenwich), the additional
// biases in effect during standard and daylight time, and the
// transitions into each.
type RuleSet struct {
	BiasMinutes         int
	StandardName        string
	StandardDate        tzrule.Rule
	StandardBiasMinutes int
	DaylightName        string
	DaylightDate        tzrule.Rule
	DaylightBiasMinutes int
}

// BiasesValid reports whether the base bias and each combined bias
// lie within the supported one-day envelope.
func (s RuleSet) BiasesValid() bool {
	within := func(m int) bool { return m >= -maxBiasMinutes && m <= maxBiasMinutes }
	return within(s.BiasMinutes) &&
		within(s.BiasMinutes+s.StandardBiasMinutes) &&
		within(s.BiasMinutes+s.DaylightBiasMinutes)
}

// Valid reports whether s is usable for resolution. When
// allowIgnored is set, a transition may also be the "not observed"
// sentinel, which rule sets use to disable daylight saving.
func (s RuleSet) Valid(allowIgnored bool) bool {
	dateOK := func(r tzrule.Rule) bool {
		return r.IsValid() || (allowIgnored && r.IsIgnored())
	}
	return s.BiasesValid() &&
		dateOK(s.StandardDate) &&
		dateOK(s.DaylightDate) &&
		s.StandardName != "" &&
		s.DaylightName != ""
}

// Provider supplies timezone rule sets per civil year.
//
// A provider returns the rule set for the closest available year to
// the one requested and may silently substitute a different year's
// data. If automatic daylight saving is disabled at the source, the
// provider must zero out both extra biases and both transitions and
// mirror the standard name into the daylight name, so that only the
// base bias applies.
type Provider interface {
	RulesForYear(year int) (RuleSet, error)
}
