package tzlocal

import "github.com/nvoss/ticktz/civil"

// Preference selects which view of a Pair callers should present.
type Preference int

const (
	// PreferUTC presents the UTC view.
	PreferUTC Preference = iota
	// PreferLocal presents the local view.
	PreferLocal
)

// Pair holds the same instant in both UTC and local form, tagged
// with the view the producer prefers. It replaces aliased
// current/alternate views with two plain values and an accessor.
type Pair struct {
	UTC       civil.Time
	Local     civil.Time
	Preferred Preference
}

// Time returns the preferred view.
func (p Pair) Time() civil.Time {
	if p.Preferred == PreferLocal {
		return p.Local
	}
	return p.UTC
}

// Alternate returns the non-preferred view.
func (p Pair) Alternate() civil.Time {
	if p.Preferred == PreferLocal {
		return p.UTC
	}
	return p.Local
}
