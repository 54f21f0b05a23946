// Package tzsource provides timezone rule-set providers backed by
// fixed values, per-year tables, and zone files on disk.
package tzsource

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nvoss/ticktz/civil"
	"github.com/nvoss/ticktz/tzlocal"
	"github.com/nvoss/ticktz/tzrule"
)

// Fixed serves the same rule set for every year.
type Fixed tzlocal.RuleSet

// RulesForYear returns the fixed rule set.
func (f Fixed) RulesForYear(int) (tzlocal.RuleSet, error) {
	return tzlocal.RuleSet(f), nil
}

// Map serves per-year rule sets. When the requested year has no
// entry, the set of the closest year is substituted silently, as the
// provider contract allows.
type Map map[int]tzlocal.RuleSet

// RulesForYear returns the rule set for year, or the closest
// available year's.
func (m Map) RulesForYear(year int) (tzlocal.RuleSet, error) {
	if set, ok := m[year]; ok {
		return set, nil
	}
	var (
		best  int
		found bool
	)
	for y := range m {
		if !found || abs(y-year) < abs(best-year) || (abs(y-year) == abs(best-year) && y < best) {
			best, found = y, true
		}
	}
	if !found {
		return tzlocal.RuleSet{}, fmt.Errorf("%w: no rule sets loaded", tzlocal.ErrRuleUnavailable)
	}
	return m[best], nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// zoneFile is the on-disk representation of a zone definition.
type zoneFile struct {
	Name       string         `yaml:"name"`
	Bias       int            `yaml:"bias"`
	Standard   observanceSpec `yaml:"standard"`
	Daylight   observanceSpec `yaml:"daylight"`
	DisableDST bool           `yaml:"disable_dst"`
}

type observanceSpec struct {
	Name       string          `yaml:"name"`
	Bias       int             `yaml:"bias"`
	Transition *transitionSpec `yaml:"transition"`
}

type transitionSpec struct {
	Month       int `yaml:"month"`
	Occurrence  int `yaml:"occurrence"`
	Weekday     int `yaml:"weekday"`
	Hour        int `yaml:"hour"`
	Minute      int `yaml:"minute"`
	Second      int `yaml:"second"`
	Millisecond int `yaml:"millisecond"`
}

func (t *transitionSpec) rule() tzrule.Rule {
	if t == nil {
		return tzrule.Rule{} // not observed
	}
	return tzrule.Rule{
		Month:       t.Month,
		Day:         t.Occurrence,
		Weekday:     civil.Weekday(t.Weekday),
		Hour:        t.Hour,
		Minute:      t.Minute,
		Second:      t.Second,
		Millisecond: t.Millisecond,
	}
}

// LoadFile reads a YAML zone file and returns a provider serving its
// rule set for every year. If the file disables automatic daylight
// saving, the rule set is rewritten per the provider contract: both
// extra biases and both transitions zeroed and the standard name
// mirrored, leaving only the base bias.
func LoadFile(path string) (Fixed, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Fixed{}, fmt.Errorf("%w: %v", tzlocal.ErrRuleUnavailable, err)
	}
	return Parse(b)
}

// Parse decodes a YAML zone definition.
func Parse(b []byte) (Fixed, error) {
	var zf zoneFile
	if err := yaml.Unmarshal(b, &zf); err != nil {
		return Fixed{}, fmt.Errorf("%w: %v", tzlocal.ErrRuleUnavailable, err)
	}

	set := tzlocal.RuleSet{
		BiasMinutes:         zf.Bias,
		StandardName:        zf.Standard.Name,
		StandardDate:        zf.Standard.Transition.rule(),
		StandardBiasMinutes: zf.Standard.Bias,
		DaylightName:        zf.Daylight.Name,
		DaylightDate:        zf.Daylight.Transition.rule(),
		DaylightBiasMinutes: zf.Daylight.Bias,
	}
	if set.StandardName == "" {
		set.StandardName = zf.Name
	}
	if set.DaylightName == "" {
		set.DaylightName = set.StandardName
	}
	if zf.DisableDST {
		set = DisableDST(set)
	}
	if !set.Valid(true) {
		return Fixed{}, fmt.Errorf("%w: %+v", tzlocal.ErrInvalidRuleSet, set)
	}
	return Fixed(set), nil
}

// DisableDST rewrites a rule set the way the platform does when
// automatic daylight saving is turned off: transitions and extra
// biases are zeroed and the daylight name mirrors the standard name.
func DisableDST(set tzlocal.RuleSet) tzlocal.RuleSet {
	set.StandardBiasMinutes = 0
	set.DaylightBiasMinutes = 0
	set.StandardDate = tzrule.Rule{}
	set.DaylightDate = tzrule.Rule{}
	set.DaylightName = set.StandardName
	return set
}
