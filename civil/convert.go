package civil

import (
	"fmt"

	"github.com/nvoss/ticktz/internal/epochdays"
	"github.com/nvoss/ticktz/ticks"
)

// FromTicks converts a tick timestamp to a calendar time, deriving
// the Weekday field. Sub-millisecond precision is truncated.
func FromTicks(t ticks.Ticks) (Time, error) {
	if !t.IsValid() {
		return Time{}, fmt.Errorf("%w: %d", ticks.ErrInvalid, t)
	}
	days := int64(t / ticks.PerDay)
	rem := int64(t % ticks.PerDay)

	year, month, day := epochdays.ToDate(days)

	ms := rem / int64(ticks.PerMillisecond)
	ct := Time{
		Year:        year,
		Month:       month,
		Day:         day,
		Hour:        int(ms / 3_600_000),
		Minute:      int(ms / 60_000 % 60),
		Second:      int(ms / 1000 % 60),
		Millisecond: int(ms % 1000),
	}
	ct.Weekday = DayOfWeek(ct.Day, ct.Month, ct.Year)
	return ct, nil
}

// Ticks converts t to a tick timestamp. t must be strict-valid; the
// conversion discards nothing, so FromTicks(t.Ticks()) reproduces t
// up to millisecond resolution.
func (t Time) Ticks() (ticks.Ticks, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %+v", ErrInvalidTime, t)
	}
	days := epochdays.FromDate(t.Year, t.Month, t.Day)
	r := ticks.Ticks(days)*ticks.PerDay +
		ticks.Ticks(t.Hour)*60*ticks.PerMinute +
		ticks.Ticks(t.Minute)*ticks.PerMinute +
		ticks.Ticks(t.Second)*ticks.PerSecond +
		ticks.Ticks(t.Millisecond)*ticks.PerMillisecond
	return r, nil
}

// AddMinutes returns t advanced by the given number of minutes,
// carried out in the tick domain so that day, month and year roll
// over correctly.
func (t Time) AddMinutes(minutes int64) (Time, error) {
	ft, err := t.Ticks()
	if err != nil {
		return Time{}, err
	}
	ft, err = ft.AddMinutes(minutes)
	if err != nil {
		return Time{}, err
	}
	return FromTicks(ft)
}

// SubMinutes returns t moved back by the given number of minutes.
func (t Time) SubMinutes(minutes int64) (Time, error) {
	ft, err := t.Ticks()
	if err != nil {
		return Time{}, err
	}
	ft, err = ft.SubMinutes(minutes)
	if err != nil {
		return Time{}, err
	}
	return FromTicks(ft)
}
