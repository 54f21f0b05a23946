// Package ticks implements arithmetic on the tick timestamp domain:
// a signed 64-bit count of 100-nanosecond intervals elapsed since
// 1601-01-01 00:00:00 UTC.
package ticks

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Ticks is a count of 100-nanosecond intervals since 1601-01-01 UTC.
type Ticks int64

const (
	// PerMillisecond is the number of ticks in one millisecond.
	PerMillisecond Ticks = 10_000
	// PerSecond is the number of ticks in one second.
	PerSecond = 1000 * PerMillisecond
	// PerMinute is the number of ticks in one minute.
	PerMinute = 60 * PerSecond
	// PerDay is the number of ticks in one day.
	PerDay = 24 * 60 * PerMinute

	// Max is the largest supported instant,
	// 30827-12-31 23:59:59.999, the last millisecond of the largest
	// representable calendar time.
	Max Ticks = 0x7FFF35F4F06C58F0
)

var (
	// ErrInvalid reports a tick value outside [0, Max].
	ErrInvalid = errors.New("ticks: timestamp out of supported range")
	// ErrOverflow reports arithmetic that would wrap the 64-bit
	// tick counter.
	ErrOverflow = errors.New("ticks: arithmetic overflow")
)

// IsValid reports whether t lies within the supported range.
func (t Ticks) IsValid() bool {
	return t >= 0 && t <= Max
}

// Add returns t advanced by n ticks. It fails with ErrInvalid if t or
// the result is outside the supported range, and with ErrOverflow if
// the signed addition would wrap.
func (t Ticks) Add(n int64) (Ticks, error) {
	if !t.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalid, t)
	}
	if n == 0 {
		return t, nil
	}
	if (n > 0 && int64(t) > math.MaxInt64-n) || (n < 0 && int64(t) < math.MinInt64-n) {
		return 0, fmt.Errorf("%w: %d + %d", ErrOverflow, t, n)
	}
	r := t + Ticks(n)
	if !r.IsValid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalid, r)
	}
	return r, nil
}

// Sub returns t moved back by n ticks. Failure modes match Add.
func (t Ticks) Sub(n int64) (Ticks, error) {
	if n == math.MinInt64 {
		// -n is not representable and adding 2^63 always wraps.
		return 0, fmt.Errorf("%w: %d - %d", ErrOverflow, t, n)
	}
	return t.Add(-n)
}

// AddMinutes returns t advanced by the given number of minutes.
func (t Ticks) AddMinutes(minutes int64) (Ticks, error) {
	n, err := minutesToTicks(minutes)
	if err != nil {
		return 0, err
	}
	return t.Add(n)
}

// SubMinutes returns t moved back by the given number of minutes.
func (t Ticks) SubMinutes(minutes int64) (Ticks, error) {
	n, err := minutesToTicks(minutes)
	if err != nil {
		return 0, err
	}
	return t.Sub(n)
}

func minutesToTicks(minutes int64) (int64, error) {
	const perMinute = int64(PerMinute)
	if minutes > math.MaxInt64/perMinute || minutes < math.MinInt64/perMinute {
		return 0, fmt.Errorf("%w: %d minutes", ErrOverflow, minutes)
	}
	return minutes * perMinute, nil
}

// unixEpoch is 1970-01-01 00:00:00 UTC expressed in ticks:
// 134774 days between 1601-01-01 and 1970-01-01.
const unixEpoch Ticks = 134774 * PerDay

// FromUnix converts a Unix timestamp in seconds and nanoseconds to
// ticks, truncating to 100ns resolution.
func FromUnix(sec int64, nsec int64) Ticks {
	return unixEpoch + Ticks(sec)*PerSecond + Ticks(nsec/100)
}

// Clock yields the current instant. Implementations must return UTC.
type Clock interface {
	Now() Ticks
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns the current instant in ticks.
func (SystemClock) Now() Ticks {
	now := time.Now().UTC()
	return FromUnix(now.Unix(), int64(now.Nanosecond()))
}

// FixedClock always reports the same instant. Useful in tests and for
// replaying conversions at a known point in time.
type FixedClock Ticks

// Now returns the fixed instant.
func (c FixedClock) Now() Ticks { return Ticks(c) }
