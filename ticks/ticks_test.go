package ticks

import (
	"errors"
	"math"
	"testing"
)

func TestIsValid(t *testing.T) {
	cases := []struct {
		in   Ticks
		want bool
	}{
		{0, true},
		{1, true},
		{Max, true},
		{Max + 1, false},
		{-1, false},
		{math.MaxInt64, false},
	}
	for _, c := range cases {
		if got := c.in.IsValid(); got != c.want {
			t.Errorf("Ticks(%d).IsValid() = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestAddSub(t *testing.T) {
	start := Ticks(1_000_000)

	got, err := start.Add(500)
	if err != nil {
		t.Fatalf("Add(500): %v", err)
	}
	if got != start+500 {
		t.Errorf("Add(500) = %d, want %d", got, start+500)
	}

	back, err := got.Sub(500)
	if err != nil {
		t.Fatalf("Sub(500): %v", err)
	}
	if back != start {
		t.Errorf("Add then Sub: got %d, want %d", back, start)
	}
}

func TestAddFailures(t *testing.T) {
	cases := []struct {
		name string
		t    Ticks
		n    int64
		want error
	}{
		{"invalid input", -1, 1, ErrInvalid},
		{"invalid input high", Max + 1, 0, ErrInvalid},
		{"result past max", Max, 1, ErrInvalid},
		{"result negative", 0, -1, ErrInvalid},
		{"wraps positive", Max, math.MaxInt64, ErrOverflow},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := c.t.Add(c.n); !errors.Is(err, c.want) {
				t.Errorf("Ticks(%d).Add(%d) error = %v, want %v", c.t, c.n, err, c.want)
			}
		})
	}
}

func TestSubMinValue(t *testing.T) {
	// Subtracting MinInt64 cannot be negated in place; it must
	// still fail cleanly instead of wrapping.
	if _, err := Ticks(0).Sub(math.MinInt64); !errors.Is(err, ErrOverflow) {
		t.Errorf("Sub(MinInt64) error = %v, want %v", err, ErrOverflow)
	}
}

func TestMinutesRoundTrip(t *testing.T) {
	start := Ticks(1234567890123)
	for _, minutes := range []int64{0, 1, 59, 60, 1440, 100_000} {
		fwd, err := start.AddMinutes(minutes)
		if err != nil {
			t.Fatalf("AddMinutes(%d): %v", minutes, err)
		}
		back, err := fwd.SubMinutes(minutes)
		if err != nil {
			t.Fatalf("SubMinutes(%d): %v", minutes, err)
		}
		if back != start {
			t.Errorf("AddMinutes/SubMinutes(%d) round trip: got %d, want %d", minutes, back, start)
		}
	}
}

func TestMinutesOverflow(t *testing.T) {
	// The minute multiplier itself can overflow before the tick
	// addition does.
	if _, err := Ticks(0).AddMinutes(math.MaxInt64 / 2); !errors.Is(err, ErrOverflow) {
		t.Errorf("AddMinutes(huge) error = %v, want %v", err, ErrOverflow)
	}
	if _, err := Max.AddMinutes(1); !errors.Is(err, ErrInvalid) {
		t.Errorf("Max.AddMinutes(1) error = %v, want %v", err, ErrInvalid)
	}
}

func TestFromUnix(t *testing.T) {
	// 1970-01-01 is 134774 days after the tick epoch.
	if got, want := FromUnix(0, 0), Ticks(134774)*PerDay; got != want {
		t.Errorf("FromUnix(0, 0) = %d, want %d", got, want)
	}
	if got, want := FromUnix(1, 150), Ticks(134774)*PerDay+PerSecond+1; got != want {
		t.Errorf("FromUnix(1, 150) = %d, want %d", got, want)
	}
}

func TestFixedClock(t *testing.T) {
	c := FixedClock(42)
	if got := c.Now(); got != 42 {
		t.Errorf("FixedClock.Now() = %d, want 42", got)
	}
}

func TestSystemClockInRange(t *testing.T) {
	now := SystemClock{}.Now()
	if !now.IsValid() {
		t.Errorf("SystemClock.Now() = %d, out of supported range", now)
	}
	// Sanity: the present is after 2020-01-01.
	y2020 := FromUnix(1577836800, 0)
	if now <= y2020 {
		t.Errorf("SystemClock.Now() = %d, want after %d", now, y2020)
	}
}
