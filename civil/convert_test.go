package civil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/nvoss/ticktz/ticks"
)

func TestFromTicks(t *testing.T) {
	cases := []struct {
		name string
		in   ticks.Ticks
		want Time
	}{
		{
			name: "epoch",
			in:   0,
			want: Time{Year: 1601, Month: 1, Day: 1, Weekday: Monday},
		},
		{
			name: "one tick before the second day",
			in:   ticks.PerDay - 1,
			want: Time{Year: 1601, Month: 1, Day: 1, Hour: 23, Minute: 59, Second: 59, Millisecond: 999, Weekday: Monday},
		},
		{
			name: "max instant",
			in:   ticks.Max,
			want: Time{Year: 30827, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, Millisecond: 999, Weekday: Friday},
		},
		{
			name: "unix epoch",
			in:   ticks.FromUnix(0, 0),
			want: Time{Year: 1970, Month: 1, Day: 1, Weekday: Thursday},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := FromTicks(c.in)
			if err != nil {
				t.Fatalf("FromTicks(%d): %v", c.in, err)
			}
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("FromTicks(%d) mismatch (-want +got):\n%s", c.in, diff)
			}
		})
	}
}

func TestFromTicksInvalid(t *testing.T) {
	for _, in := range []ticks.Ticks{-1, ticks.Max + 1} {
		if _, err := FromTicks(in); !errors.Is(err, ticks.ErrInvalid) {
			t.Errorf("FromTicks(%d) error = %v, want %v", in, err, ticks.ErrInvalid)
		}
	}
}

func TestTicksRoundTrip(t *testing.T) {
	cases := []Time{
		{Year: 1601, Month: 1, Day: 1, Weekday: Monday},
		{Year: 2015, Month: 3, Day: 8, Hour: 7, Weekday: Sunday},
		{Year: 2024, Month: 2, Day: 29, Hour: 12, Minute: 34, Second: 56, Millisecond: 789, Weekday: Thursday},
		{Year: 30827, Month: 12, Day: 31, Hour: 23, Minute: 59, Second: 59, Millisecond: 999, Weekday: Friday},
	}
	for _, in := range cases {
		ft, err := in.Ticks()
		if err != nil {
			t.Fatalf("Ticks(%+v): %v", in, err)
		}
		got, err := FromTicks(ft)
		if err != nil {
			t.Fatalf("FromTicks(%d): %v", ft, err)
		}
		if diff := cmp.Diff(in, got); diff != "" {
			t.Errorf("round trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestTicksRejectsInvalid(t *testing.T) {
	bad := Time{Year: 2023, Month: 2, Day: 29, Weekday: Wednesday}
	if _, err := bad.Ticks(); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("Ticks(%+v) error = %v, want %v", bad, err, ErrInvalidTime)
	}

	// A mismatched weekday is rejected: Ticks requires strict validity.
	mismatch := Time{Year: 2015, Month: 3, Day: 8, Weekday: Monday}
	if _, err := mismatch.Ticks(); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("Ticks(%+v) error = %v, want %v", mismatch, err, ErrInvalidTime)
	}
}

func TestAddSubMinutes(t *testing.T) {
	// 2014-12-31 23:30 UTC plus 10 hours rolls into the next year.
	in := Time{Year: 2014, Month: 12, Day: 31, Hour: 23, Minute: 30, Weekday: Wednesday}
	got, err := in.AddMinutes(600)
	if err != nil {
		t.Fatalf("AddMinutes(600): %v", err)
	}
	want := Time{Year: 2015, Month: 1, Day: 1, Hour: 9, Minute: 30, Weekday: Thursday}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("AddMinutes(600) mismatch (-want +got):\n%s", diff)
	}

	back, err := got.SubMinutes(600)
	if err != nil {
		t.Fatalf("SubMinutes(600): %v", err)
	}
	if diff := cmp.Diff(in, back); diff != "" {
		t.Errorf("SubMinutes(600) mismatch (-want +got):\n%s", diff)
	}
}

func TestAddMinutesPastMax(t *testing.T) {
	in := Time{Year: 30827, Month: 12, Day: 31, Hour: 23, Weekday: Friday}
	if _, err := in.AddMinutes(60); !errors.Is(err, ticks.ErrInvalid) {
		t.Errorf("AddMinutes past max error = %v, want %v", err, ticks.ErrInvalid)
	}
}
