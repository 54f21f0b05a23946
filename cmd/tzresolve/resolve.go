package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nvoss/ticktz/civil"
	"github.com/nvoss/ticktz/tzlocal"
	"github.com/nvoss/ticktz/tzsource"
)

const instantLayout = "2006-01-02T15:04:05"

func newResolveCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <utc-instant>",
		Short: "Resolve a UTC instant (e.g. 2015-03-08T06:59:00) to local time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			utc, err := parseInstant(args[0])
			if err != nil {
				return err
			}
			provider, err := tzsource.LoadFile(opts.ZoneFile)
			if err != nil {
				return err
			}
			conv := tzlocal.NewConverter(provider)
			res, err := conv.ConvertCivil(utc)
			if err != nil {
				return err
			}
			printResolved(cmd, tzlocal.RuleSet(provider), utc, res)
			return nil
		},
	}
}

func newNowCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Resolve the current instant to local time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := tzsource.LoadFile(opts.ZoneFile)
			if err != nil {
				return err
			}
			conv := tzlocal.NewConverter(provider)
			utc, err := civil.FromTicks(conv.Clock.Now())
			if err != nil {
				return err
			}
			res, err := conv.ConvertCivil(utc)
			if err != nil {
				return err
			}
			printResolved(cmd, tzlocal.RuleSet(provider), utc, res)
			return nil
		},
	}
}

func parseInstant(s string) (civil.Time, error) {
	t, err := time.Parse(instantLayout, s)
	if err != nil {
		return civil.Time{}, fmt.Errorf("parsing instant: %w", err)
	}
	ct := civil.Time{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
	ct.Weekday = civil.DayOfWeek(ct.Day, ct.Month, ct.Year)
	return ct, nil
}

func printResolved(cmd *cobra.Command, set tzlocal.RuleSet, utc civil.Time, res tzlocal.Resolved) {
	out := cmd.OutOrStdout()
	name := set.StandardName
	if res.Observance == tzlocal.Daylight {
		name = set.DaylightName
	}
	fmt.Fprintf(out, "utc        = %s\n", formatTime(utc))
	fmt.Fprintf(out, "local      = %s\n", formatTime(res.Time))
	fmt.Fprintf(out, "observance = %s (%s)\n", res.Observance, name)
	fmt.Fprintf(out, "bias       = %+d minutes\n", res.BiasMinutes)
}

func formatTime(t civil.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d.%03d %s",
		t.Year, t.Month, t.Day, t.Hour, t.Minute, t.Second, t.Millisecond, t.Weekday)
}
