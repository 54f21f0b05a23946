package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nvoss/ticktz/tzlocal"
	"github.com/nvoss/ticktz/tzrule"
	"github.com/nvoss/ticktz/tzsource"
)

func newRulesCommand(opts *rootOptions) *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Expand a zone's transition rules to absolute dates for a year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := tzsource.LoadFile(opts.ZoneFile)
			if err != nil {
				return err
			}
			set := tzlocal.RuleSet(provider)
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "bias = %+d minutes\n", set.BiasMinutes)
			printRule(cmd, "standard", set.StandardName, set.StandardBiasMinutes, set.StandardDate, year)
			printRule(cmd, "daylight", set.DaylightName, set.DaylightBiasMinutes, set.DaylightDate, year)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 2024, "civil year to expand transitions in")
	return cmd
}

func printRule(cmd *cobra.Command, label, name string, bias int, r tzrule.Rule, year int) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s = %q, %+d minutes\n", label, name, bias)
	if r.IsIgnored() {
		fmt.Fprintf(out, "  transition not observed\n")
		return
	}
	abs, err := r.Absolute(year)
	if err != nil {
		fmt.Fprintf(out, "  transition invalid: %v\n", err)
		return
	}
	fmt.Fprintf(out, "  transition at %s\n", formatTime(abs))
}
