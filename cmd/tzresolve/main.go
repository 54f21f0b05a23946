// Command tzresolve resolves UTC instants to local calendar time
// using a zone definition file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootOptions holds flags shared by all subcommands.
type rootOptions struct {
	ZoneFile string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "tzresolve",
		Short:         "Resolve UTC instants to local time for a timezone rule set",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.ZoneFile, "zone", "z", "", "path to a YAML zone definition")

	cmd.AddCommand(newResolveCommand(opts))
	cmd.AddCommand(newRulesCommand(opts))
	cmd.AddCommand(newNowCommand(opts))

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "tzresolve:", err)
		os.Exit(1)
	}
}
