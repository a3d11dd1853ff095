package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// overrides: every day whose pair was pinned by hand.
func overridesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "overrides",
		Short: "List the days with a pinned pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			days := appCtx.Duty.Overrides()
			if len(days) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No overrides.")
				return nil
			}
			writeUpcoming(cmd.OutOrStdout(), days)
			return nil
		},
	}
}
