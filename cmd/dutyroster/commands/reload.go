package commands

import (
	"strings"

	"github.com/spf13/cobra"
)

func reloadRosterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reload-roster",
		Short: "Reread the duty list file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			r, dropped, err := appCtx.ReloadRoster()
			if err != nil {
				return err
			}
			printf(cmd, "Reloaded %d people.\n", r.Len())
			if len(dropped) > 0 {
				printf(cmd, "Dropped debtors: %s\n", strings.Join(dropped, ", "))
			}
			return nil
		},
	}
}
