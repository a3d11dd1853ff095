package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"dutyroster/internal/calendar"
)

func resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Restart the rotation from today; forget overrides, debts and the simulated date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			if !yes {
				return fmt.Errorf("reset wipes all overrides and debtors; rerun with --yes")
			}
			if err := appCtx.Duty.FullReset(); err != nil {
				return err
			}
			printf(cmd, "Reset. Anchor: %s\n", calendar.FormatDate(appCtx.Duty.Anchor()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
