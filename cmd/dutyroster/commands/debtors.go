package commands

import "github.com/spf13/cobra"

func debtorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "debtors",
		Short: "List people owing a makeup duty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			writeDebtors(cmd.OutOrStdout(), appCtx.Duty.Debtors())
			return nil
		},
	}
}
