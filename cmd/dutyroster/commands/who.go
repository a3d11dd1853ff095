package commands

import "github.com/spf13/cobra"

// who [date]: print the pair on duty.
func whoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "who [YYYY-MM-DD]",
		Short: "Show who is on duty for a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dateArg(args, 0)
			if err != nil {
				return err
			}
			writeDay(cmd.OutOrStdout(), appCtx.Duty.Day(d))
			return nil
		},
	}
}
