package commands

import (
	"github.com/spf13/cobra"

	"dutyroster/internal/calendar"
)

func nextCmd() *cobra.Command {
	return stepCmd("next", "Move the simulated date to the next working day", 1)
}

func prevCmd() *cobra.Command {
	return stepCmd("prev", "Move the simulated date to the previous working day", -1)
}

// realtime: drop the simulated date and follow the real clock again.
func realtimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "realtime",
		Short: "Return from the simulated date to the real clock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			if err := appCtx.Duty.ClearSimulatedDate(); err != nil {
				return err
			}
			d, err := appCtx.Duty.Today()
			if err != nil {
				return err
			}
			printf(cmd, "Day: %s\n", calendar.FormatDisplay(d))
			writeDay(cmd.OutOrStdout(), appCtx.Duty.Day(d))
			return nil
		},
	}
}

func stepCmd(use, short string, delta int) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			d, err := appCtx.Duty.StepDay(delta)
			if err != nil {
				return err
			}
			printf(cmd, "Day: %s\n", calendar.FormatDisplay(d))
			writeDay(cmd.OutOrStdout(), appCtx.Duty.Day(d))
			return nil
		},
	}
}
