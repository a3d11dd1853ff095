package commands

import (
	"time"

	"github.com/spf13/cobra"
)

func todayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's pair and lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := appCtx.Duty.Today()
			if err != nil {
				return err
			}
			return showDay(cmd, d)
		},
	}
}

func tomorrowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tomorrow",
		Short: "Show the next working day's pair and lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := appCtx.Duty.Tomorrow()
			if err != nil {
				return err
			}
			return showDay(cmd, d)
		},
	}
}

func showDay(cmd *cobra.Command, d time.Time) error {
	dp := appCtx.Duty.Day(d)
	subjects, err := appCtx.Schedule.ForDate(d)
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	writeDay(w, dp)
	printf(cmd, "\n")
	writeSchedule(w, dp, subjects)
	return nil
}
