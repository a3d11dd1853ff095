package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"dutyroster/internal/calendar"
	"dutyroster/internal/services/schedule"
)

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule [YYYY-MM-DD]",
		Short: "Show the lessons for a date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := dateArg(args, 0)
			if err != nil {
				return err
			}
			subjects, err := appCtx.Schedule.ForDate(d)
			if err != nil {
				return err
			}
			writeSchedule(cmd.OutOrStdout(), appCtx.Duty.Day(d), subjects)
			return nil
		},
	}
}

// schedule-set <day|YYYY-MM-DD> s1 | s2 | ...
func scheduleSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule-set <weekday|YYYY-MM-DD> <subject | subject | ...>",
		Short: "Set the lessons for a weekday (mon..sun, пн..вс) or one date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			day := args[0]
			subjects := schedule.ParseSubjects(strings.Join(args[1:], " "))

			if d, err := calendar.ParseDate(day); err == nil {
				if err := appCtx.Schedule.SetDate(d, subjects); err != nil {
					return err
				}
				printf(cmd, "Schedule for %s updated.\n", calendar.FormatDisplay(d))
				return nil
			}
			if len(subjects) == 0 {
				return fmt.Errorf("give the subjects separated by |")
			}
			wd, err := appCtx.Schedule.SetWeekday(day, subjects)
			if err != nil {
				return err
			}
			printf(cmd, "Schedule for %s updated.\n", weekdayShort[wd])
			return nil
		},
	}
}
