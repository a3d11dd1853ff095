package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dutyroster/internal/calendar"
)

func skipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skip <n>",
		Short: "Advance the rotation by n pairs (negative goes back)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("n must be an integer, got %q", args[0])
			}
			anchor, err := appCtx.Duty.ShiftAnchor(n)
			if err != nil {
				return err
			}
			printf(cmd, "Rotation shifted by %d working days.\nAnchor: %s\n", n, calendar.FormatDate(anchor))
			return nil
		},
	}
}
