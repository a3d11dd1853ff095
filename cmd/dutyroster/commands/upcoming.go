package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dutyroster/internal/services/duty"
)

const defaultUpcoming = 6

func upcomingCmd() *cobra.Command {
	var from string
	cmd := &cobra.Command{
		Use:   "upcoming [n]",
		Short: "Show pairs for the next n working days",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n := defaultUpcoming
			if len(args) == 1 {
				v, err := strconv.Atoi(args[0])
				if err != nil || v <= 0 || v > duty.MaxUpcoming {
					return fmt.Errorf("n must be between 1 and %d, got %q", duty.MaxUpcoming, args[0])
				}
				n = v
			}
			start, err := dateFlag(from)
			if err != nil {
				return err
			}
			writeUpcoming(cmd.OutOrStdout(), appCtx.Duty.Upcoming(start, n))
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "first date (default today)")
	return cmd
}
