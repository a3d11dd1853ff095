package commands

import (
	"github.com/spf13/cobra"

	"dutyroster/internal/calendar"
)

// absent <name> [date]: record an absence and patch the day's pair.
func absentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "absent <name> [YYYY-MM-DD]",
		Short: "Mark someone absent; they become a debtor",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			d, err := dateArg(args, 1)
			if err != nil {
				return err
			}
			name := args[0]
			if resolved, ok := appCtx.Duty.ResolveName(name); ok {
				name = resolved
			}
			pair, err := appCtx.Duty.MarkAbsent(d, name)
			if err != nil {
				return err
			}
			printf(cmd, "%s marked absent on %s.\nPair: %s\n", name, calendar.FormatDisplay(d), pair)
			return nil
		},
	}
}
