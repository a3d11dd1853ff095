package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"dutyroster/internal/calendar"
)

// seed "<n1>;<n2> [date]": realign the rotation so n1 and n2 are on duty.
func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `seed "<name1>;<name2> [YYYY-MM-DD]"`,
		Short: "Realign the rotation to a canonical pair on a date",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			a, err := appCtx.Seeding.ParseArgs(strings.Join(args, " "))
			if err != nil {
				return err
			}
			anchor, err := appCtx.Seeding.Seed(a)
			if err != nil {
				return err
			}
			printf(cmd, "Seeded %s.\nAnchor: %s\n", calendar.FormatDisplay(a.Date), calendar.FormatDate(anchor))
			return nil
		},
	}
}

// seed-only "<n1>;<n2> [date]": pin a pair for one date.
func seedOnlyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   `seed-only "<name1>;<name2> [YYYY-MM-DD]"`,
		Short: "Pin a pair for one date without moving the rotation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			a, err := appCtx.Seeding.ParseArgs(strings.Join(args, " "))
			if err != nil {
				return err
			}
			p, err := appCtx.Seeding.SeedOnly(a)
			if err != nil {
				return err
			}
			printf(cmd, "Pinned %s on %s.\n", p, calendar.FormatDisplay(a.Date))
			return nil
		},
	}
}
