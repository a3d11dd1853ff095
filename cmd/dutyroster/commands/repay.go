package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
)

const randomArg = "random"

// repay <debtor|random> <target|random>: a debtor takes target's slot and
// target is carried to a later day.
func repayCmd() *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "repay <debtor|random> <target|random>",
		Short: "Let a debtor replace someone on duty",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAdmin(); err != nil {
				return err
			}
			d, err := dateFlag(date)
			if err != nil {
				return err
			}
			debtor, err := debtorArg(args[0])
			if err != nil {
				return err
			}
			target := args[1]
			if target == randomArg {
				target = appCtx.Duty.PickRandomTarget(d)
			}

			res, err := appCtx.Duty.ReplaceWithDebtor(debtor, target, d)
			if err != nil {
				return err
			}
			printf(cmd, "Debtor %s replaced %s (%s).\nPair: %s\n",
				res.Debtor, res.Displaced, calendar.FormatDisplay(res.Date), res.Pair)
			if res.Carried() {
				printf(cmd, "%s moved to %s.\n", res.Displaced, calendar.FormatDisplay(res.CarriedTo))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "day to patch, YYYY-MM-DD (default today)")
	return cmd
}

// debtorArg accepts "random", a debtor index or a name.
func debtorArg(s string) (int, error) {
	if s == randomArg {
		return appCtx.Duty.PickRandomDebtor()
	}
	if idx, err := strconv.Atoi(s); err == nil {
		return idx, nil
	}
	r := appCtx.Duty.Roster()
	name, ok := r.Resolve(s)
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrNotFound, s)
	}
	return r.IndexOf(name)
}
