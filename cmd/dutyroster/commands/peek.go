package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"dutyroster/internal/calendar"
	"dutyroster/internal/feed"
)

// peek [date]: read the pair from a remote feed instead of local state.
func peekCmd() *cobra.Command {
	var server string
	cmd := &cobra.Command{
		Use:         "peek [YYYY-MM-DD]",
		Short:       "Show the pair published by a remote dutyroster serve",
		Args:        cobra.MaximumNArgs(1),
		Annotations: map[string]string{skipWire: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c := feed.NewClient(server)
			var (
				day feed.Day
				err error
			)
			if len(args) == 1 {
				d, perr := calendar.ParseDate(args[0])
				if perr != nil {
					return perr
				}
				day, err = c.Pair(d)
			} else {
				day, err = c.Today()
			}
			if err != nil {
				return err
			}
			mark := ""
			if day.Override {
				mark = " (override)"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Duty on %s: %s%s\n", day.Date, day.Pair, mark)
			return nil
		},
	}
	cmd.Flags().StringVar(&server, "server", "http://127.0.0.1:8080", "feed base URL")
	return cmd
}
