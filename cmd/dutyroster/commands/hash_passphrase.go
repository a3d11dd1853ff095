package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"dutyroster/internal/app"
)

func hashPassphraseCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "hash-passphrase <passphrase>",
		Short:       "Print a bcrypt hash for admin_passphrase_hash",
		Args:        cobra.ExactArgs(1),
		Annotations: map[string]string{skipWire: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := app.HashPassphrase(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
}
