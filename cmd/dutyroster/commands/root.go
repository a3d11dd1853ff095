package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"dutyroster/internal/app"
	"dutyroster/internal/calendar"
)

const skipWire = "skip-wire"

var (
	home       string
	configPath string
	callerID   int64
	passphrase string
	verbose    bool
	appCtx     *app.App

	// host is replaced in tests.
	host app.Host
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "dutyroster",
		Short:        "Daily duty pair rotation",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipWire] != "" {
				return nil
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".dutyroster")
			}
			if configPath == "" {
				configPath = filepath.Join(home, "config.yaml")
			}
			cfg, err := app.LoadConfig(home, configPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = "debug"
			}

			h := host
			if h.LogOutput == nil {
				h.LogOutput = cmd.ErrOrStderr()
			}
			appCtx, err = app.New(cfg, h)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx == nil {
				return nil
			}
			err := appCtx.Close()
			appCtx = nil
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.dutyroster)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().Int64Var(&callerID, "as", 0, "caller id checked against the admin list")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "admin passphrase")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	root.AddCommand(
		todayCmd(), tomorrowCmd(), whoCmd(), upcomingCmd(), overridesCmd(), debtorsCmd(), scheduleCmd(),
		absentCmd(), repayCmd(), seedCmd(), seedOnlyCmd(), skipCmd(), nextCmd(), prevCmd(), realtimeCmd(),
		resetCmd(), reloadRosterCmd(), scheduleSetCmd(), hashPassphraseCmd(), serveCmd(), peekCmd(),
	)
	return root
}

// requireAdmin gates mutating commands.
func requireAdmin() error {
	return appCtx.Guard.Check(callerID, passphrase)
}

// dateArg parses args[i] as YYYY-MM-DD, or returns today when absent.
func dateArg(args []string, i int) (time.Time, error) {
	if len(args) > i {
		return calendar.ParseDate(args[i])
	}
	return appCtx.Duty.Today()
}

func dateFlag(s string) (time.Time, error) {
	if s == "" {
		return appCtx.Duty.Today()
	}
	return calendar.ParseDate(s)
}

func printf(cmd *cobra.Command, format string, a ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format, a...)
}
