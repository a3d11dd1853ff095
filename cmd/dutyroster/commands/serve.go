package commands

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"dutyroster/internal/app"
	"dutyroster/internal/feed"
)

// serve: publish the rotation as read-only JSON until interrupted.
func serveCmd() *cobra.Command {
	var (
		addr        string
		watchRoster bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rotation as read-only JSON over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var w *app.RosterWatcher
			if watchRoster {
				var err error
				if w, err = appCtx.WatchRoster(); err != nil {
					return err
				}
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           feed.NewServer(appCtx.Duty, appCtx.Log),
				ReadHeaderTimeout: 5 * time.Second,
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				appCtx.Log.Info("feed listening", "addr", addr)
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})
			if w != nil {
				g.Go(func() error { return w.Run(gctx) })
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&watchRoster, "watch-roster", false, "reload the duty list when the roster file changes")
	return cmd
}
