package app

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// RosterWatcher reloads the duty list when the roster file changes on disk.
type RosterWatcher struct {
	app      *App
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
}

// WatchRoster starts watching the roster file's directory. Editors often
// replace the file by rename, so the directory is watched rather than the
// file itself.
func (a *App) WatchRoster() (*RosterWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	path := filepath.Clean(a.Config.RosterPath())
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}
	return &RosterWatcher{app: a, watcher: w, path: path, debounce: 200 * time.Millisecond}, nil
}

// Run handles events until ctx is done, then closes the watcher. Bursts of
// events are coalesced into one reload.
func (rw *RosterWatcher) Run(ctx context.Context) error {
	defer rw.watcher.Close()

	tick := time.NewTicker(rw.debounce / 4)
	defer tick.Stop()

	var (
		pending bool
		last    time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-rw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != rw.path {
				continue
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0 {
				pending, last = true, time.Now()
			}

		case err, ok := <-rw.watcher.Errors:
			if !ok {
				return nil
			}
			rw.app.Log.Warn("roster watcher", "err", err)

		case <-tick.C:
			if !pending || time.Since(last) < rw.debounce {
				continue
			}
			pending = false
			if _, dropped, err := rw.app.ReloadRoster(); err != nil {
				rw.app.Log.Warn("roster reload failed", "path", rw.path, "err", err)
			} else {
				rw.app.Log.Info("roster file changed", "path", rw.path, "dropped", len(dropped))
			}
		}
	}
}
