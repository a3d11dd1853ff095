package app

import (
	"io"
	"os"

	"github.com/charmbracelet/log"

	"dutyroster/internal/domain"
	"dutyroster/internal/store"
)

// NewLogger returns the structured stderr logger used across the app.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: false,
		Prefix:          "dutyroster",
		Level:           level,
	})
}

// openBackend builds the document backend named by cfg.Backend. The returned
// closer is nil for backends that hold no resources.
func openBackend(cfg Config) (domain.DocumentBackend, io.Closer, error) {
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, nil, err
	}
	switch cfg.Backend {
	case BackendSQLite:
		db, err := store.OpenSQLiteBackend(cfg.DatabasePath())
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	default:
		return store.NewFileBackend(cfg.Home), nil, nil
	}
}
