package app

import (
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
	"dutyroster/internal/roster"
	"dutyroster/internal/services/duty"
	"dutyroster/internal/services/schedule"
	"dutyroster/internal/services/seeding"
	"dutyroster/internal/store"
)

// Host carries the process-level collaborators. Zero fields pick the real
// clock, a time-seeded random source and stderr.
type Host struct {
	Clock     domain.Clock
	Rand      domain.Rand
	LogOutput io.Writer
}

// App bundles all stores and services for the CLI.
type App struct {
	Config   Config
	Log      *log.Logger
	Duty     *duty.Service
	Seeding  *seeding.Service
	Schedule *schedule.Service
	Guard    *Guard

	closer io.Closer
}

// New constructs the dependency graph from cfg.
func New(cfg Config, host Host) (*App, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if host.LogOutput == nil {
		host.LogOutput = os.Stderr
	}
	logger := NewLogger(host.LogOutput, level)

	if host.Clock == nil {
		loc, err := cfg.Location()
		if err != nil {
			return nil, err
		}
		host.Clock = Clock{Loc: loc}
	}
	if host.Rand == nil {
		host.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	excluded, err := cfg.Weekday()
	if err != nil {
		return nil, err
	}
	cal := calendar.New(excluded)

	r, err := loadRoster(cfg, logger)
	if err != nil {
		return nil, err
	}

	backend, closer, err := openBackend(cfg)
	if err != nil {
		return nil, err
	}
	fail := func(err error) (*App, error) {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, err
	}

	exceptions, err := store.OpenExceptionStore(backend, logger)
	if err != nil {
		return fail(err)
	}
	debtors, err := store.OpenDebtorStore(backend, r.Len(), r.IndexOf, logger)
	if err != nil {
		return fail(err)
	}
	dutySvc, err := duty.New(r, duty.Stores{
		Anchor:     store.NewAnchorStore(backend, logger),
		Exceptions: exceptions,
		Debtors:    debtors,
		SimDate:    store.NewSimDateStore(backend, logger),
	}, duty.Options{
		Calendar:       &cal,
		CarryOverLimit: cfg.CarryOverLimit,
		Clock:          host.Clock,
		Rand:           host.Rand,
		Logger:         logger,
	})
	if err != nil {
		return fail(err)
	}

	logger.Debug("app wired", "backend", cfg.Backend, "home", cfg.Home, "people", r.Len())
	return &App{
		Config:   cfg,
		Log:      logger,
		Duty:     dutySvc,
		Seeding:  seeding.New(dutySvc),
		Schedule: schedule.New(store.NewScheduleStore(backend, logger), logger),
		Guard:    NewGuard(cfg.Admins, cfg.AdminPassphraseHash),
		closer:   closer,
	}, nil
}

// ReloadRoster rereads the roster file into the duty service and returns the
// debtors that no longer match anyone.
func (a *App) ReloadRoster() (*roster.Roster, []string, error) {
	r, err := loadRoster(a.Config, a.Log)
	if err != nil {
		return nil, nil, err
	}
	dropped, err := a.Duty.ReloadRoster(r)
	if err != nil {
		return nil, nil, err
	}
	return r, dropped, nil
}

// Close releases the backend.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func loadRoster(cfg Config, logger *log.Logger) (*roster.Roster, error) {
	lines, err := store.LoadRosterFile(cfg.RosterPath())
	if err != nil {
		return nil, err
	}
	r := roster.New(lines)
	if len(lines) < 2 {
		logger.Warn("roster file has fewer than two people, using placeholder list", "path", cfg.RosterPath())
	}
	return r, nil
}
