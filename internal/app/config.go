package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"dutyroster/internal/calendar"
	"dutyroster/internal/services/duty"
)

// Backends understood by Config.Backend.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home string `yaml:"-"` // state directory, e.g. $HOME/.dutyroster

	Backend             string  `yaml:"backend"`
	Timezone            string  `yaml:"timezone"`
	ExcludedWeekday     string  `yaml:"excluded_weekday"`
	RosterFile          string  `yaml:"roster_file"`
	CarryOverLimit      int     `yaml:"carry_over_limit"`
	LogLevel            string  `yaml:"log_level"`
	Admins              []int64 `yaml:"admins"`
	AdminPassphraseHash string  `yaml:"admin_passphrase_hash"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig(home string) Config {
	return Config{
		Home:            home,
		Backend:         BackendFile,
		Timezone:        "Europe/Moscow",
		ExcludedWeekday: "sunday",
		RosterFile:      "students.txt",
		CarryOverLimit:  duty.DefaultCarryOverLimit,
		LogLevel:        "info",
	}
}

// LoadConfig reads path over the defaults. A missing file yields the
// defaults unchanged.
func LoadConfig(home, path string) (Config, error) {
	cfg := DefaultConfig(home)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Home = home
	return cfg, cfg.Validate()
}

// Validate checks every field that has a fixed vocabulary.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown backend %q (want %s or %s)", c.Backend, BackendFile, BackendSQLite)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := c.Weekday(); err != nil {
		return fmt.Errorf("config: excluded_weekday: %w", err)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.CarryOverLimit < 0 {
		return fmt.Errorf("config: carry_over_limit must not be negative")
	}
	return nil
}

// Location resolves Timezone. Empty means UTC.
func (c Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: timezone: %w", err)
	}
	return loc, nil
}

// Weekday resolves ExcludedWeekday.
func (c Config) Weekday() (time.Weekday, error) {
	return calendar.ParseWeekday(c.ExcludedWeekday)
}

// Level resolves LogLevel.
func (c Config) Level() (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("config: log_level: %w", err)
	}
	return lvl, nil
}

// RosterPath returns RosterFile, resolved against Home when relative.
func (c Config) RosterPath() string {
	if filepath.IsAbs(c.RosterFile) {
		return c.RosterFile
	}
	return filepath.Join(c.Home, c.RosterFile)
}

// DatabasePath is the SQLite file used by the sqlite backend.
func (c Config) DatabasePath() string {
	return filepath.Join(c.Home, "dutyroster.db")
}
