package store

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"dutyroster/internal/domain"
)

const simDateDoc = "sim_date.txt"

// SimDateStore persists the optional simulated "today".
type SimDateStore struct {
	b   domain.DocumentBackend
	log *log.Logger
	mu  sync.Mutex
}

// NewSimDateStore returns a SimDateStore over b.
func NewSimDateStore(b domain.DocumentBackend, logger *log.Logger) *SimDateStore {
	return &SimDateStore{b: b, log: orDiscard(logger)}
}

// LoadSimDate returns the simulated date, if one is set and readable.
func (s *SimDateStore) LoadSimDate() (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok, err := readDate(s.b, simDateDoc)
	if err != nil {
		return time.Time{}, false, recoverCorrupt(s.log, err)
	}
	return d, ok, nil
}

// SaveSimDate sets the simulated date.
func (s *SimDateStore) SaveSimDate(d time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeDate(s.b, simDateDoc, d)
}

// ClearSimDate goes back to the real clock.
func (s *SimDateStore) ClearSimDate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.b.Delete(simDateDoc)
}

// Compile-time assertion that SimDateStore implements domain.SimDateStore.
var _ domain.SimDateStore = (*SimDateStore)(nil)
