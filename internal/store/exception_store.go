package store

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
)

const exceptionsDoc = "exceptions.json"

// ExceptionStore keeps per-date pair overrides in memory and writes the whole
// document on every change.
type ExceptionStore struct {
	b   domain.DocumentBackend
	log *log.Logger

	mu sync.Mutex
	m  map[string]domain.Pair
}

// OpenExceptionStore loads exceptions.json from b. Malformed entries are
// dropped with a warning.
func OpenExceptionStore(b domain.DocumentBackend, logger *log.Logger) (*ExceptionStore, error) {
	s := &ExceptionStore{b: b, log: orDiscard(logger), m: make(map[string]domain.Pair)}

	raw := map[string][]string{}
	if _, err := readJSON(b, exceptionsDoc, &raw); err != nil {
		if err := recoverCorrupt(s.log, err); err != nil {
			return nil, err
		}
		return s, nil
	}
	for key, names := range raw {
		if _, err := calendar.ParseDate(key); err != nil || len(names) != 2 {
			s.log.Warn("dropping malformed exception", "date", key, "names", names)
			continue
		}
		s.m[key] = domain.NewPair(names[0], names[1])
	}
	return s, nil
}

// GetException returns the override for d, if any.
func (s *ExceptionStore) GetException(d time.Time) (domain.Pair, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.m[calendar.FormatDate(d)]
	return p, ok
}

// SetException upserts the override for d and persists it.
func (s *ExceptionStore) SetException(d time.Time, p domain.Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := calendar.FormatDate(d)
	prev, had := s.m[key]
	s.m[key] = p
	if err := s.save(); err != nil {
		if had {
			s.m[key] = prev
		} else {
			delete(s.m, key)
		}
		return err
	}
	return nil
}

// ClearException removes the override for d; absent entries are a no-op.
func (s *ExceptionStore) ClearException(d time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := calendar.FormatDate(d)
	prev, had := s.m[key]
	if !had {
		return nil
	}
	delete(s.m, key)
	if err := s.save(); err != nil {
		s.m[key] = prev
		return err
	}
	return nil
}

// WipeExceptions removes every override.
func (s *ExceptionStore) WipeExceptions() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.m
	s.m = make(map[string]domain.Pair)
	if err := s.save(); err != nil {
		s.m = prev
		return err
	}
	return nil
}

// Exceptions returns a snapshot keyed by YYYY-MM-DD.
func (s *ExceptionStore) Exceptions() map[string]domain.Pair {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]domain.Pair, len(s.m))
	for k, v := range s.m {
		out[k] = v
	}
	return out
}

func (s *ExceptionStore) save() error {
	return writeJSON(s.b, exceptionsDoc, s.m)
}

// Compile-time assertion that ExceptionStore implements domain.ExceptionStore.
var _ domain.ExceptionStore = (*ExceptionStore)(nil)
