package store

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"dutyroster/internal/domain"
)

const anchorDoc = "start_date.txt"

// AnchorStore persists the rotation's day zero.
type AnchorStore struct {
	b   domain.DocumentBackend
	log *log.Logger
	mu  sync.Mutex
}

// NewAnchorStore returns an AnchorStore over b.
func NewAnchorStore(b domain.DocumentBackend, logger *log.Logger) *AnchorStore {
	return &AnchorStore{b: b, log: orDiscard(logger)}
}

// LoadAnchor returns the stored anchor and whether one was present and valid.
func (s *AnchorStore) LoadAnchor() (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok, err := readDate(s.b, anchorDoc)
	if err != nil {
		return time.Time{}, false, recoverCorrupt(s.log, err)
	}
	return d, ok, nil
}

// SaveAnchor replaces the stored anchor.
func (s *AnchorStore) SaveAnchor(d time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeDate(s.b, anchorDoc, d)
}

// Compile-time assertion that AnchorStore implements domain.AnchorStore.
var _ domain.AnchorStore = (*AnchorStore)(nil)
