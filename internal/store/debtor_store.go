package store

import (
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"dutyroster/internal/domain"
)

const debtorsDoc = "debtors.json"

// NameResolver maps a legacy name entry to a duty list index.
type NameResolver func(name string) (int, error)

// DebtorStore is the persisted debtor queue: a set of duty list indices kept
// in insertion order for display.
type DebtorStore struct {
	b   domain.DocumentBackend
	log *log.Logger

	mu      sync.Mutex
	indices []int
}

// OpenDebtorStore loads debtors.json from b.
//
// Integer entries outside [0, n) are dropped. Legacy string entries are
// resolved through resolve and dropped when they do not match anyone. When
// loading changed the document it is written back in normalized form.
func OpenDebtorStore(b domain.DocumentBackend, n int, resolve NameResolver, logger *log.Logger) (*DebtorStore, error) {
	s := &DebtorStore{b: b, log: orDiscard(logger)}

	var raw []json.RawMessage
	if _, err := readJSON(b, debtorsDoc, &raw); err != nil {
		if err := recoverCorrupt(s.log, err); err != nil {
			return nil, err
		}
		return s, nil
	}

	dirty := false
	for _, item := range raw {
		idx, legacy, err := decodeDebtorEntry(item, n, resolve)
		if legacy {
			dirty = true
		}
		if err != nil {
			s.log.Warn("dropping debtor entry", "entry", string(item), "err", err)
			dirty = true
			continue
		}
		if slices.Contains(s.indices, idx) {
			dirty = true
			continue
		}
		s.indices = append(s.indices, idx)
	}
	if dirty {
		if err := s.save(); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// decodeDebtorEntry reads one entry; legacy reports a name entry that was
// (or failed to be) converted to an index.
func decodeDebtorEntry(item json.RawMessage, n int, resolve NameResolver) (idx int, legacy bool, err error) {
	if err := json.Unmarshal(item, &idx); err == nil {
		if idx < 0 || idx >= n {
			return 0, false, fmt.Errorf("%w: index %d", domain.ErrNotFound, idx)
		}
		return idx, false, nil
	}
	var name string
	if err := json.Unmarshal(item, &name); err != nil {
		return 0, false, fmt.Errorf("%w: unsupported entry", domain.ErrCorruptState)
	}
	if resolve == nil {
		return 0, true, fmt.Errorf("%w: %q", domain.ErrNotFound, name)
	}
	idx, err = resolve(name)
	return idx, true, err
}

// AddDebtor records idx; already present is a no-op.
func (s *DebtorStore) AddDebtor(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.indices, idx) {
		return nil
	}
	s.indices = append(s.indices, idx)
	if err := s.save(); err != nil {
		s.indices = s.indices[:len(s.indices)-1]
		return err
	}
	return nil
}

// RemoveDebtor drops idx; absent is a no-op.
func (s *DebtorStore) RemoveDebtor(idx int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos := slices.Index(s.indices, idx)
	if pos < 0 {
		return nil
	}
	prev := s.indices
	s.indices = slices.Delete(slices.Clone(s.indices), pos, pos+1)
	if err := s.save(); err != nil {
		s.indices = prev
		return err
	}
	return nil
}

// ListDebtors returns the indices in insertion order.
func (s *DebtorStore) ListDebtors() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.indices)
}

// PickRandomDebtor returns a uniformly chosen member.
func (s *DebtorStore) PickRandomDebtor(rng domain.Rand) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.indices) == 0 {
		return 0, domain.ErrEmptyQueue
	}
	return s.indices[rng.Intn(len(s.indices))], nil
}

// ReplaceDebtors swaps the whole set, collapsing duplicates.
func (s *DebtorStore) ReplaceDebtors(indices []int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]int, 0, len(indices))
	for _, idx := range indices {
		if !slices.Contains(next, idx) {
			next = append(next, idx)
		}
	}
	prev := s.indices
	s.indices = next
	if err := s.save(); err != nil {
		s.indices = prev
		return err
	}
	return nil
}

// WipeDebtors empties the queue.
func (s *DebtorStore) WipeDebtors() error {
	return s.ReplaceDebtors(nil)
}

func (s *DebtorStore) save() error {
	out := s.indices
	if out == nil {
		out = []int{}
	}
	return writeJSON(s.b, debtorsDoc, out)
}

// Compile-time assertion that DebtorStore implements domain.DebtorQueue.
var _ domain.DebtorQueue = (*DebtorStore)(nil)
