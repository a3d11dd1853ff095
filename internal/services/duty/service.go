package duty

import (
	"io"
	"math/rand"
	"slices"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
	"dutyroster/internal/roster"
	"dutyroster/internal/rotation"
)

// DefaultCarryOverLimit bounds the forward carry-over walk in working days.
const DefaultCarryOverLimit = 180

// MaxUpcoming caps how many days Upcoming lists.
const MaxUpcoming = 60

// Stores bundles the persisted documents the service owns.
type Stores struct {
	Anchor     domain.AnchorStore
	Exceptions domain.ExceptionStore
	Debtors    domain.DebtorQueue
	SimDate    domain.SimDateStore
}

// Options tunes the service. Zero values pick defaults.
type Options struct {
	Calendar       *calendar.Calendar
	CarryOverLimit int
	Clock          domain.Clock
	Rand           domain.Rand
	Logger         *log.Logger
}

// Service is the rotation state aggregate.
type Service struct {
	mu sync.RWMutex

	cal        calendar.Calendar
	roster     *roster.Roster
	anchor     time.Time
	carryLimit int

	anchors    domain.AnchorStore
	exceptions domain.ExceptionStore
	debtors    domain.DebtorQueue
	sim        domain.SimDateStore

	clock domain.Clock
	rng   domain.Rand
	log   *log.Logger
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// New loads the anchor (persisting the first-of-month default on first run)
// and returns a ready Service.
func New(r *roster.Roster, st Stores, opts Options) (*Service, error) {
	s := &Service{
		cal:        calendar.Default(),
		roster:     r,
		carryLimit: opts.CarryOverLimit,
		anchors:    st.Anchor,
		exceptions: st.Exceptions,
		debtors:    st.Debtors,
		sim:        st.SimDate,
		clock:      opts.Clock,
		rng:        opts.Rand,
		log:        opts.Logger,
	}
	if opts.Calendar != nil {
		s.cal = *opts.Calendar
	}
	if s.carryLimit <= 0 {
		s.carryLimit = DefaultCarryOverLimit
	}
	if s.clock == nil {
		s.clock = systemClock{}
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.log == nil {
		s.log = log.New(io.Discard)
	}

	anchor, ok, err := s.anchors.LoadAnchor()
	if err != nil {
		return nil, err
	}
	if !ok {
		anchor = calendar.FirstOfMonth(s.realToday())
		if err := s.anchors.SaveAnchor(anchor); err != nil {
			return nil, err
		}
		s.log.Info("initialized anchor date", "anchor", calendar.FormatDate(anchor))
	}
	s.anchor = anchor
	return s, nil
}

func (s *Service) realToday() time.Time { return calendar.Truncate(s.clock.Now()) }

// Roster returns the current duty list.
func (s *Service) Roster() *roster.Roster {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster
}

// Anchor returns the rotation's day zero.
func (s *Service) Anchor() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.anchor
}

// Today returns the simulated date when one is set, else the clock's date.
func (s *Service) Today() (time.Time, error) {
	d, ok, err := s.sim.LoadSimDate()
	if err != nil {
		return time.Time{}, err
	}
	if ok {
		return d, nil
	}
	return s.realToday(), nil
}

// Tomorrow returns the working day after Today.
func (s *Service) Tomorrow() (time.Time, error) {
	d, err := s.Today()
	if err != nil {
		return time.Time{}, err
	}
	return s.cal.NextWorkday(d), nil
}

// BasePair returns the canonical pair for d, ignoring exceptions.
func (s *Service) BasePair(d time.Time) domain.Pair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.basePairLocked(d)
}

// Pair returns the pair on duty for d: the exception if present, else the
// canonical pair.
func (s *Service) Pair(d time.Time) domain.Pair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pairLocked(d)
}

// Day resolves d into a DayPair.
func (s *Service) Day(d time.Time) domain.DayPair {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dayLocked(d)
}

// Upcoming lists the pairs for count working days starting at from (or the
// next working day when from is excluded). count is clamped to
// [0, MaxUpcoming].
func (s *Service) Upcoming(from time.Time, count int) []domain.DayPair {
	count = min(max(count, 0), MaxUpcoming)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.DayPair, 0, count)
	d := s.cal.FirstWorkdayFrom(from)
	for i := 0; i < count; i++ {
		out = append(out, s.dayLocked(d))
		d = s.cal.NextWorkday(d)
	}
	return out
}

// Debtors lists the debtor queue with names, in insertion order.
func (s *Service) Debtors() []domain.Debtor {
	s.mu.RLock()
	defer s.mu.RUnlock()

	indices := s.debtors.ListDebtors()
	out := make([]domain.Debtor, 0, len(indices))
	for _, idx := range indices {
		if !s.roster.Valid(idx) {
			continue
		}
		out = append(out, domain.Debtor{Index: idx, Name: s.roster.Name(idx)})
	}
	return out
}

// Overrides lists every pinned day in date order.
func (s *Service) Overrides() []domain.DayPair {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.exceptions.Exceptions()
	out := make([]domain.DayPair, 0, len(all))
	for key, p := range all {
		d, err := calendar.ParseDate(key)
		if err != nil {
			continue
		}
		out = append(out, domain.DayPair{Date: d, Pair: p, Override: true})
	}
	slices.SortFunc(out, func(a, b domain.DayPair) int { return a.Date.Compare(b.Date) })
	return out
}

// ResolveName maps free-form input to a listed name.
func (s *Service) ResolveName(text string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roster.Resolve(text)
}

func (s *Service) basePairLocked(d time.Time) domain.Pair {
	return rotation.BasePair(s.cal, s.anchor, s.roster.Names(), d)
}

func (s *Service) pairLocked(d time.Time) domain.Pair {
	if p, ok := s.exceptions.GetException(d); ok {
		return p
	}
	return s.basePairLocked(d)
}

func (s *Service) dayLocked(d time.Time) domain.DayPair {
	if p, ok := s.exceptions.GetException(d); ok {
		return domain.DayPair{Date: d, Pair: p, Override: true}
	}
	return domain.DayPair{Date: d, Pair: s.basePairLocked(d)}
}
