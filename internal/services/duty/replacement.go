package duty

import (
	"fmt"
	"time"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
	"dutyroster/internal/roster"
)

// Replacement describes the outcome of a debtor swap.
type Replacement struct {
	Date      time.Time
	Debtor    string
	Displaced string
	Pair      domain.Pair
	// CarriedTo is the working day the displaced person was moved onto.
	// Zero when no day needed patching within the carry-over limit.
	CarriedTo time.Time
}

// Carried reports whether the displaced person was installed on a later day.
func (r Replacement) Carried() bool { return !r.CarriedTo.IsZero() }

// NextReplacement picks the person closest after absentIdx in list order who
// is not already in current. With every candidate excluded it falls back to
// the immediate successor.
func (s *Service) NextReplacement(absentIdx int, current domain.Pair) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return nextReplacement(s.roster, absentIdx, current)
}

func nextReplacement(r *roster.Roster, absentIdx int, current domain.Pair) int {
	n := r.Len()
	for k := 1; k <= n; k++ {
		cand := (absentIdx + k) % n
		if !current.Contains(r.Name(cand)) {
			return cand
		}
	}
	return (absentIdx + 1) % n
}

// MarkAbsent records name as absent on d. The person joins the debtor queue
// and the day's pair is patched with their nearest replacement. Marking the
// same person twice is idempotent. A name that is not in the day's pair still
// becomes a debtor; the pair is pinned unchanged.
func (s *Service) MarkAbsent(d time.Time, name string) (domain.Pair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, err := s.roster.IndexOf(name)
	if err != nil {
		return domain.Pair{}, err
	}
	absent := s.roster.Name(idx)
	current := s.pairLocked(d)

	if err := s.debtors.AddDebtor(idx); err != nil {
		return domain.Pair{}, err
	}
	repl := s.roster.Name(nextReplacement(s.roster, idx, current))
	corrected := current.Substitute(absent, repl)
	if err := s.exceptions.SetException(d, corrected); err != nil {
		return domain.Pair{}, err
	}

	s.log.Info("marked absent",
		"date", calendar.FormatDate(d), "absent", absent, "replacement", repl, "pair", corrected.String())
	return corrected, nil
}

// CarryOver moves person onto the nearest working day after from where the
// canonical rotation does not already schedule them. It returns the patched
// day, or ok=false when nothing needed patching within the carry-over limit.
func (s *Service) CarryOver(person string, from time.Time) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carryOverLocked(person, from)
}

func (s *Service) carryOverLocked(person string, from time.Time) (time.Time, bool, error) {
	day := s.cal.NextWorkday(from)
	for tried := 0; tried < s.carryLimit; tried++ {
		base := s.basePairLocked(day)
		if base.Contains(person) {
			return time.Time{}, false, nil
		}

		override, ok := s.exceptions.GetException(day)
		if !ok {
			partner := base.Partner(person)
			if partner == "" {
				partner = s.nearestOther(person)
			}
			p := domain.NewPair(person, partner)
			if err := s.exceptions.SetException(day, p); err != nil {
				return time.Time{}, false, err
			}
			s.log.Info("carried over",
				"person", person, "date", calendar.FormatDate(day), "pair", p.String())
			return day, true, nil
		}
		if override.Contains(person) {
			return time.Time{}, false, nil
		}
		day = s.cal.NextWorkday(day)
	}
	s.log.Warn("carry-over limit reached", "person", person, "from", calendar.FormatDate(from), "limit", s.carryLimit)
	return time.Time{}, false, nil
}

func (s *Service) nearestOther(person string) string {
	idx, err := s.roster.IndexOf(person)
	if err != nil {
		idx = 0
	}
	n := s.roster.Len()
	for k := 1; k <= n; k++ {
		if cand := s.roster.Name(idx + k); cand != person {
			return cand
		}
	}
	return s.roster.Name(idx + 1)
}

// ReplaceWithDebtor lets debtorIdx take target's slot on d, clears the debt
// and carries target forward. All checks run before the first write.
func (s *Service) ReplaceWithDebtor(debtorIdx int, target string, d time.Time) (Replacement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.roster.Valid(debtorIdx) {
		return Replacement{}, fmt.Errorf("%w: debtor #%d", domain.ErrNotFound, debtorIdx)
	}
	debtor := s.roster.Name(debtorIdx)

	pair := s.pairLocked(d)
	displaced, ok := slotFor(pair, target)
	if !ok {
		return Replacement{}, fmt.Errorf("%w: %s on %s", domain.ErrNotOnDuty, target, calendar.FormatDate(d))
	}
	if displaced != debtor && pair.Contains(debtor) {
		return Replacement{}, fmt.Errorf("%w: %s on %s", domain.ErrAlreadyOnDuty, debtor, calendar.FormatDate(d))
	}

	next := pair.Substitute(displaced, debtor)
	if err := s.exceptions.SetException(d, next); err != nil {
		return Replacement{}, err
	}
	if err := s.debtors.RemoveDebtor(debtorIdx); err != nil {
		return Replacement{}, err
	}
	out := Replacement{Date: d, Debtor: debtor, Displaced: displaced, Pair: next}
	s.log.Info("debtor repaid",
		"date", calendar.FormatDate(d), "debtor", debtor, "displaced", displaced, "pair", next.String())

	if displaced == debtor {
		return out, nil
	}
	carried, ok, err := s.carryOverLocked(displaced, d)
	if err != nil {
		return out, err
	}
	if ok {
		out.CarriedTo = carried
	}
	return out, nil
}

// PickRandomDebtor draws a debtor index from the queue.
func (s *Service) PickRandomDebtor() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.debtors.PickRandomDebtor(s.rng)
}

// PickRandomTarget draws one of the two people on duty on d.
func (s *Service) PickRandomTarget(d time.Time) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pairLocked(d)[s.rng.Intn(2)]
}

// slotFor returns the pair member matching name by canonical key.
func slotFor(p domain.Pair, name string) (string, bool) {
	key := roster.CanonicalKey(name)
	for _, slot := range p {
		if roster.CanonicalKey(slot) == key {
			return slot, true
		}
	}
	return "", false
}
