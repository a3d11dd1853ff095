package duty

import (
	"time"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
	"dutyroster/internal/roster"
)

// FullReset restarts the rotation from the real clock's today, forgetting
// every override, debt and simulated date.
func (s *Service) FullReset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.realToday()
	if err := s.anchors.SaveAnchor(today); err != nil {
		return err
	}
	s.anchor = today
	if err := s.exceptions.WipeExceptions(); err != nil {
		return err
	}
	if err := s.debtors.WipeDebtors(); err != nil {
		return err
	}
	if err := s.sim.ClearSimDate(); err != nil {
		return err
	}
	s.log.Warn("full reset", "anchor", calendar.FormatDate(today))
	return nil
}

// ShiftAnchor moves the anchor n working days back, so a positive n advances
// the rotation by n pairs. Negative n moves it forward.
func (s *Service) ShiftAnchor(n int) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cal.ShiftWorkdays(s.anchor, -n)
	if err := s.anchors.SaveAnchor(next); err != nil {
		return time.Time{}, err
	}
	s.anchor = next
	s.log.Info("shifted anchor", "by", n, "anchor", calendar.FormatDate(next))
	return next, nil
}

// StepDay moves the simulated date delta working days from Today and
// persists it.
func (s *Service) StepDay(delta int) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today, err := s.Today()
	if err != nil {
		return time.Time{}, err
	}
	next := s.cal.ShiftWorkdays(today, delta)
	if err := s.sim.SaveSimDate(next); err != nil {
		return time.Time{}, err
	}
	s.log.Debug("simulated date", "date", calendar.FormatDate(next))
	return next, nil
}

// ClearSimulatedDate returns Today to the real clock.
func (s *Service) ClearSimulatedDate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sim.ClearSimDate()
}

// ReloadRoster swaps in a new duty list. Debtor indices are remapped by name;
// people missing from the new list lose their debt and are reported.
func (s *Service) ReloadRoster(next *roster.Roster) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept, dropped := next.Remap(s.roster, s.debtors.ListDebtors())
	if err := s.debtors.ReplaceDebtors(kept); err != nil {
		return nil, err
	}
	s.roster = next
	for _, name := range dropped {
		s.log.Warn("debtor dropped on roster reload", "name", name)
	}
	s.log.Info("roster reloaded", "people", next.Len())
	return dropped, nil
}

// Realign asks anchorFor for a new anchor and clears any override on date,
// so the canonical rotation takes effect there. anchorFor runs under the
// write lock against the duty list in force; when it fails nothing changes.
func (s *Service) Realign(date time.Time, anchorFor func(*roster.Roster, calendar.Calendar) (time.Time, error)) (time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	anchor, err := anchorFor(s.roster, s.cal)
	if err != nil {
		return time.Time{}, err
	}
	if err := s.anchors.SaveAnchor(anchor); err != nil {
		return time.Time{}, err
	}
	s.anchor = anchor
	if err := s.exceptions.ClearException(date); err != nil {
		return time.Time{}, err
	}
	s.log.Info("realigned rotation", "anchor", calendar.FormatDate(anchor), "date", calendar.FormatDate(date))
	return anchor, nil
}

// FixPair pins p on d without touching the anchor.
func (s *Service) FixPair(d time.Time, p domain.Pair) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.exceptions.SetException(d, p); err != nil {
		return err
	}
	s.log.Info("fixed pair", "date", calendar.FormatDate(d), "pair", p.String())
	return nil
}
