// Package schedule keeps the lesson list shown next to the day's pair.
package schedule

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
)

// Service reads and edits the lesson schedule.
type Service struct {
	mu    sync.Mutex
	store domain.ScheduleStore
	log   *log.Logger
}

// New returns a schedule Service over st.
func New(st domain.ScheduleStore, logger *log.Logger) *Service {
	return &Service{store: st, log: logger}
}

// ForDate returns the subjects for d. A per-date entry wins over the weekday
// list.
func (s *Service) ForDate(d time.Time) ([]string, error) {
	sched, err := s.store.LoadSchedule()
	if err != nil {
		return nil, err
	}
	if subjects, ok := sched.Dates[calendar.FormatDate(d)]; ok {
		return subjects, nil
	}
	return sched.Day(calendar.WeekdayKey(d)), nil
}

// SetWeekday replaces the list for a weekday given in English or Russian.
func (s *Service) SetWeekday(day string, subjects []string) (time.Weekday, error) {
	wd, err := calendar.ParseWeekday(day)
	if err != nil {
		return wd, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sched, err := s.store.LoadSchedule()
	if err != nil {
		return wd, err
	}
	if !sched.SetDay(calendar.WeekdayKeys[wd], subjects) {
		return wd, fmt.Errorf("%w: weekday %q", domain.ErrParse, day)
	}
	if err := s.store.SaveSchedule(sched); err != nil {
		return wd, err
	}
	if s.log != nil {
		s.log.Info("schedule updated", "weekday", calendar.WeekdayKeys[wd], "subjects", len(subjects))
	}
	return wd, nil
}

// SetDate pins the list for one date. An empty list removes the override.
func (s *Service) SetDate(d time.Time, subjects []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sched, err := s.store.LoadSchedule()
	if err != nil {
		return err
	}
	key := calendar.FormatDate(d)
	if len(subjects) == 0 {
		delete(sched.Dates, key)
	} else {
		sched.Dates[key] = subjects
	}
	if err := s.store.SaveSchedule(sched); err != nil {
		return err
	}
	if s.log != nil {
		s.log.Info("schedule updated", "date", key, "subjects", len(subjects))
	}
	return nil
}

// ParseSubjects splits "a | b | c" into trimmed, non-empty subjects.
func ParseSubjects(text string) []string {
	var out []string
	for _, part := range strings.Split(text, "|") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
