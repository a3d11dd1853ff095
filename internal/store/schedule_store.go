package store

import (
	"sync"

	"github.com/charmbracelet/log"

	"dutyroster/internal/domain"
)

const scheduleDoc = "schedule.json"

// ScheduleStore persists the lesson schedule.
type ScheduleStore struct {
	b   domain.DocumentBackend
	log *log.Logger
	mu  sync.Mutex
}

// NewScheduleStore returns a ScheduleStore over b.
func NewScheduleStore(b domain.DocumentBackend, logger *log.Logger) *ScheduleStore {
	return &ScheduleStore{b: b, log: orDiscard(logger)}
}

// LoadSchedule returns the stored schedule, or an empty one.
func (s *ScheduleStore) LoadSchedule() (domain.Schedule, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sched domain.Schedule
	if _, err := readJSON(s.b, scheduleDoc, &sched); err != nil {
		if err := recoverCorrupt(s.log, err); err != nil {
			return domain.Schedule{}, err
		}
		sched = domain.Schedule{}
	}
	if sched.Dates == nil {
		sched.Dates = map[string][]string{}
	}
	return sched, nil
}

// SaveSchedule replaces the stored schedule.
func (s *ScheduleStore) SaveSchedule(sched domain.Schedule) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return writeJSON(s.b, scheduleDoc, sched)
}

// Compile-time assertion that ScheduleStore implements domain.ScheduleStore.
var _ domain.ScheduleStore = (*ScheduleStore)(nil)
