package interfaces

import (
	"time"

	domaintypes "dutyroster/internal/domain/types"
)

// DocumentBackend is an opaque key-value document store. Write replaces the
// whole document in one step.
type DocumentBackend interface {
	Read(key string) ([]byte, bool, error)
	Write(key string, body []byte) error
	Delete(key string) error
}

// AnchorStore persists the rotation anchor date.
type AnchorStore interface {
	LoadAnchor() (time.Time, bool, error)
	SaveAnchor(d time.Time) error
}

// ExceptionStore persists per-date pair overrides.
type ExceptionStore interface {
	GetException(d time.Time) (domaintypes.Pair, bool)
	SetException(d time.Time, p domaintypes.Pair) error
	ClearException(d time.Time) error
	WipeExceptions() error
	Exceptions() map[string]domaintypes.Pair
}

// DebtorQueue persists the set of people owing a makeup duty.
type DebtorQueue interface {
	AddDebtor(idx int) error
	RemoveDebtor(idx int) error
	ListDebtors() []int
	PickRandomDebtor(rng Rand) (int, error)
	ReplaceDebtors(indices []int) error
	WipeDebtors() error
}

// SimDateStore persists the optional simulated "today".
type SimDateStore interface {
	LoadSimDate() (time.Time, bool, error)
	SaveSimDate(d time.Time) error
	ClearSimDate() error
}

// ScheduleStore persists the lesson schedule.
type ScheduleStore interface {
	LoadSchedule() (domaintypes.Schedule, error)
	SaveSchedule(s domaintypes.Schedule) error
}
