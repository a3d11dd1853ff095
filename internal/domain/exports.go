package domain

import (
	interfaces "dutyroster/internal/domain/interfaces"
	types "dutyroster/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Pair     = types.Pair
	DayPair  = types.DayPair
	Debtor   = types.Debtor
	Schedule = types.Schedule
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	DocumentBackend = interfaces.DocumentBackend
	AnchorStore     = interfaces.AnchorStore
	ExceptionStore  = interfaces.ExceptionStore
	DebtorQueue     = interfaces.DebtorQueue
	SimDateStore    = interfaces.SimDateStore
	ScheduleStore   = interfaces.ScheduleStore
	Clock           = interfaces.Clock
	Rand            = interfaces.Rand
)

// NewPair builds a Pair from two names.
func NewPair(first, second string) Pair { return types.NewPair(first, second) }
