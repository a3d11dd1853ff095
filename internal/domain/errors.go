package domain

import "errors"

var (
	// ErrNotFound is returned when a name or index does not resolve against
	// the duty list.
	ErrNotFound = errors.New("not found in duty list")

	// ErrNotAdjacent is returned by seeding when the stated pair is not one
	// the rotation would ever produce.
	ErrNotAdjacent = errors.New("pair is not canonically adjacent")

	// ErrParse covers malformed dates, weekdays and seed arguments.
	ErrParse = errors.New("parse error")

	// ErrEmptyQueue is returned by a random debtor pick with no debtors.
	ErrEmptyQueue = errors.New("debtor queue is empty")

	// ErrCorruptState marks a persisted document that failed to decode.
	// Stores recover from it locally and never return it to callers.
	ErrCorruptState = errors.New("corrupt persisted state")

	// ErrNotOnDuty is returned when the person to replace is not in the
	// day's pair.
	ErrNotOnDuty = errors.New("person is not on duty that day")

	// ErrAlreadyOnDuty is returned when a substitute already holds the
	// other slot of the day's pair.
	ErrAlreadyOnDuty = errors.New("person is already on duty that day")

	// ErrForbidden is returned when an unprivileged caller attempts a
	// mutating operation.
	ErrForbidden = errors.New("caller is not privileged")
)
