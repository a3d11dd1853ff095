// Package rotation computes the canonical duty pair for a date.
//
// The canonical pair depends only on the anchor date, the duty list and the
// target date. Consecutive working days walk through the pairs (0,1), (2,3),
// ... and start over after CycleLength pairs. With an odd list the last pair
// wraps around to (n-1, 0); that wraparound is part of the rotation.
package rotation

import (
	"time"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
)

// CycleLength returns how many distinct pairs a list of n people forms.
func CycleLength(n int) int { return (n + 1) / 2 }

// PairIndex returns the position in the cycle for date. Dates on or before
// the anchor map to 0.
func PairIndex(cal calendar.Calendar, anchor time.Time, n int, date time.Time) int {
	steps := cal.WorkingDaysBetween(anchor, date)
	return steps % CycleLength(n)
}

// Indices returns the list positions of the pair at pairIndex.
func Indices(n, pairIndex int) (i, j int) {
	i = (2 * pairIndex) % n
	j = (i + 1) % n
	return i, j
}

// BasePair computes the override-free pair for date.
func BasePair(cal calendar.Calendar, anchor time.Time, names []string, date time.Time) domain.Pair {
	n := len(names)
	i, j := Indices(n, PairIndex(cal, anchor, n, date))
	return domain.NewPair(names[i], names[j])
}
