package rotation_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
	"dutyroster/internal/rotation"
)

var anchor = calendar.Date(2024, time.January, 1) // Monday

func TestBasePair_FourPeopleScenario(t *testing.T) {
	cal := calendar.Default()
	names := []string{"A", "B", "C", "D"}

	assert.Equal(t, domain.NewPair("A", "B"), rotation.BasePair(cal, anchor, names, calendar.Date(2024, 1, 1)))
	assert.Equal(t, domain.NewPair("C", "D"), rotation.BasePair(cal, anchor, names, calendar.Date(2024, 1, 2)))
	assert.Equal(t, domain.NewPair("A", "B"), rotation.BasePair(cal, anchor, names, calendar.Date(2024, 1, 3)))
}

func TestBasePair_SundayDoesNotAdvance(t *testing.T) {
	cal := calendar.Default()
	names := []string{"A", "B", "C", "D", "E", "F"}

	// Sat 6th is working day 5, Mon 8th is working day 6.
	assert.Equal(t, domain.NewPair("E", "F"), rotation.BasePair(cal, anchor, names, calendar.Date(2024, 1, 6)))
	assert.Equal(t, domain.NewPair("A", "B"), rotation.BasePair(cal, anchor, names, calendar.Date(2024, 1, 8)))
}

func TestBasePair_BeforeAnchorIsFirstPair(t *testing.T) {
	cal := calendar.Default()
	names := []string{"A", "B", "C", "D"}
	assert.Equal(t, domain.NewPair("A", "B"), rotation.BasePair(cal, anchor, names, calendar.Date(2023, 12, 28)))
}

func TestBasePair_OddListWrapsLastWithFirst(t *testing.T) {
	cal := calendar.Default()
	names := []string{"A", "B", "C", "D", "E"}

	got := []domain.Pair{}
	d := anchor
	for i := 0; i < 4; i++ {
		got = append(got, rotation.BasePair(cal, anchor, names, d))
		d = cal.NextWorkday(d)
	}
	want := []domain.Pair{
		domain.NewPair("A", "B"),
		domain.NewPair("C", "D"),
		domain.NewPair("E", "A"),
		domain.NewPair("A", "B"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("odd rotation mismatch (-want +got):\n%s", diff)
	}
}

func TestBasePair_Deterministic(t *testing.T) {
	cal := calendar.Default()
	names := []string{"A", "B", "C", "D", "E", "F", "G"}
	d := calendar.Date(2024, 5, 17)
	assert.Equal(t, rotation.BasePair(cal, anchor, names, d), rotation.BasePair(cal, anchor, names, d))
}

func TestCycleCoverage(t *testing.T) {
	cal := calendar.Default()
	for n := 2; n <= 9; n++ {
		m := rotation.CycleLength(n)
		seen := map[int]bool{}
		d := anchor
		for step := 0; step < m; step++ {
			idx := rotation.PairIndex(cal, anchor, n, d)
			assert.Equal(t, step, idx, "n=%d", n)
			seen[idx] = true

			i, j := rotation.Indices(n, idx)
			assert.Equal(t, 2*idx, i)
			assert.Equal(t, (i+1)%n, j)
			d = cal.NextWorkday(d)
		}
		assert.Len(t, seen, m, "n=%d", n)
		assert.Equal(t, 0, rotation.PairIndex(cal, anchor, n, d), "cycle restarts, n=%d", n)
	}
}
