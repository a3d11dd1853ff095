package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
)

func day(y int, m time.Month, d int) time.Time { return calendar.Date(y, m, d) }

func TestIsNonWorkingDay_Sunday(t *testing.T) {
	cal := calendar.Default()
	assert.True(t, cal.IsNonWorkingDay(day(2024, 1, 7)))
	assert.False(t, cal.IsNonWorkingDay(day(2024, 1, 6)))
	assert.False(t, cal.IsNonWorkingDay(day(2024, 1, 8)))
}

func TestNextPrevWorkday_SkipExcludedDay(t *testing.T) {
	cal := calendar.Default()

	assert.Equal(t, day(2024, 1, 8), cal.NextWorkday(day(2024, 1, 6)))
	assert.Equal(t, day(2024, 1, 8), cal.NextWorkday(day(2024, 1, 7)))
	assert.Equal(t, day(2024, 1, 3), cal.NextWorkday(day(2024, 1, 2)))

	assert.Equal(t, day(2024, 1, 6), cal.PrevWorkday(day(2024, 1, 8)))
	assert.Equal(t, day(2024, 1, 6), cal.PrevWorkday(day(2024, 1, 7)))
	assert.Equal(t, day(2024, 1, 9), cal.PrevWorkday(day(2024, 1, 10)))
}

func TestNextWorkday_OtherExcludedDay(t *testing.T) {
	cal := calendar.New(time.Saturday)
	assert.Equal(t, day(2024, 1, 7), cal.NextWorkday(day(2024, 1, 5)))
}

func TestWorkingDaysBetween_KnownValues(t *testing.T) {
	cal := calendar.Default()
	cases := []struct {
		name   string
		d0, d1 time.Time
		want   int
	}{
		{"same day", day(2024, 1, 1), day(2024, 1, 1), 0},
		{"reversed", day(2024, 1, 10), day(2024, 1, 1), 0},
		{"one day", day(2024, 1, 1), day(2024, 1, 2), 1},
		{"one week", day(2024, 1, 1), day(2024, 1, 8), 6},
		{"two weeks", day(2024, 1, 1), day(2024, 1, 15), 12},
		{"across sunday", day(2024, 1, 6), day(2024, 1, 9), 2},
		{"from sunday", day(2024, 1, 7), day(2024, 1, 8), 0},
		{"leap february", day(2024, 2, 26), day(2024, 3, 4), 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cal.WorkingDaysBetween(tc.d0, tc.d1))
		})
	}
}

func TestWorkingDaysBetween_MatchesDayByDayCount(t *testing.T) {
	for _, excluded := range []time.Weekday{time.Sunday, time.Wednesday, time.Saturday} {
		cal := calendar.New(excluded)
		start := day(2023, 12, 20)
		for offset := 0; offset < 10; offset++ {
			d0 := start.AddDate(0, 0, offset)
			for span := 0; span < 40; span++ {
				d1 := d0.AddDate(0, 0, span)
				want := 0
				for cur := d0; cur.Before(d1); cur = cur.AddDate(0, 0, 1) {
					if cur.Weekday() != excluded {
						want++
					}
				}
				require.Equal(t, want, cal.WorkingDaysBetween(d0, d1),
					"excluded=%s d0=%s span=%d", excluded, calendar.FormatDate(d0), span)
			}
		}
	}
}

func TestWorkingDaysBetween_CenturiesApart(t *testing.T) {
	cal := calendar.Default()
	d0 := day(2024, 1, 1)
	d1 := day(2400, 1, 3)

	want := 0
	for cur := d0; cur.Before(d1); cur = cur.AddDate(0, 0, 1) {
		if !cal.IsNonWorkingDay(cur) {
			want++
		}
	}
	assert.Equal(t, want, cal.WorkingDaysBetween(d0, d1))
	assert.Equal(t, 137333, calendar.DaysBetween(d0, d1))
	assert.Equal(t, -137333, calendar.DaysBetween(d1, d0))
}

func TestBackAndShiftWorkdays(t *testing.T) {
	cal := calendar.Default()

	assert.Equal(t, day(2024, 1, 10), cal.BackWorkdays(day(2024, 1, 10), 0))
	assert.Equal(t, day(2024, 1, 9), cal.BackWorkdays(day(2024, 1, 10), 1))
	assert.Equal(t, day(2024, 1, 6), cal.BackWorkdays(day(2024, 1, 9), 2))

	assert.Equal(t, day(2024, 1, 8), cal.ShiftWorkdays(day(2024, 1, 10), -2))
	assert.Equal(t, day(2024, 1, 8), cal.ShiftWorkdays(day(2024, 1, 6), 1))
	assert.Equal(t, day(2024, 1, 6), cal.ShiftWorkdays(day(2024, 1, 6), 0))
}

func TestFirstWorkdayFrom(t *testing.T) {
	cal := calendar.Default()
	assert.Equal(t, day(2024, 1, 8), cal.FirstWorkdayFrom(day(2024, 1, 7)))
	assert.Equal(t, day(2024, 1, 6), cal.FirstWorkdayFrom(day(2024, 1, 6)))
}

func TestTruncate_KeepsCivilDate(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	late := time.Date(2024, 3, 1, 1, 30, 0, 0, msk) // still Feb 29 in UTC
	assert.Equal(t, day(2024, 3, 1), calendar.Truncate(late))
}

func TestParseDate(t *testing.T) {
	got, err := calendar.ParseDate("2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, day(2024, 1, 10), got)
	assert.Equal(t, "2024-01-10", calendar.FormatDate(got))
	assert.Equal(t, "10.01.2024", calendar.FormatDisplay(got))

	_, err = calendar.ParseDate("10.01.2024")
	assert.ErrorIs(t, err, domain.ErrParse)
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]time.Weekday{
		"пн":      time.Monday,
		"Среда":   time.Wednesday,
		"sunday":  time.Sunday,
		" SAT ":   time.Saturday,
		"четверг": time.Thursday,
	}
	for in, want := range cases {
		got, err := calendar.ParseWeekday(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := calendar.ParseWeekday("someday")
	assert.ErrorIs(t, err, domain.ErrParse)
}
