package calendar

import (
	"fmt"
	"strings"
	"time"

	"dutyroster/internal/domain"
)

// Layout is the ISO calendar key used in persisted documents.
const Layout = "2006-01-02"

// DisplayLayout is the day.month.year form shown to people.
const DisplayLayout = "02.01.2006"

// Calendar counts working days, skipping one excluded weekday.
type Calendar struct {
	Excluded time.Weekday
}

// New returns a Calendar that excludes the given weekday.
func New(excluded time.Weekday) Calendar {
	return Calendar{Excluded: excluded}
}

// Default excludes Sunday.
func Default() Calendar { return New(time.Sunday) }

// IsNonWorkingDay reports whether d falls on the excluded weekday.
func (c Calendar) IsNonWorkingDay(d time.Time) bool {
	return d.Weekday() == c.Excluded
}

// NextWorkday returns the first working day strictly after d.
func (c Calendar) NextWorkday(d time.Time) time.Time {
	t := Truncate(d)
	for {
		t = t.AddDate(0, 0, 1)
		if !c.IsNonWorkingDay(t) {
			return t
		}
	}
}

// PrevWorkday returns the last working day strictly before d.
func (c Calendar) PrevWorkday(d time.Time) time.Time {
	t := Truncate(d)
	for {
		t = t.AddDate(0, 0, -1)
		if !c.IsNonWorkingDay(t) {
			return t
		}
	}
}

// WorkingDaysBetween counts working days in the half-open interval [d0, d1).
// It returns 0 when d1 is not after d0.
func (c Calendar) WorkingDaysBetween(d0, d1 time.Time) int {
	days := DaysBetween(d0, d1)
	if days <= 0 {
		return 0
	}
	fullWeeks, rest := days/7, days%7
	count := fullWeeks * 6
	start := int(Truncate(d0).Weekday())
	for i := 0; i < rest; i++ {
		if time.Weekday((start+i)%7) != c.Excluded {
			count++
		}
	}
	return count
}

// BackWorkdays applies PrevWorkday k times.
func (c Calendar) BackWorkdays(d time.Time, k int) time.Time {
	t := Truncate(d)
	for i := 0; i < k; i++ {
		t = c.PrevWorkday(t)
	}
	return t
}

// ForwardWorkdays applies NextWorkday k times.
func (c Calendar) ForwardWorkdays(d time.Time, k int) time.Time {
	t := Truncate(d)
	for i := 0; i < k; i++ {
		t = c.NextWorkday(t)
	}
	return t
}

// ShiftWorkdays moves d by n working days: forward when n is positive, back
// when it is negative.
func (c Calendar) ShiftWorkdays(d time.Time, n int) time.Time {
	if n >= 0 {
		return c.ForwardWorkdays(d, n)
	}
	return c.BackWorkdays(d, -n)
}

// FirstWorkdayFrom returns d when it is a working day, else the next one.
func (c Calendar) FirstWorkdayFrom(d time.Time) time.Time {
	t := Truncate(d)
	if c.IsNonWorkingDay(t) {
		return c.NextWorkday(t)
	}
	return t
}

// Truncate drops the clock part of t, keeping its civil Y-M-D in t's own
// location, and returns UTC midnight of that date.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Date builds a civil date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from d0 to d1. It works on
// Unix day numbers, so spans beyond time.Duration's range stay exact.
func DaysBetween(d0, d1 time.Time) int {
	return int((Truncate(d1).Unix() - Truncate(d0).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// FirstOfMonth returns the first day of d's month.
func FirstOfMonth(d time.Time) time.Time {
	return Date(d.Year(), d.Month(), 1)
}

// ParseDate parses a YYYY-MM-DD key.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", domain.ErrParse, s)
	}
	return t, nil
}

// FormatDate renders the YYYY-MM-DD key of d.
func FormatDate(d time.Time) string { return d.Format(Layout) }

// FormatDisplay renders d as DD.MM.YYYY.
func FormatDisplay(d time.Time) string { return d.Format(DisplayLayout) }
