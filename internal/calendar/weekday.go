package calendar

import (
	"fmt"
	"strings"
	"time"

	"dutyroster/internal/domain"
)

// WeekdayKeys are the schedule keys indexed by time.Weekday.
var WeekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

var weekdayAliases = map[string]time.Weekday{
	"sun": time.Sunday, "sunday": time.Sunday,
	"mon": time.Monday, "monday": time.Monday,
	"tue": time.Tuesday, "tuesday": time.Tuesday,
	"wed": time.Wednesday, "wednesday": time.Wednesday,
	"thu": time.Thursday, "thursday": time.Thursday,
	"fri": time.Friday, "friday": time.Friday,
	"sat": time.Saturday, "saturday": time.Saturday,

	"вс": time.Sunday, "воскресенье": time.Sunday,
	"пн": time.Monday, "пон": time.Monday, "понедельник": time.Monday,
	"вт": time.Tuesday, "вторник": time.Tuesday,
	"ср": time.Wednesday, "среда": time.Wednesday,
	"чт": time.Thursday, "четверг": time.Thursday,
	"пт": time.Friday, "пятница": time.Friday,
	"сб": time.Saturday, "суббота": time.Saturday,
}

// ParseWeekday accepts English and Russian day names and abbreviations.
func ParseWeekday(s string) (time.Weekday, error) {
	wd, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return time.Sunday, fmt.Errorf("%w: unknown weekday %q", domain.ErrParse, s)
	}
	return wd, nil
}

// WeekdayKey returns the schedule key (mon..sun) for d.
func WeekdayKey(d time.Time) string { return WeekdayKeys[d.Weekday()] }
