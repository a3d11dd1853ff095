package types

// Schedule is the lesson plan shown next to the duty pair.
//
// Weekday lists apply to every matching day; Dates holds per-date overrides
// keyed by YYYY-MM-DD.
type Schedule struct {
	Mon   []string            `json:"mon"`
	Tue   []string            `json:"tue"`
	Wed   []string            `json:"wed"`
	Thu   []string            `json:"thu"`
	Fri   []string            `json:"fri"`
	Sat   []string            `json:"sat"`
	Sun   []string            `json:"sun,omitempty"`
	Dates map[string][]string `json:"dates"`
}

// Day returns the subjects for a weekday key (mon..sun).
func (s *Schedule) Day(key string) []string {
	if p := s.slot(key); p != nil {
		return *p
	}
	return nil
}

// SetDay replaces the subjects for a weekday key and reports whether the key
// was known.
func (s *Schedule) SetDay(key string, subjects []string) bool {
	p := s.slot(key)
	if p == nil {
		return false
	}
	*p = subjects
	return true
}

func (s *Schedule) slot(key string) *[]string {
	switch key {
	case "mon":
		return &s.Mon
	case "tue":
		return &s.Tue
	case "wed":
		return &s.Wed
	case "thu":
		return &s.Thu
	case "fri":
		return &s.Fri
	case "sat":
		return &s.Sat
	case "sun":
		return &s.Sun
	}
	return nil
}
