// Package seeding realigns the rotation to a pair stated for a date, or pins
// a one-off pair without touching the anchor.
package seeding

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"dutyroster/internal/calendar"
	"dutyroster/internal/domain"
	"dutyroster/internal/roster"
)

// Rotation is the slice of duty.Service that seeding drives.
type Rotation interface {
	Roster() *roster.Roster
	Today() (time.Time, error)
	Realign(date time.Time, anchorFor func(*roster.Roster, calendar.Calendar) (time.Time, error)) (time.Time, error)
	FixPair(d time.Time, p domain.Pair) error
}

// Args is a parsed "name1;name2 [YYYY-MM-DD]" argument string.
type Args struct {
	First  string
	Second string
	Date   time.Time
}

var trailingDate = regexp.MustCompile(`\s(\d{4}-\d{2}-\d{2})$`)

// Service applies seed commands to a Rotation.
type Service struct {
	rot Rotation
}

// New returns a seeding Service.
func New(rot Rotation) *Service {
	return &Service{rot: rot}
}

// ParseArgs splits text into two names and a date. The date defaults to
// Today. Each fragment is resolved against the duty list; a fragment that
// does not resolve must still name someone exactly.
func (s *Service) ParseArgs(text string) (Args, error) {
	text = strings.TrimSpace(text)
	var (
		d     time.Time
		names = text
	)
	if m := trailingDate.FindStringSubmatchIndex(text); m != nil {
		parsed, err := calendar.ParseDate(text[m[2]:m[3]])
		if err != nil {
			return Args{}, err
		}
		d = parsed
		names = strings.TrimSpace(text[:m[0]])
	} else {
		today, err := s.rot.Today()
		if err != nil {
			return Args{}, err
		}
		d = today
	}

	raw1, raw2, ok := strings.Cut(names, ";")
	if !ok {
		return Args{}, fmt.Errorf("%w: expected \"name1;name2\", got %q", domain.ErrParse, names)
	}

	r := s.rot.Roster()
	first, err := resolve(r, raw1)
	if err != nil {
		return Args{}, err
	}
	second, err := resolve(r, raw2)
	if err != nil {
		return Args{}, err
	}
	return Args{First: first, Second: second, Date: d}, nil
}

func resolve(r *roster.Roster, fragment string) (string, error) {
	fragment = strings.TrimSpace(fragment)
	if name, ok := r.Resolve(fragment); ok {
		return name, nil
	}
	idx, err := r.IndexOf(fragment)
	if err != nil {
		return "", err
	}
	return r.Name(idx), nil
}

// Seed moves the anchor so that first and second are the canonical pair on
// a.Date, and clears any override there. The check and the move happen in
// one step against the duty list in force.
func (s *Service) Seed(a Args) (time.Time, error) {
	return s.rot.Realign(a.Date, func(r *roster.Roster, cal calendar.Calendar) (time.Time, error) {
		return AnchorFor(r, cal, a)
	})
}

// AnchorFor returns the anchor that makes a.First and a.Second the canonical
// pair on a.Date. The pair must be one the rotation produces: consecutive in
// the list, starting at an even position.
func AnchorFor(r *roster.Roster, cal calendar.Calendar, a Args) (time.Time, error) {
	i1, err := r.IndexOf(a.First)
	if err != nil {
		return time.Time{}, err
	}
	i2, err := r.IndexOf(a.Second)
	if err != nil {
		return time.Time{}, err
	}
	if i2 != i1+1 || i1%2 != 0 {
		return time.Time{}, fmt.Errorf("%w: %s (#%d) and %s (#%d)", domain.ErrNotAdjacent, a.First, i1+1, a.Second, i2+1)
	}
	return cal.BackWorkdays(a.Date, i1/2), nil
}

// SeedOnly pins the pair on a.Date and leaves the anchor alone.
func (s *Service) SeedOnly(a Args) (domain.Pair, error) {
	if roster.CanonicalKey(a.First) == roster.CanonicalKey(a.Second) {
		return domain.Pair{}, fmt.Errorf("%w: %s twice", domain.ErrAlreadyOnDuty, a.First)
	}
	p := domain.NewPair(a.First, a.Second)
	if err := s.rot.FixPair(a.Date, p); err != nil {
		return domain.Pair{}, err
	}
	return p, nil
}
