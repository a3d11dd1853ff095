// Package roster holds the ordered, deduplicated list of people eligible for
// duty and resolves typed names against it.
//
// A person's index in the list is their identity everywhere else in the
// system. Names are compared through CanonicalKey: the first two
// whitespace-separated tokens (surname and given name), Unicode case-folded,
// with ё folded to е.
package roster

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"dutyroster/internal/domain"
)

// Fallback is used when the roster source is empty, keeping len >= 2.
var Fallback = []string{"Иванов Иван", "Петров Пётр"}

// Roster is an immutable duty list. Reloading produces a new Roster.
type Roster struct {
	names []string
	keys  []string
}

// New builds a roster from raw lines, dropping blanks and later duplicates.
// Fewer than two distinct people yields the Fallback list.
func New(lines []string) *Roster {
	r := &Roster{}
	seen := make(map[string]struct{}, len(lines))
	for _, ln := range lines {
		name := strings.Join(strings.Fields(ln), " ")
		key := CanonicalKey(name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		r.names = append(r.names, name)
		r.keys = append(r.keys, key)
	}
	if len(r.names) < 2 {
		return New(Fallback)
	}
	return r
}

// CanonicalKey normalizes a name for comparison.
func CanonicalKey(s string) string {
	fields := strings.Fields(norm.NFC.String(s))
	if len(fields) > 2 {
		fields = fields[:2]
	}
	folded := cases.Fold().String(strings.Join(fields, " "))
	return strings.ReplaceAll(folded, "ё", "е")
}

// Len returns the number of people.
func (r *Roster) Len() int { return len(r.names) }

// Names returns a copy of the list in rotation order.
func (r *Roster) Names() []string {
	return append([]string(nil), r.names...)
}

// Valid reports whether idx addresses a person.
func (r *Roster) Valid(idx int) bool { return idx >= 0 && idx < len(r.names) }

// Name returns the person at idx, wrapping around the list.
func (r *Roster) Name(idx int) string {
	n := len(r.names)
	return r.names[((idx%n)+n)%n]
}

// IndexOf finds the index of name by canonical key.
func (r *Roster) IndexOf(name string) (int, error) {
	key := CanonicalKey(name)
	for i, k := range r.keys {
		if k == key {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", domain.ErrNotFound, name)
}

// Resolve maps free-form input to a listed name: an exact canonical match
// first, then the first name whose key contains the input's key.
func (r *Roster) Resolve(input string) (string, bool) {
	key := CanonicalKey(input)
	if key == "" {
		return "", false
	}
	for i, k := range r.keys {
		if k == key {
			return r.names[i], true
		}
	}
	for i, k := range r.keys {
		if strings.Contains(k, key) {
			return r.names[i], true
		}
	}
	return "", false
}

// Remap translates indices taken against prev into indices of r, matching
// people by canonical key. Names missing from r are returned as dropped.
func (r *Roster) Remap(prev *Roster, indices []int) (kept []int, dropped []string) {
	for _, idx := range indices {
		if !prev.Valid(idx) {
			dropped = append(dropped, fmt.Sprintf("#%d", idx))
			continue
		}
		name := prev.names[idx]
		next, err := r.IndexOf(name)
		if err != nil {
			dropped = append(dropped, name)
			continue
		}
		kept = append(kept, next)
	}
	return kept, dropped
}
