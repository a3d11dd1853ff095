package types

// Pair is the two people on duty for one day.
//
// Slot order only matters for display; rotation logic treats a Pair as a set
// of two names.
type Pair [2]string

// NewPair builds a Pair from two names.
func NewPair(first, second string) Pair { return Pair{first, second} }

// Contains reports whether name occupies either slot.
func (p Pair) Contains(name string) bool { return p[0] == name || p[1] == name }

// Substitute returns a copy of p with every slot holding old replaced by next.
func (p Pair) Substitute(old, next string) Pair {
	out := p
	for i := range out {
		if out[i] == old {
			out[i] = next
		}
	}
	return out
}

// Partner returns the first slot that is not name, or "" when both are name.
func (p Pair) Partner(name string) string {
	if p[0] != name {
		return p[0]
	}
	if p[1] != name {
		return p[1]
	}
	return ""
}

// String returns the pair as "first and second".
func (p Pair) String() string { return p[0] + " and " + p[1] }
