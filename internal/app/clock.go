package app

import (
	"time"

	"dutyroster/internal/domain"
)

// Clock reports wall time in the configured location, so civil dates follow
// that calendar rather than the host's.
type Clock struct {
	Loc *time.Location
}

// Now returns the current time in c.Loc.
func (c Clock) Now() time.Time { return time.Now().In(c.Loc) }

// Compile-time assertion that Clock implements domain.Clock.
var _ domain.Clock = Clock{}
