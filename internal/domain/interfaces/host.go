package interfaces

import "time"

// Clock reports the current instant. Callers convert it to a civil date.
type Clock interface {
	Now() time.Time
}

// Rand is the random source used for lottery picks. *math/rand.Rand
// satisfies it.
type Rand interface {
	Intn(n int) int
}
