package types

import "time"

// DayPair is the resolved pair for one calendar day.
type DayPair struct {
	Date     time.Time `json:"date"`
	Pair     Pair      `json:"pair"`
	Override bool      `json:"override"` // true when an exception fixed the pair
}

// Debtor is a person who owes a makeup duty.
type Debtor struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}
