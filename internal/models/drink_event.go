package models

import (
	"time"
)

// DrinkEvent is one scheduled drink
type DrinkEvent struct {
	// Index is the position of the drink in its schedule, starting at zero
	Index int

	// Time is when the drink should be had
	Time time.Time

	// Drinks is the number of standard drinks, 1 except for a final partial drink
	Drinks float64
}

// IsPartial reports whether the event is less than a full drink
func (e DrinkEvent) IsPartial() bool {
	return e.Drinks < 1
}
