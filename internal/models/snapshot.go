package models

import (
	"time"
)

// Snapshot is the view of a plan at one tick of the live clock
type Snapshot struct {
	// Tick counts ticks since the clock started, starting at 1
	Tick int

	// Now is the time of this tick
	Now time.Time

	// Previous is the time of the prior tick, or when the clock started
	Previous time.Time

	// Current is the latest sample before Now, nil before the timeline begins
	Current *BACSample

	// Consumed are the drinks due before Now
	Consumed []DrinkEvent

	// Pending are the drinks still to come
	Pending []DrinkEvent

	// Crossed are the drinks that became due since Previous
	Crossed []DrinkEvent
}
