package models

import (
	"time"
)

// BACSample is the estimated BAC at one point of the timeline
type BACSample struct {
	// Time is when the sample applies
	Time time.Time

	// BAC is the estimated blood alcohol concentration
	BAC float64

	// Drinks is the cumulative number of drinks had before Time
	Drinks float64
}
