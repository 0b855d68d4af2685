package models

import (
	"time"
)

// Plan is the computed schedule and timeline for one submission.
// Plans are read-only once built.
type Plan struct {
	// ID is the unique identifier for the plan
	ID string

	// Params are the validated session parameters
	Params SessionParameters

	// TargetDrinks is the drink count needed to reach the peak
	TargetDrinks float64

	// Schedule is the recommended drinks ordered by time
	Schedule []DrinkEvent

	// Timeline is the sampled BAC ordered by time
	Timeline []BACSample

	// CreatedAt is when the plan was computed
	CreatedAt time.Time
}
