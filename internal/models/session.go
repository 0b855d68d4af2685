package models

import (
	"time"
)

// Sex selects which distribution constant applies to a drinker
type Sex string

const (
	// SexMale uses the male distribution constant
	SexMale Sex = "male"

	// SexFemale uses the female distribution constant
	SexFemale Sex = "female"
)

// IsValid reports whether the sex is one the model knows about
func (s Sex) IsValid() bool {
	return s == SexMale || s == SexFemale
}

// SessionParameters describes one planned drinking session
type SessionParameters struct {
	// Weight is the drinker's body weight in pounds
	Weight float64

	// Sex is the drinker's selected sex
	Sex Sex

	// DistributionConstant is the body water fraction used for Sex
	DistributionConstant float64

	// Start is when drinking begins
	Start time.Time

	// Peak is when BAC should reach the Ballmer Peak
	Peak time.Time

	// End is when the charted timeline stops
	End time.Time
}

// HoursToPeak returns the time between start and peak in hours
func (p SessionParameters) HoursToPeak() float64 {
	return p.Peak.Sub(p.Start).Hours()
}
