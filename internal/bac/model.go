// Package bac estimates blood alcohol concentration over a drinking session
// and plans a drink schedule that lands on the Ballmer Peak.
//
// The model is a simplified linear approximation. Every function is total
// over well-formed input; callers validate weight and time ordering.
package bac

import (
	"math"
	"time"

	"github.com/KirkDiggler/ballmer/internal/models"
)

// Model evaluates the BAC formulas for one configuration
type Model struct {
	config Config
}

// New creates a model. A nil config uses DefaultConfig.
func New(cfg *Config) *Model {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	return &Model{
		config: *cfg,
	}
}

// Config returns a copy of the model configuration
func (m *Model) Config() Config {
	return m.config
}

// DistributionConstant returns the distribution constant for a sex
func (m *Model) DistributionConstant(sex models.Sex) float64 {
	if sex == models.SexFemale {
		return m.config.FemaleConstant
	}
	return m.config.MaleConstant
}

// EstimateBAC returns the BAC after drinking drinks standard drinks over elapsedHours.
// A zero weight yields an infinite or NaN result.
func (m *Model) EstimateBAC(weight, distributionConstant, elapsedHours, drinks float64) float64 {
	bac := drinks/m.config.BoozeConst/weight/distributionConstant - m.config.TimeConst*elapsedHours
	if m.config.ClampNegative && bac < 0 {
		return 0
	}
	return bac
}

// EstimateDrinks returns the number of standard drinks needed to sit at
// targetBAC after elapsedHours. The result is generally not integral.
func (m *Model) EstimateDrinks(weight, distributionConstant, elapsedHours, targetBAC float64) float64 {
	return m.config.BoozeConst * weight * distributionConstant * (targetBAC + m.config.TimeConst*elapsedHours)
}

// TargetDrinks returns the drinks needed to reach the Ballmer Peak at peak
func (m *Model) TargetDrinks(start, peak time.Time, weight, distributionConstant float64) float64 {
	return m.EstimateDrinks(weight, distributionConstant, peak.Sub(start).Hours(), m.config.BallmerPeakBAC)
}

// IsWholeDrinkCount reports whether target is an exact number of drinks.
// Such schedules contain no partial drink.
func IsWholeDrinkCount(target float64) bool {
	return target > 0 && target == math.Floor(target)
}
