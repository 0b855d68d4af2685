package bac

// Config holds the physiological and sampling constants used by the model
type Config struct {
	// BoozeConst converts standard drinks into body-weight-scaled alcohol
	BoozeConst float64

	// TimeConst is the linear elimination rate in BAC per hour
	TimeConst float64

	// BallmerPeakBAC is the BAC a schedule aims for at the peak time
	BallmerPeakBAC float64

	// MinuteGranularity is the spacing of timeline samples in minutes
	MinuteGranularity int

	// MaleConstant is the distribution constant used for male drinkers
	MaleConstant float64

	// FemaleConstant is the distribution constant used for female drinkers
	FemaleConstant float64

	// ClampNegative floors estimated BAC at zero
	ClampNegative bool
}

// Default model constants
const (
	DefaultBoozeConst        = 0.3243
	DefaultTimeConst         = 0.015
	DefaultBallmerPeakBAC    = 0.12
	DefaultMinuteGranularity = 5
	DefaultMaleConstant      = 0.73
	DefaultFemaleConstant    = 0.66
)

// DefaultConfig returns the standard constants with negative BAC clamped to zero
func DefaultConfig() *Config {
	return &Config{
		BoozeConst:        DefaultBoozeConst,
		TimeConst:         DefaultTimeConst,
		BallmerPeakBAC:    DefaultBallmerPeakBAC,
		MinuteGranularity: DefaultMinuteGranularity,
		MaleConstant:      DefaultMaleConstant,
		FemaleConstant:    DefaultFemaleConstant,
		ClampNegative:     true,
	}
}
