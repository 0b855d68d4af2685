package planner

import (
	"time"

	"github.com/KirkDiggler/ballmer/internal/bac"
	"github.com/KirkDiggler/ballmer/internal/common/clock"
	"github.com/KirkDiggler/ballmer/internal/common/uuid"
	"github.com/KirkDiggler/ballmer/internal/models"
	"github.com/rs/zerolog"
)

// Config holds configuration for the planner service
type Config struct {
	// Model evaluates the BAC formulas
	Model *bac.Model

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.Generator

	// Logger for plan decisions, defaults to a no-op logger
	Logger *zerolog.Logger
}

// CreatePlanInput contains the raw values submitted for a session
type CreatePlanInput struct {
	// StartTime is when drinking begins, as HH:mm
	StartTime string

	// PeakTime is when the Ballmer Peak should be reached, as HH:mm
	PeakTime string

	// EndTime is when the chart stops, as HH:mm
	EndTime string

	// Weight is the body weight in pounds
	Weight string

	// Sex is male or female, defaults to male
	Sex string
}

// CreatePlanOutput contains the computed plan
type CreatePlanOutput struct {
	// Plan is the schedule and timeline for the session
	Plan *models.Plan

	// WholeDrinks indicates the target was an exact number of drinks, so no
	// partial drink was scheduled
	WholeDrinks bool

	// Peak is the highest sample on the timeline, nil for an empty timeline
	Peak *models.BACSample
}

// GetStatusInput contains parameters for checking a plan
type GetStatusInput struct {
	// Plan is the plan to check
	Plan *models.Plan

	// Now is the time to check at, defaults to the clock's time
	Now time.Time
}

// GetStatusOutput describes a plan at one point in time
type GetStatusOutput struct {
	// Now is the time the status applies to
	Now time.Time

	// Current is the latest sample before Now, nil before the timeline begins
	Current *models.BACSample

	// ConsumedCount is the number of drinks already due
	ConsumedCount int

	// ConsumedDrinks is the total of the drinks already due
	ConsumedDrinks float64

	// PendingCount is the number of drinks still to come
	PendingCount int

	// NextDrink is the next drink due, nil once the schedule is done
	NextDrink *models.DrinkEvent

	// PeakReached indicates Now is at or past the peak time
	PeakReached bool

	// Finished indicates Now is at or past the end time
	Finished bool
}
