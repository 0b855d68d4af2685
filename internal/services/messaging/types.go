package messaging

import (
	"time"

	"github.com/KirkDiggler/ballmer/internal/common/random"
	"github.com/KirkDiggler/ballmer/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneEncouraging is an encouraging tone
	ToneEncouraging MessageTone = "encouraging"

	// ToneCelebration is a celebratory tone
	ToneCelebration MessageTone = "celebration"
)

// IsValid reports whether the tone is a known tone
func (t MessageTone) IsValid() bool {
	switch t {
	case ToneNeutral, ToneFunny, ToneEncouraging, ToneCelebration:
		return true
	}
	return false
}

// GetDrinkDueMessageInput contains parameters for a drink-due message
type GetDrinkDueMessageInput struct {
	// Drink is the drink that just came due
	Drink models.DrinkEvent

	// TotalDrinks is the number of drinks in the schedule
	TotalDrinks int

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetDrinkDueMessageOutput contains a drink-due message
type GetDrinkDueMessageOutput struct {
	// Title is a short heading
	Title string

	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetPlanSummaryMessageInput contains parameters for a plan summary
type GetPlanSummaryMessageInput struct {
	// TargetDrinks is the drink count needed to reach the peak
	TargetDrinks float64

	// DrinkCount is the number of scheduled drinks
	DrinkCount int

	// PeakTime is when the peak should be reached
	PeakTime time.Time

	// WholeDrinks indicates no partial drink was scheduled
	WholeDrinks bool

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetPlanSummaryMessageOutput contains a plan summary
type GetPlanSummaryMessageOutput struct {
	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// GetStatusMessageInput contains parameters for a status comment
type GetStatusMessageInput struct {
	// CurrentBAC is the latest estimated BAC
	CurrentBAC float64

	// PeakBAC is the BAC the plan aims for
	PeakBAC float64

	// Started indicates the timeline has begun
	Started bool

	// PeakReached indicates the peak time has passed
	PeakReached bool

	// Finished indicates the end time has passed
	Finished bool

	// UntilNextDrink is the time until the next drink, zero when none remain
	UntilNextDrink time.Duration

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetStatusMessageOutput contains a status comment
type GetStatusMessageOutput struct {
	// Message is the generated message
	Message string
}

// GetErrorMessageInput contains parameters for getting an error message
type GetErrorMessageInput struct {
	// Err is the error to describe
	Err error

	// PreferredTone is the preferred tone for the message (optional)
	PreferredTone MessageTone
}

// GetErrorMessageOutput contains the result of getting an error message
type GetErrorMessageOutput struct {
	// Title is a short heading
	Title string

	// Message is the generated message
	Message string

	// Tone is the tone of the message
	Tone MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Picker selects between candidate messages, defaults to a time-seeded picker
	Picker random.Picker

	// DefaultTone is used when a request has no preferred tone
	DefaultTone MessageTone
}
