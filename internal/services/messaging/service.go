package messaging

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/KirkDiggler/ballmer/internal/common/random"
	"github.com/KirkDiggler/ballmer/internal/services/planner"
)

// service implements the Service interface
type service struct {
	picker      random.Picker
	defaultTone MessageTone
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	if config.DefaultTone != "" && !config.DefaultTone.IsValid() {
		return nil, fmt.Errorf("unknown message tone %q", config.DefaultTone)
	}

	picker := config.Picker
	if picker == nil {
		picker = random.New(nil)
	}

	defaultTone := config.DefaultTone
	if defaultTone == "" {
		defaultTone = ToneFunny
	}

	return &service{
		picker:      picker,
		defaultTone: defaultTone,
	}, nil
}

// GetDrinkDueMessage returns a message for when a scheduled drink comes due
func (s *service) GetDrinkDueMessage(ctx context.Context, input *GetDrinkDueMessageInput) (*GetDrinkDueMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := s.tone(input.PreferredTone)
	number := input.Drink.Index + 1
	last := input.TotalDrinks > 0 && number == input.TotalDrinks

	var messages []string
	switch {
	case input.Drink.IsPartial():
		amount := formatFraction(input.Drink.Drinks)
		messages = []string{
			fmt.Sprintf("Final stretch: %s of a drink and you're there.", amount),
			fmt.Sprintf("Just a splash this time. %s of a standard drink.", amount),
			fmt.Sprintf("Precision engineering: exactly %s of a drink. Measure twice, sip once.", amount),
		}
	case last:
		messages = []string{
			"Last one! Peak performance incoming.",
			"This is the one. Finish it and go write some code.",
			"Final drink of the plan. Make it count.",
		}
	case tone == ToneNeutral:
		messages = []string{
			fmt.Sprintf("Drink %d of %d is due.", number, input.TotalDrinks),
		}
	case tone == ToneEncouraging:
		messages = []string{
			fmt.Sprintf("Drink %d of %d. You're right on schedule.", number, input.TotalDrinks),
			fmt.Sprintf("Nice pacing! Time for drink %d.", number),
			"Steady as she goes. Next drink is up.",
		}
	default:
		messages = []string{
			fmt.Sprintf("Drink %d is up. Your compiler believes in you.", number),
			fmt.Sprintf("Bottoms up! That's drink %d of %d.", number, input.TotalDrinks),
			"The schedule demands tribute. Drink up.",
			"Hydrate... with beer. Drink time!",
			fmt.Sprintf("Drink %d, reporting for duty.", number),
		}
	}

	title := fmt.Sprintf("Drink %d", number)
	if input.TotalDrinks > 0 {
		title = fmt.Sprintf("Drink %d of %d", number, input.TotalDrinks)
	}

	return &GetDrinkDueMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetPlanSummaryMessage returns a message describing a freshly computed plan
func (s *service) GetPlanSummaryMessage(ctx context.Context, input *GetPlanSummaryMessageInput) (*GetPlanSummaryMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := s.tone(input.PreferredTone)
	peak := input.PeakTime.Format("3:04 PM")

	if input.DrinkCount == 0 {
		return &GetPlanSummaryMessageOutput{
			Message: fmt.Sprintf("No drinks needed to peak at %s. Something tells me the times are off.", peak),
			Tone:    tone,
		}, nil
	}

	amount := fmt.Sprintf("%.2f drinks", input.TargetDrinks)
	if input.WholeDrinks {
		amount = fmt.Sprintf("exactly %d drinks", input.DrinkCount)
	}

	var messages []string
	switch tone {
	case ToneNeutral:
		messages = []string{
			fmt.Sprintf("%s over %d rounds to reach the Ballmer Peak at %s.", amount, input.DrinkCount, peak),
		}
	case ToneEncouraging:
		messages = []string{
			fmt.Sprintf("You've got this: %s spread over %d rounds puts you at peak by %s.", amount, input.DrinkCount, peak),
			fmt.Sprintf("A solid plan. %s, %d rounds, peak at %s.", amount, input.DrinkCount, peak),
		}
	case ToneCelebration:
		messages = []string{
			fmt.Sprintf("Party plan locked in! %s, %d rounds, peak at %s.", amount, input.DrinkCount, peak),
			fmt.Sprintf("Cheers! %s gets you to the peak at %s.", amount, peak),
		}
	default:
		messages = []string{
			fmt.Sprintf("Science says %s. Peak productivity arrives at %s.", amount, peak),
			fmt.Sprintf("%d rounds, %s, and a 10x engineer by %s.", input.DrinkCount, amount, peak),
			fmt.Sprintf("Your liver has been scheduled: %s, peak at %s.", amount, peak),
		}
	}

	return &GetPlanSummaryMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetStatusMessage returns a one-line comment on where the session stands
func (s *service) GetStatusMessage(ctx context.Context, input *GetStatusMessageInput) (*GetStatusMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var messages []string
	switch {
	case !input.Started:
		messages = []string{
			"The session hasn't started yet. Pace yourself.",
			"Waiting for the first round.",
		}
	case input.Finished:
		messages = []string{
			"Session's over. Water, then bed.",
			"That's a wrap. Go home, you're productive.",
		}
	case input.PeakReached && input.CurrentBAC >= input.PeakBAC*0.9:
		messages = []string{
			"You're at the peak. Write the code now.",
			"Peak achieved. Ship it!",
		}
	case input.PeakReached:
		messages = []string{
			"Coming down from the peak.",
			"Past the peak. Time to switch to water.",
		}
	case input.UntilNextDrink > 0:
		wait := input.UntilNextDrink.Round(time.Second)
		messages = []string{
			fmt.Sprintf("Next drink in %s.", wait),
			fmt.Sprintf("%s until the next round.", wait),
		}
	default:
		messages = []string{
			"All drinks are in. Riding it to the peak.",
		}
	}

	return &GetStatusMessageOutput{
		Message: s.pick(messages),
	}, nil
}

// GetErrorMessage returns a user-friendly error message
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := s.tone(input.PreferredTone)

	var (
		title    string
		messages []string
	)
	switch {
	case errors.Is(input.Err, planner.ErrInvalidWeight):
		title = "Invalid Weight"
		messages = []string{
			"Weight needs to be a positive number of pounds.",
			"I can't plan for someone who weighs nothing. Try a positive number of pounds.",
		}
	case errors.Is(input.Err, planner.ErrInvalidTimeOrdering):
		title = "Times Out Of Order"
		messages = []string{
			"The peak and end times have to come after the start time.",
			"You can't peak before you start. Check your times.",
		}
	case errors.Is(input.Err, planner.ErrUnparseableTime):
		title = "Unreadable Time"
		messages = []string{
			"Times should look like 21:30 or 9:30 PM.",
			"I couldn't read one of those times. Try HH:mm, like 21:30.",
		}
	case errors.Is(input.Err, planner.ErrInvalidSex):
		title = "Unknown Sex"
		messages = []string{
			"Sex should be male or female. It picks the body water constant.",
		}
	default:
		title = "Something Went Wrong"
		messages = []string{
			"Something went wrong. Maybe have one less drink and try again?",
			"That didn't work. The planner needs a minute.",
		}
	}

	message := s.pick(messages)
	if tone == ToneNeutral && input.Err != nil {
		message = input.Err.Error()
	}

	return &GetErrorMessageOutput{
		Title:   title,
		Message: message,
		Tone:    tone,
	}, nil
}

// tone returns the preferred tone if valid, else the service default
func (s *service) tone(preferred MessageTone) MessageTone {
	if preferred.IsValid() {
		return preferred
	}
	return s.defaultTone
}

func (s *service) pick(messages []string) string {
	return messages[s.picker.Pick(len(messages))]
}

// formatFraction renders a partial drink as a percentage
func formatFraction(drinks float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(drinks*100)))
}
