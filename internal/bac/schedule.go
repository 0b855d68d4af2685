package bac

import (
	"math"
	"time"

	"github.com/KirkDiggler/ballmer/internal/models"
)

// BuildSchedule spreads the drinks needed to reach the Ballmer Peak evenly
// between start and peak. Drinking-time elimination is ignored.
//
// The event at index floor(target) carries the fractional remainder. When
// target is a whole number that index is past the end, so every event is a
// full drink.
func (m *Model) BuildSchedule(start, peak time.Time, weight, distributionConstant float64) []models.DrinkEvent {
	toPeak := peak.Sub(start)
	if toPeak < 0 {
		return []models.DrinkEvent{}
	}

	target := m.EstimateDrinks(weight, distributionConstant, toPeak.Hours(), m.config.BallmerPeakBAC)
	if math.IsNaN(target) || math.IsInf(target, 0) || target <= 0 {
		return []models.DrinkEvent{}
	}

	count := int(math.Ceil(target))
	whole := int(math.Floor(target))
	step := time.Duration(float64(toPeak) / float64(count))

	schedule := make([]models.DrinkEvent, 0, count)
	for i := 0; i < count; i++ {
		drinks := 1.0
		if i == whole {
			drinks = target - float64(whole)
		}

		schedule = append(schedule, models.DrinkEvent{
			Index:  i,
			Time:   start.Add(time.Duration(i) * step),
			Drinks: drinks,
		})
	}

	return schedule
}

// TotalDrinks sums the drink fractions in a schedule
func TotalDrinks(schedule []models.DrinkEvent) float64 {
	total := 0.0
	for _, event := range schedule {
		total += event.Drinks
	}
	return total
}

// PartitionSchedule splits a schedule into drinks due before now and drinks still to come
func PartitionSchedule(schedule []models.DrinkEvent, now time.Time) (consumed, pending []models.DrinkEvent) {
	consumed = []models.DrinkEvent{}
	pending = []models.DrinkEvent{}
	for _, event := range schedule {
		if event.Time.Before(now) {
			consumed = append(consumed, event)
		} else {
			pending = append(pending, event)
		}
	}
	return consumed, pending
}

// CrossedBetween returns the drinks due in [previous, now), i.e. the drinks
// consumed at now that were still pending at previous
func CrossedBetween(schedule []models.DrinkEvent, previous, now time.Time) []models.DrinkEvent {
	var crossed []models.DrinkEvent
	for _, event := range schedule {
		if !event.Time.Before(previous) && event.Time.Before(now) {
			crossed = append(crossed, event)
		}
	}
	return crossed
}

// NextDrink returns the first drink at or after now
func NextDrink(schedule []models.DrinkEvent, now time.Time) (models.DrinkEvent, bool) {
	for _, event := range schedule {
		if !event.Time.Before(now) {
			return event, true
		}
	}
	return models.DrinkEvent{}, false
}
