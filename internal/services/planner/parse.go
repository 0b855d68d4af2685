package planner

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/KirkDiggler/ballmer/internal/models"
)

// Accepted clock layouts, tried in order against upper-cased input
var timeLayouts = []string{
	"15:04",
	"3:04 PM",
	"3:04PM",
}

// parseClock resolves an HH:mm string onto the calendar day of ref
func parseClock(field, value string, ref time.Time) (time.Time, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(value))
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, trimmed)
		if err != nil {
			continue
		}

		year, month, day := ref.Date()
		return time.Date(year, month, day, parsed.Hour(), parsed.Minute(), 0, 0, ref.Location()), nil
	}

	return time.Time{}, fmt.Errorf("%w: %s time %q", ErrUnparseableTime, field, value)
}

// parseWeight reads a positive, finite weight in pounds
func parseWeight(value string) (float64, error) {
	weight, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, value)
	}

	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeight, value)
	}

	return weight, nil
}

// parseSex maps user input onto a sex, defaulting to male
func parseSex(value string) (models.Sex, error) {
	sex := models.Sex(strings.ToLower(strings.TrimSpace(value)))
	switch sex {
	case "", "m":
		sex = models.SexMale
	case "f":
		sex = models.SexFemale
	}

	if !sex.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSex, value)
	}
	return sex, nil
}
