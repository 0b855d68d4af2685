package bac

import (
	"time"

	"github.com/KirkDiggler/ballmer/internal/models"
)

// SampleTimeline evaluates BAC every MinuteGranularity minutes over [start, end).
// The schedule must be ordered by time; its running total is advanced alongside
// the samples instead of rescanned for each one.
func (m *Model) SampleTimeline(start, end time.Time, weight, distributionConstant float64, schedule []models.DrinkEvent) []models.BACSample {
	if m.config.MinuteGranularity <= 0 || !start.Before(end) {
		return []models.BACSample{}
	}

	step := time.Duration(m.config.MinuteGranularity) * time.Minute
	samples := make([]models.BACSample, 0, int(end.Sub(start)/step)+1)

	next := 0
	drinks := 0.0
	for offset := time.Duration(0); start.Add(offset).Before(end); offset += step {
		t := start.Add(offset)
		for next < len(schedule) && schedule[next].Time.Before(t) {
			drinks += schedule[next].Drinks
			next++
		}

		samples = append(samples, models.BACSample{
			Time:   t,
			BAC:    m.EstimateBAC(weight, distributionConstant, offset.Hours(), drinks),
			Drinks: drinks,
		})
	}

	return samples
}

// SampleAt returns the last sample taken strictly before now
func SampleAt(timeline []models.BACSample, now time.Time) (models.BACSample, bool) {
	var (
		current models.BACSample
		found   bool
	)
	for _, sample := range timeline {
		if !sample.Time.Before(now) {
			break
		}
		current = sample
		found = true
	}
	return current, found
}

// PeakSample returns the sample with the highest BAC
func PeakSample(timeline []models.BACSample) (models.BACSample, bool) {
	if len(timeline) == 0 {
		return models.BACSample{}, false
	}

	peak := timeline[0]
	for _, sample := range timeline[1:] {
		if sample.BAC > peak.BAC {
			peak = sample
		}
	}
	return peak, true
}
