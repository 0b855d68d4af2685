package planner

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/ballmer/internal/bac"
	"github.com/KirkDiggler/ballmer/internal/common/clock"
	"github.com/KirkDiggler/ballmer/internal/common/uuid"
	"github.com/KirkDiggler/ballmer/internal/models"
	"github.com/rs/zerolog"
)

// service implements the Service interface
type service struct {
	model         *bac.Model
	clock         clock.Clock
	uuidGenerator uuid.Generator
	logger        zerolog.Logger
}

// New creates a new planner service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Model == nil {
		return nil, ErrNilModel
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "planner").Logger()
	}

	return &service{
		model:         cfg.Model,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
		logger:        logger,
	}, nil
}

// CreatePlan validates raw session input and computes its schedule and timeline
func (s *service) CreatePlan(ctx context.Context, input *CreatePlanInput) (*CreatePlanOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	params, err := s.parseParameters(input)
	if err != nil {
		s.logger.Debug().Err(err).Msg("Rejected plan input")
		return nil, err
	}

	target := s.model.TargetDrinks(params.Start, params.Peak, params.Weight, params.DistributionConstant)
	schedule := s.model.BuildSchedule(params.Start, params.Peak, params.Weight, params.DistributionConstant)
	timeline := s.model.SampleTimeline(params.Start, params.End, params.Weight, params.DistributionConstant, schedule)

	plan := &models.Plan{
		ID:           s.uuidGenerator.NewID(),
		Params:       *params,
		TargetDrinks: target,
		Schedule:     schedule,
		Timeline:     timeline,
		CreatedAt:    s.clock.Now(),
	}

	output := &CreatePlanOutput{
		Plan:        plan,
		WholeDrinks: bac.IsWholeDrinkCount(target),
	}

	if peak, ok := bac.PeakSample(timeline); ok {
		output.Peak = &peak
	}

	s.logger.Info().
		Str("plan_id", plan.ID).
		Float64("hours_to_peak", params.HoursToPeak()).
		Float64("target_drinks", target).
		Int("scheduled", len(schedule)).
		Int("samples", len(timeline)).
		Bool("whole_drinks", output.WholeDrinks).
		Msg("Created plan")

	return output, nil
}

// GetStatus reports where a plan stands at a point in time
func (s *service) GetStatus(ctx context.Context, input *GetStatusInput) (*GetStatusOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	if input.Plan == nil {
		return nil, ErrNilPlan
	}

	now := input.Now
	if now.IsZero() {
		now = s.clock.Now()
	}

	plan := input.Plan
	consumed, pending := bac.PartitionSchedule(plan.Schedule, now)

	output := &GetStatusOutput{
		Now:            now,
		ConsumedCount:  len(consumed),
		ConsumedDrinks: bac.TotalDrinks(consumed),
		PendingCount:   len(pending),
		PeakReached:    !now.Before(plan.Params.Peak),
		Finished:       !now.Before(plan.Params.End),
	}

	if current, ok := bac.SampleAt(plan.Timeline, now); ok {
		output.Current = &current
	}

	if next, ok := bac.NextDrink(plan.Schedule, now); ok {
		output.NextDrink = &next
	}

	return output, nil
}

// parseParameters turns raw input into validated session parameters
func (s *service) parseParameters(input *CreatePlanInput) (*models.SessionParameters, error) {
	weight, err := parseWeight(input.Weight)
	if err != nil {
		return nil, err
	}

	sex, err := parseSex(input.Sex)
	if err != nil {
		return nil, err
	}

	ref := s.clock.Now()

	start, err := parseClock("start", input.StartTime, ref)
	if err != nil {
		return nil, err
	}

	peak, err := parseClock("peak", input.PeakTime, ref)
	if err != nil {
		return nil, err
	}

	end, err := parseClock("end", input.EndTime, ref)
	if err != nil {
		return nil, err
	}

	if peak.Before(start) {
		return nil, fmt.Errorf("%w: peak %s is before start %s", ErrInvalidTimeOrdering, input.PeakTime, input.StartTime)
	}

	if end.Before(start) {
		return nil, fmt.Errorf("%w: end %s is before start %s", ErrInvalidTimeOrdering, input.EndTime, input.StartTime)
	}

	return &models.SessionParameters{
		Weight:               weight,
		Sex:                  sex,
		DistributionConstant: s.model.DistributionConstant(sex),
		Start:                start,
		Peak:                 peak,
		End:                  end,
	}, nil
}
