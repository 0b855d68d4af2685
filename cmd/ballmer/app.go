package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/ballmer/internal/bac"
	"github.com/KirkDiggler/ballmer/internal/common/clock"
	"github.com/KirkDiggler/ballmer/internal/common/random"
	"github.com/KirkDiggler/ballmer/internal/common/uuid"
	"github.com/KirkDiggler/ballmer/internal/config"
	"github.com/KirkDiggler/ballmer/internal/services/messaging"
	"github.com/KirkDiggler/ballmer/internal/services/planner"
)

// session flags shared by plan and watch
var (
	startTime string
	peakTime  string
	endTime   string
	weight    string
	sex       string
	tone      string
)

func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&startTime, "start", "", "Session start time, e.g. 19:00 or 7:00 PM")
	cmd.Flags().StringVar(&peakTime, "peak", "", "Time to reach the Ballmer Peak")
	cmd.Flags().StringVar(&endTime, "end", "", "Session end time")
	cmd.Flags().StringVar(&weight, "weight", "", "Body weight in pounds")
	cmd.Flags().StringVar(&sex, "sex", "male", "male or female")
	cmd.Flags().StringVar(&tone, "tone", "", "Message tone: neutral, funny, encouraging or celebration")

	for _, name := range []string{"start", "peak", "end", "weight"} {
		_ = cmd.MarkFlagRequired(name)
	}
}

// newClock is replaced in tests to pin the session day
var newClock = func() clock.Clock {
	return clock.New()
}

// app holds the wired services for one command run
type app struct {
	cfg       *config.Config
	logger    zerolog.Logger
	model     *bac.Model
	clock     clock.Clock
	planner   planner.Service
	messaging messaging.Service
	cleanup   func()
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, cleanup, err := setupLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	model := bac.New(cfg.ModelConfig())
	systemClock := newClock()

	plannerSvc, err := planner.New(&planner.Config{
		Model:         model,
		Clock:         systemClock,
		UUIDGenerator: uuid.New(),
		Logger:        &logger,
	})
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to create planner service: %w", err)
	}

	messagingSvc, err := messaging.NewService(&messaging.ServiceConfig{
		Picker:      random.New(&random.Config{Seed: cfg.Messaging.Seed}),
		DefaultTone: messaging.MessageTone(cfg.Messaging.Tone),
	})
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	logger.Debug().
		Interface("model", cfg.Model).
		Msg("configuration loaded")

	return &app{
		cfg:       cfg,
		logger:    logger,
		model:     model,
		clock:     systemClock,
		planner:   plannerSvc,
		messaging: messagingSvc,
		cleanup:   cleanup,
	}, nil
}

// createPlan builds a plan from the session flags, reporting validation
// errors in the configured tone
func (a *app) createPlan(ctx context.Context, cmd *cobra.Command) (*planner.CreatePlanOutput, error) {
	if tone != "" && !messaging.MessageTone(tone).IsValid() {
		return nil, fmt.Errorf("invalid message tone: %q", tone)
	}

	output, err := a.planner.CreatePlan(ctx, &planner.CreatePlanInput{
		StartTime: startTime,
		PeakTime:  peakTime,
		EndTime:   endTime,
		Weight:    weight,
		Sex:       sex,
	})
	if err != nil {
		a.logger.Warn().Err(err).Msg("plan rejected")

		friendly, msgErr := a.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{
			Err:           err,
			PreferredTone: messaging.MessageTone(tone),
		})
		if msgErr == nil {
			errorHeading.Fprintln(cmd.ErrOrStderr(), friendly.Title)
			fmt.Fprintln(cmd.ErrOrStderr(), friendly.Message)
		}
		return nil, err
	}
	return output, nil
}
