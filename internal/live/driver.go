// Package live drives a computed plan against the wall clock, handing a
// snapshot of the session to a Presenter on every tick.
package live

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/ballmer/internal/bac"
	"github.com/KirkDiggler/ballmer/internal/common/clock"
	"github.com/KirkDiggler/ballmer/internal/models"
	"github.com/rs/zerolog"
)

// Driver ticks over a read-only plan
type Driver struct {
	clock     clock.Clock
	plan      *models.Plan
	presenter Presenter
	interval  time.Duration
	maxTicks  int
	logger    zerolog.Logger
}

// New creates a new live driver
func New(cfg *Config) (*Driver, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.Plan == nil {
		return nil, ErrNilPlan
	}

	if cfg.Presenter == nil {
		return nil, ErrNilPresenter
	}

	if cfg.MaxTicks < 0 {
		return nil, ErrNegativeTicks
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = cfg.Logger.With().Str("component", "live").Str("plan_id", cfg.Plan.ID).Logger()
	}

	return &Driver{
		clock:     cfg.Clock,
		plan:      cfg.Plan,
		presenter: cfg.Presenter,
		interval:  interval,
		maxTicks:  cfg.MaxTicks,
		logger:    logger,
	}, nil
}

// Run ticks until ctx is cancelled, MaxTicks is reached, or the presenter fails.
// Drinks scheduled before Run starts are never reported as crossed.
func (d *Driver) Run(ctx context.Context) error {
	ticker := d.clock.NewTicker(d.interval)
	defer ticker.Stop()

	previous := d.clock.Now()
	d.logger.Info().
		Dur("interval", d.interval).
		Int("max_ticks", d.maxTicks).
		Time("started_at", previous).
		Msg("live clock started")

	tick := 0
	for {
		select {
		case <-ctx.Done():
			d.logger.Info().Int("ticks", tick).Msg("live clock cancelled")
			return ctx.Err()
		case now := <-ticker.C():
			tick++
			snapshot := d.Snapshot(previous, now)
			snapshot.Tick = tick

			for _, drink := range snapshot.Crossed {
				d.logger.Debug().
					Int("drink", drink.Index+1).
					Float64("drinks", drink.Drinks).
					Time("due", drink.Time).
					Msg("drink due")
			}

			if err := d.presenter.Present(ctx, snapshot); err != nil {
				d.logger.Error().Err(err).Int("tick", tick).Msg("presenter failed")
				return fmt.Errorf("failed to present tick %d: %w", tick, err)
			}

			previous = now
			if d.maxTicks > 0 && tick >= d.maxTicks {
				d.logger.Info().Int("ticks", tick).Msg("live clock finished")
				return nil
			}
		}
	}
}

// Snapshot describes the plan as seen at now, with drinks crossed since previous
func (d *Driver) Snapshot(previous, now time.Time) *models.Snapshot {
	consumed, pending := bac.PartitionSchedule(d.plan.Schedule, now)

	snapshot := &models.Snapshot{
		Now:      now,
		Previous: previous,
		Consumed: consumed,
		Pending:  pending,
		Crossed:  bac.CrossedBetween(d.plan.Schedule, previous, now),
	}

	if sample, ok := bac.SampleAt(d.plan.Timeline, now); ok {
		snapshot.Current = &sample
	}

	return snapshot
}
