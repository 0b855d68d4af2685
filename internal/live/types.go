package live

import (
	"time"

	"github.com/KirkDiggler/ballmer/internal/common/clock"
	"github.com/KirkDiggler/ballmer/internal/models"
	"github.com/rs/zerolog"
)

// DefaultInterval is how often the clock ticks when no interval is configured
const DefaultInterval = time.Second

// Config holds the dependencies for a Driver
type Config struct {
	Clock     clock.Clock
	Plan      *models.Plan
	Presenter Presenter

	// Interval between ticks, defaults to DefaultInterval
	Interval time.Duration

	// MaxTicks stops the driver after that many ticks, 0 runs until cancelled
	MaxTicks int

	Logger *zerolog.Logger
}
