package random

import (
	"math/rand"
	"sync"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_random.go github.com/KirkDiggler/ballmer/internal/common/random Picker

// Picker chooses an index from a list of n options
type Picker interface {
	Pick(n int) int
}

// SeededPicker picks indexes from a seeded random source
type SeededPicker struct {
	mu     sync.Mutex
	random *rand.Rand
}

// Config for the picker
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new picker
func New(cfg *Config) *SeededPicker {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &SeededPicker{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Pick returns an index in [0, n). It returns 0 when n is not positive.
func (p *SeededPicker) Pick(n int) int {
	if n < 1 {
		return 0
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.random.Intn(n)
}
