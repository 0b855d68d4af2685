package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/ballmer/internal/common/uuid Generator

// Generator hands out identifiers for computed plans
type Generator interface {
	NewID() string
}

// DefaultGenerator issues random version 4 UUIDs
type DefaultGenerator struct{}

func New() *DefaultGenerator {
	return &DefaultGenerator{}
}

// NewID returns a new random UUID string
func (g *DefaultGenerator) NewID() string {
	return uuid.NewString()
}

// Short returns the first block of an ID for display
func Short(id string) string {
	parsed, err := uuid.Parse(id)
	if err != nil {
		if len(id) > 8 {
			return id[:8]
		}
		return id
	}
	return parsed.String()[:8]
}
