package live

import (
	"context"

	"github.com/KirkDiggler/ballmer/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_presenter.go github.com/KirkDiggler/ballmer/internal/live Presenter

// Presenter receives a snapshot on every tick of the live clock
type Presenter interface {
	Present(ctx context.Context, snapshot *models.Snapshot) error
}
