package terminal

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/ballmer/internal/models"
)

// SnapshotMsg carries a live clock snapshot into the bubbletea program
type SnapshotMsg struct {
	Snapshot *models.Snapshot
}

// Presenter hands snapshots from the live driver to the terminal model
type Presenter struct {
	snapshots chan *models.Snapshot
}

// NewPresenter creates a presenter with a single-slot buffer
func NewPresenter() *Presenter {
	return &Presenter{
		snapshots: make(chan *models.Snapshot, 1),
	}
}

// Present blocks until the model takes the snapshot or ctx is done
func (p *Presenter) Present(ctx context.Context, snapshot *models.Snapshot) error {
	select {
	case p.snapshots <- snapshot:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Listen waits for the next snapshot
func (p *Presenter) Listen() tea.Cmd {
	return func() tea.Msg {
		return SnapshotMsg{Snapshot: <-p.snapshots}
	}
}
