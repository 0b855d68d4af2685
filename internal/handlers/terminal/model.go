// Package terminal renders a plan and its live clock in the terminal.
package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/KirkDiggler/ballmer/internal/common/uuid"
	"github.com/KirkDiggler/ballmer/internal/models"
	"github.com/KirkDiggler/ballmer/internal/services/messaging"
)

const (
	defaultWidth    = 80
	chartHeight     = 10
	liveClockLayout = "3:04:05 PM"
)

// Config holds the dependencies for a Model
type Config struct {
	Plan      *models.Plan
	Presenter *Presenter
	Messaging messaging.Service

	// PeakBAC is the BAC the plan aims for
	PeakBAC float64

	// Bell receives a terminal bell for every drink that comes due, defaults to stderr
	Bell io.Writer
}

// Model is the bubbletea model for the live view
type Model struct {
	plan      *models.Plan
	presenter *Presenter
	messaging messaging.Service
	peakBAC   float64
	bell      io.Writer

	snapshot *models.Snapshot
	banner   string
	status   string
	width    int
}

// NewModel creates the live view model
func NewModel(cfg *Config) (*Model, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Plan == nil {
		return nil, errors.New("plan cannot be nil")
	}

	if cfg.Presenter == nil {
		return nil, errors.New("presenter cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	bell := cfg.Bell
	if bell == nil {
		bell = os.Stderr
	}

	return &Model{
		plan:      cfg.Plan,
		presenter: cfg.Presenter,
		messaging: cfg.Messaging,
		peakBAC:   cfg.PeakBAC,
		bell:      bell,
		width:     defaultWidth,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return m.presenter.Listen()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case SnapshotMsg:
		m.applySnapshot(msg.Snapshot)
		return m, m.presenter.Listen()
	}
	return m, nil
}

func (m *Model) applySnapshot(snapshot *models.Snapshot) {
	if snapshot == nil {
		return
	}
	m.snapshot = snapshot

	ctx := context.Background()
	for _, drink := range snapshot.Crossed {
		due, err := m.messaging.GetDrinkDueMessage(ctx, &messaging.GetDrinkDueMessageInput{
			Drink:       drink,
			TotalDrinks: len(m.plan.Schedule),
		})
		if err != nil {
			continue
		}
		m.banner = fmt.Sprintf("%s\n%s", due.Title, due.Message)
		fmt.Fprint(m.bell, "\a")
	}

	params := m.plan.Params
	input := &messaging.GetStatusMessageInput{
		PeakBAC:     m.peakBAC,
		Started:     !snapshot.Now.Before(params.Start),
		PeakReached: !snapshot.Now.Before(params.Peak),
		Finished:    !snapshot.Now.Before(params.End),
	}
	if snapshot.Current != nil {
		input.CurrentBAC = snapshot.Current.BAC
	}
	if len(snapshot.Pending) > 0 {
		input.UntilNextDrink = snapshot.Pending[0].Time.Sub(snapshot.Now)
	}

	status, err := m.messaging.GetStatusMessage(ctx, input)
	if err == nil {
		m.status = status.Message
	}
}

func (m *Model) View() string {
	if m.snapshot == nil {
		return mutedStyle.Render("Waiting for the clock...") + "\n"
	}

	now := m.snapshot.Now
	header := titleStyle.Render("Current time: " + now.Format(liveClockLayout))

	bacLine := "BAC: -"
	if m.snapshot.Current != nil {
		bacLine = fmt.Sprintf("BAC: %.3f", m.snapshot.Current.BAC)
	}

	inner := m.width - 4
	sections := []string{
		lipgloss.JoinHorizontal(lipgloss.Top, header, "   ", hotStyle.Render(bacLine)),
		mutedStyle.Render(m.status),
	}

	if m.banner != "" {
		sections = append(sections, bannerStyle.Render(m.banner))
	}

	sections = append(sections,
		paneStyle.Render(titleStyle.Render("Drinks")+"\n"+RenderDrinkChart(m.plan.Schedule, now, inner-2)),
		paneStyle.Render(titleStyle.Render("BAC")+"\n"+RenderBACChart(m.plan.Timeline, m.snapshot.Current, chartHeight, inner-2)),
		mutedStyle.Render(fmt.Sprintf("plan %s • %d of %d drinks in • q to quit",
			uuid.Short(m.plan.ID), len(m.snapshot.Consumed), len(m.plan.Schedule))),
	)

	return strings.Join(sections, "\n") + "\n"
}
