package terminal

import (
	"bytes"
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/ballmer/internal/common/random"
	"github.com/KirkDiggler/ballmer/internal/models"
	"github.com/KirkDiggler/ballmer/internal/services/messaging"
)

type ModelTestSuite struct {
	suite.Suite
	plan      *models.Plan
	presenter *Presenter
	bell      *bytes.Buffer
	model     *Model
}

func (s *ModelTestSuite) at(hour, minute int) time.Time {
	return time.Date(2025, 4, 19, hour, minute, 0, 0, time.UTC)
}

func (s *ModelTestSuite) SetupTest() {
	s.plan = &models.Plan{
		ID: "plan-1",
		Params: models.SessionParameters{
			Weight: 160,
			Sex:    models.SexMale,
			Start:  s.at(19, 0),
			Peak:   s.at(21, 0),
			End:    s.at(22, 0),
		},
		Schedule: []models.DrinkEvent{
			{Index: 0, Time: s.at(19, 0), Drinks: 1},
			{Index: 1, Time: s.at(20, 0), Drinks: 1},
			{Index: 2, Time: s.at(20, 30), Drinks: 0.4},
		},
		Timeline: []models.BACSample{
			{Time: s.at(19, 0), BAC: 0},
			{Time: s.at(20, 0), BAC: 0.03},
			{Time: s.at(21, 0), BAC: 0.06},
		},
	}

	msgService, err := messaging.NewService(&messaging.ServiceConfig{
		Picker: random.New(&random.Config{Seed: 3}),
	})
	s.Require().NoError(err)

	s.presenter = NewPresenter()
	s.bell = &bytes.Buffer{}

	model, err := NewModel(&Config{
		Plan:      s.plan,
		Presenter: s.presenter,
		Messaging: msgService,
		PeakBAC:   0.12,
		Bell:      s.bell,
	})
	s.Require().NoError(err)
	s.model = model
}

func TestModelTestSuite(t *testing.T) {
	suite.Run(t, new(ModelTestSuite))
}

func (s *ModelTestSuite) TestNewModelValidatesConfig() {
	_, err := NewModel(nil)
	s.Error(err)

	_, err = NewModel(&Config{Plan: s.plan, Presenter: s.presenter})
	s.Error(err)
}

func (s *ModelTestSuite) TestViewBeforeFirstTick() {
	s.Contains(s.model.View(), "Waiting for the clock")
}

func (s *ModelTestSuite) TestSnapshotRingsBellForCrossedDrinks() {
	current := s.plan.Timeline[1]
	_, cmd := s.model.Update(SnapshotMsg{Snapshot: &models.Snapshot{
		Tick:     1,
		Now:      s.at(20, 5),
		Previous: s.at(19, 55),
		Current:  &current,
		Consumed: s.plan.Schedule[:2],
		Pending:  s.plan.Schedule[2:],
		Crossed:  s.plan.Schedule[1:2],
	}})
	s.NotNil(cmd)

	s.Equal("\a", s.bell.String())

	view := s.model.View()
	s.Contains(view, "Current time: 8:05:00 PM")
	s.Contains(view, "BAC: 0.030")
	s.Contains(view, "Drink 2 of 3")
	s.Contains(view, "2 of 3 drinks in")
	s.Contains(view, "25m0s")
}

func (s *ModelTestSuite) TestSnapshotWithoutCrossedDrinksStaysQuiet() {
	s.model.Update(SnapshotMsg{Snapshot: &models.Snapshot{
		Tick:     1,
		Now:      s.at(18, 0),
		Previous: s.at(17, 59),
		Pending:  s.plan.Schedule,
	}})

	s.Empty(s.bell.String())

	view := s.model.View()
	s.Contains(view, "BAC: -")
	s.NotContains(view, "Drink 1 of 3")
}

func (s *ModelTestSuite) TestQuitKeys() {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
		{Type: tea.KeyCtrlC},
	} {
		_, cmd := s.model.Update(key)
		s.Require().NotNil(cmd)
		s.IsType(tea.QuitMsg{}, cmd())
	}
}

func (s *ModelTestSuite) TestWindowResize() {
	s.model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	s.Equal(120, s.model.width)
}

func (s *ModelTestSuite) TestPresenterDeliversSnapshot() {
	snapshot := &models.Snapshot{Tick: 4, Now: s.at(20, 0)}

	s.Require().NoError(s.presenter.Present(context.Background(), snapshot))

	msg := s.presenter.Listen()()
	s.Equal(SnapshotMsg{Snapshot: snapshot}, msg)
}

func (s *ModelTestSuite) TestPresenterHonoursCancellation() {
	s.Require().NoError(s.presenter.Present(context.Background(), &models.Snapshot{Tick: 1}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.presenter.Present(ctx, &models.Snapshot{Tick: 2})
	s.ErrorIs(err, context.Canceled)
}
