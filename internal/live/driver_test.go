package live

import (
	"context"
	"errors"
	"testing"
	"time"

	clockmocks "github.com/KirkDiggler/ballmer/internal/common/clock/mocks"
	"github.com/KirkDiggler/ballmer/internal/live/mocks"
	"github.com/KirkDiggler/ballmer/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DriverTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockClock     *clockmocks.MockClock
	mockTicker    *clockmocks.MockTicker
	mockPresenter *mocks.MockPresenter
	ticks         chan time.Time
	plan          *models.Plan
	driver        *Driver
	ctx           context.Context
}

func (s *DriverTestSuite) at(hour, minute int) time.Time {
	return time.Date(2025, 4, 19, hour, minute, 0, 0, time.UTC)
}

func (s *DriverTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockmocks.NewMockClock(s.mockCtrl)
	s.mockTicker = clockmocks.NewMockTicker(s.mockCtrl)
	s.mockPresenter = mocks.NewMockPresenter(s.mockCtrl)
	s.ctx = context.Background()
	s.ticks = make(chan time.Time, 8)

	var recv <-chan time.Time = s.ticks
	s.mockTicker.EXPECT().C().Return(recv).AnyTimes()

	s.plan = &models.Plan{
		ID: "plan-1",
		Schedule: []models.DrinkEvent{
			{Index: 0, Time: s.at(9, 0), Drinks: 1},
			{Index: 1, Time: s.at(9, 30), Drinks: 1},
			{Index: 2, Time: s.at(10, 0), Drinks: 0.5},
		},
		Timeline: []models.BACSample{
			{Time: s.at(9, 0), BAC: 0},
			{Time: s.at(9, 30), BAC: 0.02},
			{Time: s.at(10, 0), BAC: 0.04},
			{Time: s.at(10, 30), BAC: 0.05},
		},
	}

	driver, err := New(&Config{
		Clock:     s.mockClock,
		Plan:      s.plan,
		Presenter: s.mockPresenter,
		Interval:  time.Minute,
	})
	s.Require().NoError(err)
	s.driver = driver
}

func (s *DriverTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDriverTestSuite(t *testing.T) {
	suite.Run(t, new(DriverTestSuite))
}

func (s *DriverTestSuite) withMaxTicks(n int) *Driver {
	driver, err := New(&Config{
		Clock:     s.mockClock,
		Plan:      s.plan,
		Presenter: s.mockPresenter,
		Interval:  time.Minute,
		MaxTicks:  n,
	})
	s.Require().NoError(err)
	return driver
}

func (s *DriverTestSuite) TestNewValidatesConfig() {
	testCases := []struct {
		name     string
		cfg      *Config
		expected error
	}{
		{"nil config", nil, ErrNilConfig},
		{"nil clock", &Config{Plan: s.plan, Presenter: s.mockPresenter}, ErrNilClock},
		{"nil plan", &Config{Clock: s.mockClock, Presenter: s.mockPresenter}, ErrNilPlan},
		{"nil presenter", &Config{Clock: s.mockClock, Plan: s.plan}, ErrNilPresenter},
		{"negative ticks", &Config{Clock: s.mockClock, Plan: s.plan, Presenter: s.mockPresenter, MaxTicks: -1}, ErrNegativeTicks},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := New(tc.cfg)
			s.ErrorIs(err, tc.expected)
		})
	}
}

func (s *DriverTestSuite) TestNewDefaultsInterval() {
	driver, err := New(&Config{Clock: s.mockClock, Plan: s.plan, Presenter: s.mockPresenter})
	s.Require().NoError(err)
	s.Equal(DefaultInterval, driver.interval)
}

func (s *DriverTestSuite) TestRunReportsCrossedDrinks() {
	driver := s.withMaxTicks(3)

	s.mockClock.EXPECT().Now().Return(s.at(9, 10))
	s.mockClock.EXPECT().NewTicker(time.Minute).Return(s.mockTicker)
	s.mockTicker.EXPECT().Stop()

	s.ticks <- s.at(9, 20)
	s.ticks <- s.at(9, 40)
	s.ticks <- s.at(10, 10)

	var snapshots []*models.Snapshot
	s.mockPresenter.EXPECT().Present(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *models.Snapshot) error {
			snapshots = append(snapshots, snapshot)
			return nil
		}).Times(3)

	err := driver.Run(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(snapshots, 3)

	// the 09:00 drink was already past when the clock started
	s.Equal(1, snapshots[0].Tick)
	s.Equal(s.at(9, 10), snapshots[0].Previous)
	s.Empty(snapshots[0].Crossed)
	s.Len(snapshots[0].Consumed, 1)

	s.Equal(2, snapshots[1].Tick)
	s.Equal(s.at(9, 20), snapshots[1].Previous)
	s.Require().Len(snapshots[1].Crossed, 1)
	s.Equal(1, snapshots[1].Crossed[0].Index)

	s.Equal(3, snapshots[2].Tick)
	s.Require().Len(snapshots[2].Crossed, 1)
	s.Equal(2, snapshots[2].Crossed[0].Index)
	s.Len(snapshots[2].Consumed, 3)
	s.Empty(snapshots[2].Pending)
	s.Require().NotNil(snapshots[2].Current)
	s.Equal(s.at(10, 0), snapshots[2].Current.Time)
}

func (s *DriverTestSuite) TestRunReportsDrinkDueExactlyOnTick() {
	driver := s.withMaxTicks(2)

	s.mockClock.EXPECT().Now().Return(s.at(9, 10))
	s.mockClock.EXPECT().NewTicker(time.Minute).Return(s.mockTicker)
	s.mockTicker.EXPECT().Stop()

	s.ticks <- s.at(9, 30)
	s.ticks <- s.at(9, 31)

	var snapshots []*models.Snapshot
	s.mockPresenter.EXPECT().Present(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, snapshot *models.Snapshot) error {
			snapshots = append(snapshots, snapshot)
			return nil
		}).Times(2)

	s.Require().NoError(driver.Run(s.ctx))
	s.Require().Len(snapshots, 2)

	// due at 09:30 but not yet consumed on the 09:30 tick
	s.Empty(snapshots[0].Crossed)
	s.Len(snapshots[0].Consumed, 1)

	s.Require().Len(snapshots[1].Crossed, 1)
	s.Equal(1, snapshots[1].Crossed[0].Index)
	s.Len(snapshots[1].Consumed, 2)
}

func (s *DriverTestSuite) TestRunStopsOnCancel() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	s.mockClock.EXPECT().Now().Return(s.at(9, 10))
	s.mockClock.EXPECT().NewTicker(time.Minute).Return(s.mockTicker)
	s.mockTicker.EXPECT().Stop()

	err := s.driver.Run(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *DriverTestSuite) TestRunCancelledMidway() {
	ctx, cancel := context.WithCancel(s.ctx)
	defer cancel()

	s.mockClock.EXPECT().Now().Return(s.at(9, 10))
	s.mockClock.EXPECT().NewTicker(time.Minute).Return(s.mockTicker)
	s.mockTicker.EXPECT().Stop()

	s.ticks <- s.at(9, 20)
	s.mockPresenter.EXPECT().Present(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *models.Snapshot) error {
			cancel()
			return nil
		})

	err := s.driver.Run(ctx)
	s.ErrorIs(err, context.Canceled)
}

func (s *DriverTestSuite) TestRunReturnsPresenterError() {
	presentErr := errors.New("screen gone")

	s.mockClock.EXPECT().Now().Return(s.at(9, 10))
	s.mockClock.EXPECT().NewTicker(time.Minute).Return(s.mockTicker)
	s.mockTicker.EXPECT().Stop()

	s.ticks <- s.at(9, 20)
	s.mockPresenter.EXPECT().Present(gomock.Any(), gomock.Any()).Return(presentErr)

	err := s.driver.Run(s.ctx)
	s.ErrorIs(err, presentErr)
}

func (s *DriverTestSuite) TestSnapshotBeforeTimeline() {
	snapshot := s.driver.Snapshot(s.at(8, 0), s.at(8, 30))

	s.Nil(snapshot.Current)
	s.Empty(snapshot.Consumed)
	s.Len(snapshot.Pending, 3)
	s.Empty(snapshot.Crossed)
}

func (s *DriverTestSuite) TestSnapshotEventOnTickIsNotYetConsumed() {
	snapshot := s.driver.Snapshot(s.at(9, 10), s.at(9, 30))

	s.Len(snapshot.Consumed, 1)
	s.Len(snapshot.Pending, 2)
	s.Empty(snapshot.Crossed)
	s.Require().NotNil(snapshot.Current)
	s.Equal(s.at(9, 0), snapshot.Current.Time)
}

func (s *DriverTestSuite) TestSnapshotAfterEnd() {
	snapshot := s.driver.Snapshot(s.at(9, 0), s.at(23, 0))

	s.Len(snapshot.Consumed, 3)
	s.Empty(snapshot.Pending)
	s.Len(snapshot.Crossed, 3)
	s.Require().NotNil(snapshot.Current)
	s.Equal(s.at(10, 30), snapshot.Current.Time)
}
