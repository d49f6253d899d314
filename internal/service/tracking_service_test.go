package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	errorvalues "github.com/limbo/lifetrack/internal/error_values"
	"github.com/limbo/lifetrack/internal/service"
	servicemocks "github.com/limbo/lifetrack/internal/service/mocks"
	"github.com/limbo/lifetrack/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTrackingService(t *testing.T) (*repoMocks, *servicemocks.MockAggregationServiceI, *service.TrackingService) {
	ctrl := gomock.NewController(t)
	repos, r := newRepoMocks(ctrl)
	aggregator := servicemocks.NewMockAggregationServiceI(ctrl)
	return repos, aggregator, service.NewTrackingService(r, aggregator).WithClock(fixedClock)
}

func TestLogWaterActivatesNewUser(t *testing.T) {
	t.Parallel()
	repos, aggregator, serv := newTrackingService(t)
	activator := servicemocks.NewMockActivator(gomock.NewController(t))
	serv.WithActivation(activator)

	testCases := []struct {
		Desc         string
		MockPrepFunc func()
	}{
		{
			Desc: "created profile is activated",
			MockPrepFunc: func() {
				repos.users.EXPECT().GetOrCreate(gomock.Any(), testUserID).Return(tokyoProfile(), true, nil)
				activator.EXPECT().Activate(gomock.Any(), testUserID).Return(nil)
			},
		},
		{
			Desc: "activation failure does not fail the log",
			MockPrepFunc: func() {
				repos.users.EXPECT().GetOrCreate(gomock.Any(), testUserID).Return(tokyoProfile(), true, nil)
				activator.EXPECT().Activate(gomock.Any(), testUserID).Return(errDB)
			},
		},
		{
			Desc: "existing profile is not activated",
			MockPrepFunc: func() {
				repos.users.EXPECT().GetOrCreate(gomock.Any(), testUserID).Return(tokyoProfile(), false, nil)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		repos.water.EXPECT().Add(gomock.Any(), testUserID, 250, fixedNow).Return(nil)
		aggregator.EXPECT().WaterTotalForLocalDate(gomock.Any(), testUserID, tokyoDate, "Asia/Tokyo").Return(250, nil)
		_, err := serv.LogWater(context.Background(), testUserID, 250)
		assert.NoError(t, err, tc.Desc)
	}
}

func TestLogWater(t *testing.T) {
	t.Parallel()
	repos, aggregator, serv := newTrackingService(t)

	testCases := []struct {
		Desc         string
		Error        error
		AmountMl     int
		Expected     *service.WaterLogResult
		MockPrepFunc func()
	}{
		{
			Desc:     "success",
			AmountMl: 250,
			Expected: &service.WaterLogResult{AmountMl: 250, TotalMl: 1250, TargetMl: 2000, LocalDate: tokyoDate},
			MockPrepFunc: func() {
				repos.users.EXPECT().GetOrCreate(gomock.Any(), testUserID).Return(tokyoProfile(), false, nil)
				repos.water.EXPECT().Add(gomock.Any(), testUserID, 250, fixedNow).Return(nil)
				aggregator.EXPECT().WaterTotalForLocalDate(gomock.Any(), testUserID, tokyoDate, "Asia/Tokyo").Return(1250, nil)
			},
		},
		{
			Desc:         "zero amount",
			AmountMl:     0,
			Error:        errorvalues.ErrInvalidInput,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "negative amount",
			AmountMl:     -100,
			Error:        errorvalues.ErrInvalidInput,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "absurd amount",
			AmountMl:     50000,
			Error:        errorvalues.ErrInvalidInput,
			MockPrepFunc: func() {},
		},
		{
			Desc:     "append is not retried",
			AmountMl: 300,
			Error:    errorvalues.ErrStorageUnavailable,
			MockPrepFunc: func() {
				repos.users.EXPECT().GetOrCreate(gomock.Any(), testUserID).Return(tokyoProfile(), false, nil)
				repos.water.EXPECT().Add(gomock.Any(), testUserID, 300, fixedNow).Return(errDB).Times(1)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		res, err := serv.LogWater(context.Background(), testUserID, tc.AmountMl)
		if tc.Error != nil {
			assert.ErrorIs(t, err, tc.Error, tc.Desc)
			continue
		}
		require.NoError(t, err, tc.Desc)
		assert.Equal(t, tc.Expected, res, tc.Desc)
	}
}

func TestSetBooleanDay(t *testing.T) {
	t.Parallel()
	repos, _, serv := newTrackingService(t)
	explicit := time.Date(2025, 1, 5, 13, 0, 0, 0, time.UTC)

	testCases := []struct {
		Desc         string
		Error        error
		Kind         entity.BooleanKind
		Value        bool
		Date         *time.Time
		MockPrepFunc func()
	}{
		{
			Desc:  "today in user zone",
			Kind:  entity.Exercise,
			Value: true,
			MockPrepFunc: func() {
				repos.users.EXPECT().GetOrCreate(gomock.Any(), testUserID).Return(tokyoProfile(), false, nil)
				repos.booleanDay.EXPECT().Upsert(gomock.Any(), entity.Exercise, testUserID, tokyoDate, true, fixedNow).Return(nil)
			},
		},
		{
			Desc:  "explicit date truncated",
			Kind:  entity.Retention,
			Value: false,
			Date:  &explicit,
			MockPrepFunc: func() {
				repos.users.EXPECT().GetOrCreate(gomock.Any(), testUserID).Return(tokyoProfile(), false, nil)
				repos.booleanDay.EXPECT().Upsert(gomock.Any(), entity.Retention, testUserID,
					time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), false, fixedNow).Return(nil)
			},
		},
		{
			Desc:  "upsert retried once",
			Kind:  entity.Exercise,
			Value: false,
			MockPrepFunc: func() {
				repos.users.EXPECT().GetOrCreate(gomock.Any(), testUserID).Return(tokyoProfile(), false, nil)
				gomock.InOrder(
					repos.booleanDay.EXPECT().Upsert(gomock.Any(), entity.Exercise, testUserID, tokyoDate, false, fixedNow).Return(errDB),
					repos.booleanDay.EXPECT().Upsert(gomock.Any(), entity.Exercise, testUserID, tokyoDate, false, fixedNow).Return(nil),
				)
			},
		},
		{
			Desc:         "unknown kind",
			Kind:         entity.BooleanKind("sauna"),
			Error:        errorvalues.ErrInvalidInput,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		err := serv.SetBooleanDay(context.Background(), tc.Kind, testUserID, tc.Value, tc.Date)
		if tc.Error != nil {
			assert.ErrorIs(t, err, tc.Error, tc.Desc)
			continue
		}
		assert.NoError(t, err, tc.Desc)
	}
}

func TestLogActivity(t *testing.T) {
	t.Parallel()
	repos, _, serv := newTrackingService(t)

	testCases := []struct {
		Desc         string
		Error        error
		Type         string
		Details      string
		MockPrepFunc func()
	}{
		{
			Desc:    "success trims input",
			Type:    "  reading ",
			Details: " 30 pages ",
			MockPrepFunc: func() {
				repos.users.EXPECT().GetOrCreate(gomock.Any(), testUserID).Return(tokyoProfile(), false, nil)
				repos.activities.EXPECT().Add(gomock.Any(), &entity.ActivityEvent{
					UserID:       testUserID,
					LocalDate:    tokyoDate,
					ActivityType: "reading",
					Details:      "30 pages",
					InstantUTC:   fixedNow,
				}).Return(nil)
			},
		},
		{
			Desc:         "blank type",
			Type:         "   ",
			Error:        errorvalues.ErrInvalidInput,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		err := serv.LogActivity(context.Background(), testUserID, tc.Type, tc.Details)
		if tc.Error != nil {
			assert.ErrorIs(t, err, tc.Error, tc.Desc)
			continue
		}
		assert.NoError(t, err, tc.Desc)
	}
}

func TestSleepFlow(t *testing.T) {
	t.Parallel()
	repos, _, serv := newTrackingService(t)
	ctx := context.Background()
	start := fixedNow.Add(-8 * time.Hour)
	duration := 480

	repos.users.EXPECT().GetOrCreate(gomock.Any(), testUserID).Return(tokyoProfile(), false, nil).Times(2)
	repos.sleep.EXPECT().Start(gomock.Any(), testUserID, fixedNow).Return(nil)
	repos.sleep.EXPECT().LogWake(gomock.Any(), testUserID, tokyoDate, fixedNow).Return(&entity.SleepInterval{
		ID:              7,
		UserID:          testUserID,
		LocalDate:       &tokyoDate,
		StartUTC:        &start,
		WakeUTC:         &fixedNow,
		DurationMinutes: &duration,
	}, nil)

	require.NoError(t, serv.StartSleep(ctx, testUserID))
	interval, err := serv.Wake(ctx, testUserID)
	require.NoError(t, err)
	require.NotNil(t, interval.DurationMinutes)
	assert.Equal(t, 480, *interval.DurationMinutes)
}

func TestOpenSleep(t *testing.T) {
	t.Parallel()
	repos, _, serv := newTrackingService(t)
	start := fixedNow.Add(-time.Hour)

	testCases := []struct {
		Desc         string
		Error        error
		Expected     *entity.SleepInterval
		MockPrepFunc func()
	}{
		{
			Desc:     "open interval",
			Expected: &entity.SleepInterval{ID: 3, UserID: testUserID, StartUTC: &start},
			MockPrepFunc: func() {
				repos.sleep.EXPECT().LatestOpen(gomock.Any(), testUserID).
					Return(&entity.SleepInterval{ID: 3, UserID: testUserID, StartUTC: &start}, nil)
			},
		},
		{
			Desc: "awake",
			MockPrepFunc: func() {
				repos.sleep.EXPECT().LatestOpen(gomock.Any(), testUserID).Return(nil, nil)
			},
		},
		{
			Desc:     "retried once",
			Expected: &entity.SleepInterval{ID: 3, UserID: testUserID, StartUTC: &start},
			MockPrepFunc: func() {
				gomock.InOrder(
					repos.sleep.EXPECT().LatestOpen(gomock.Any(), testUserID).Return(nil, errDB),
					repos.sleep.EXPECT().LatestOpen(gomock.Any(), testUserID).
						Return(&entity.SleepInterval{ID: 3, UserID: testUserID, StartUTC: &start}, nil),
				)
			},
		},
		{
			Desc:  "storage unavailable",
			Error: errorvalues.ErrStorageUnavailable,
			MockPrepFunc: func() {
				repos.sleep.EXPECT().LatestOpen(gomock.Any(), testUserID).Return(nil, errDB).Times(2)
			},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		interval, err := serv.OpenSleep(context.Background(), testUserID)
		if tc.Error != nil {
			assert.ErrorIs(t, err, tc.Error, tc.Desc)
			continue
		}
		require.NoError(t, err, tc.Desc)
		assert.Equal(t, tc.Expected, interval, tc.Desc)
	}
}

func TestWakeIsNotRetried(t *testing.T) {
	t.Parallel()
	repos, _, serv := newTrackingService(t)

	repos.users.EXPECT().GetOrCreate(gomock.Any(), testUserID).Return(tokyoProfile(), false, nil)
	repos.sleep.EXPECT().LogWake(gomock.Any(), testUserID, tokyoDate, fixedNow).Return(nil, errDB).Times(1)
	_, err := serv.Wake(context.Background(), testUserID)
	assert.ErrorIs(t, err, errorvalues.ErrStorageUnavailable)
}

func TestLogScreenTime(t *testing.T) {
	t.Parallel()
	repos, _, serv := newTrackingService(t)

	repos.users.EXPECT().GetOrCreate(gomock.Any(), testUserID).Return(tokyoProfile(), false, nil).Times(2)
	repos.screenTime.EXPECT().Add(gomock.Any(), testUserID, tokyoDate, 45, fixedNow).Return(nil)
	repos.screenTime.EXPECT().Add(gomock.Any(), testUserID, tokyoDate, 0, fixedNow).Return(nil)

	assert.NoError(t, serv.LogScreenTime(context.Background(), testUserID, 45))
	assert.NoError(t, serv.LogScreenTime(context.Background(), testUserID, 0))
	assert.ErrorIs(t, serv.LogScreenTime(context.Background(), testUserID, -1), errorvalues.ErrInvalidInput)
	assert.ErrorIs(t, serv.LogScreenTime(context.Background(), testUserID, 1441), errorvalues.ErrInvalidInput)
}

func TestReset(t *testing.T) {
	t.Parallel()
	repos, _, serv := newTrackingService(t)

	gomock.InOrder(
		repos.events.EXPECT().PurgeAll(gomock.Any(), testUserID).Return(errDB),
		repos.events.EXPECT().PurgeAll(gomock.Any(), testUserID).Return(nil),
	)
	assert.NoError(t, serv.Reset(context.Background(), testUserID))
}

func TestExport(t *testing.T) {
	t.Parallel()
	repos, _, serv := newTrackingService(t)

	testCases := []struct {
		Desc         string
		Error        error
		Kind         entity.EventKind
		Check        func(t *testing.T, dump *entity.EventDump)
		MockPrepFunc func()
	}{
		{
			Desc: "water",
			Kind: entity.WaterKind,
			Check: func(t *testing.T, dump *entity.EventDump) {
				assert.Len(t, dump.Water, 2)
				assert.Equal(t, int64(1), dump.Water[0].ID)
			},
			MockPrepFunc: func() {
				repos.water.EXPECT().ListByUser(gomock.Any(), testUserID).Return([]entity.WaterEvent{{ID: 1}, {ID: 2}}, nil)
			},
		},
		{
			Desc: "retention",
			Kind: entity.RetentionKind,
			Check: func(t *testing.T, dump *entity.EventDump) {
				assert.Len(t, dump.BooleanDay, 1)
			},
			MockPrepFunc: func() {
				repos.booleanDay.EXPECT().ListByUser(gomock.Any(), entity.Retention, testUserID).
					Return([]entity.BooleanDayEvent{{ID: 3, Kind: entity.Retention}}, nil)
			},
		},
		{
			Desc: "sleep",
			Kind: entity.SleepKind,
			Check: func(t *testing.T, dump *entity.EventDump) {
				assert.Len(t, dump.Sleep, 1)
			},
			MockPrepFunc: func() {
				repos.sleep.EXPECT().ListByUser(gomock.Any(), testUserID).Return([]entity.SleepInterval{{ID: 4}}, nil)
			},
		},
		{
			Desc: "screen time",
			Kind: entity.ScreenTimeKind,
			Check: func(t *testing.T, dump *entity.EventDump) {
				assert.Len(t, dump.ScreenTime, 1)
			},
			MockPrepFunc: func() {
				repos.screenTime.EXPECT().ListByUser(gomock.Any(), testUserID).Return([]entity.ScreenTimeEvent{{ID: 5}}, nil)
			},
		},
		{
			Desc: "activities",
			Kind: entity.ActivityKind,
			Check: func(t *testing.T, dump *entity.EventDump) {
				assert.Empty(t, dump.Activities)
			},
			MockPrepFunc: func() {
				repos.activities.EXPECT().ListByUser(gomock.Any(), testUserID).Return(nil, nil)
			},
		},
		{
			Desc:         "unknown kind",
			Kind:         entity.EventKind("steps"),
			Error:        errorvalues.ErrUnknownEventKind,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		tc.MockPrepFunc()
		dump, err := serv.Export(context.Background(), testUserID, tc.Kind)
		if tc.Error != nil {
			assert.ErrorIs(t, err, tc.Error, tc.Desc)
			continue
		}
		require.NoError(t, err, tc.Desc)
		assert.Equal(t, tc.Kind, dump.Kind)
		tc.Check(t, dump)
	}
}
