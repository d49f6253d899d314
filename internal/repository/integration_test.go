package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/limbo/lifetrack/internal/repository"
	"github.com/limbo/lifetrack/pkg/entity"
	"github.com/limbo/lifetrack/pkg/tzclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("lifetrack"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	cfg := &testPGConfig{connStr: connStr}
	if err = repository.Migrate(cfg, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestEventStoreIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	cfg := setupTestDB(t)
	pool := repository.NewPool(cfg)
	t.Cleanup(pool.Close)

	users := repository.NewUsersRepo(pool)
	water := repository.NewWaterRepo(pool)
	booleans := repository.NewBooleanDayRepo(pool)
	sleep := repository.NewSleepRepo(pool)
	screen := repository.NewScreenTimeRepo(pool)
	events := repository.NewEventsRepo(pool)

	ctx := context.Background()
	var userID int64 = 100500
	profile, created, err := users.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, entity.NewUserProfile(userID), profile)
	_, created, err = users.GetOrCreate(ctx, userID)
	require.NoError(t, err)
	assert.False(t, created)

	tz := "Asia/Tokyo"
	target := 2000
	profile, err = users.UpdateSettings(ctx, userID, &entity.SettingsUpdate{TimeZone: &tz, DailyWaterTargetMl: &target})
	require.NoError(t, err)
	assert.Equal(t, tz, profile.TimeZone)
	assert.Equal(t, 250, profile.CupSizeMl)

	t.Run("water round trip within local day", func(t *testing.T) {
		// 23:30 UTC is 08:30 next day in Tokyo
		instant := time.Date(2024, time.May, 1, 23, 30, 0, 0, time.UTC)
		require.NoError(t, water.Add(ctx, userID, 250, instant))
		from, to := tzclock.DayBounds(tz, tzclock.LocalDate(tz, instant))
		got, err := water.GetByRange(ctx, userID, from, to)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 250, got[0].AmountMl)
		assert.True(t, instant.Equal(got[0].InstantUTC))
	})

	t.Run("boolean upsert keeps one row", func(t *testing.T) {
		date := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)
		now := time.Date(2024, time.May, 2, 10, 0, 0, 0, time.UTC)
		require.NoError(t, booleans.Upsert(ctx, entity.Exercise, userID, date, true, now))
		require.NoError(t, booleans.Upsert(ctx, entity.Exercise, userID, date, false, now.Add(time.Hour)))
		all, err := booleans.ListByUser(ctx, entity.Exercise, userID)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.False(t, all[0].Value)
	})

	t.Run("sleep pairing", func(t *testing.T) {
		start := time.Date(2024, time.May, 2, 13, 0, 0, 0, time.UTC)
		wake := start.Add(7*time.Hour + 59*time.Second)
		date := tzclock.LocalDate(tz, wake)
		require.NoError(t, sleep.Start(ctx, userID, start))
		open, err := sleep.LatestOpen(ctx, userID)
		require.NoError(t, err)
		assert.True(t, start.Equal(*open.StartUTC))

		interval, err := sleep.LogWake(ctx, userID, date, wake)
		require.NoError(t, err)
		require.NotNil(t, interval.DurationMinutes)
		assert.Equal(t, 420, *interval.DurationMinutes)

		open, err = sleep.LatestOpen(ctx, userID)
		require.NoError(t, err)
		assert.Nil(t, open)

		orphan, err := sleep.LogWake(ctx, userID, date, wake.Add(time.Hour))
		require.NoError(t, err)
		assert.Nil(t, orphan.DurationMinutes)

		minutes, err := sleep.LatestDurationForDate(ctx, userID, date)
		require.NoError(t, err)
		require.NotNil(t, minutes)
		assert.Equal(t, 420, *minutes)
	})

	t.Run("purge keeps profile", func(t *testing.T) {
		date := time.Date(2024, time.May, 3, 0, 0, 0, 0, time.UTC)
		require.NoError(t, screen.Add(ctx, userID, date, 30, date.Add(time.Hour)))
		require.NoError(t, events.PurgeAll(ctx, userID))

		total, err := screen.SumByDate(ctx, userID, date)
		require.NoError(t, err)
		assert.Zero(t, total)
		all, err := water.ListByUser(ctx, userID)
		require.NoError(t, err)
		assert.Empty(t, all)

		kept, err := users.FindByID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 2000, kept.DailyWaterTargetMl)
	})
}
