package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifetrack/internal/error_values"
	"github.com/limbo/lifetrack/internal/repository"
	"github.com/limbo/lifetrack/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var profileColumns = []string{"user_id", "daily_water_target_ml", "cup_size_ml", "wake_time_minutes", "sleep_time_minutes", "tz"}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestGetOrCreateUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepo(conn)
	insert := regexp.QuoteMeta(`INSERT INTO users (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING
RETURNING user_id, daily_water_target_ml, cup_size_ml, wake_time_minutes, sleep_time_minutes, tz;`)
	selectQ := regexp.QuoteMeta(`SELECT user_id, daily_water_target_ml, cup_size_ml, wake_time_minutes, sleep_time_minutes, tz FROM users WHERE user_id = $1;`)
	var userID int64 = 42
	ctx := context.Background()

	t.Run("created with defaults", func(t *testing.T) {
		conn.ExpectQuery(insert).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(profileColumns).AddRow(userID, 4000, 250, (*int)(nil), (*int)(nil), "UTC"))
		p, created, err := repo.GetOrCreate(ctx, userID)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, entity.NewUserProfile(userID), p)
	})
	t.Run("existing keeps settings", func(t *testing.T) {
		conn.ExpectQuery(insert).WithArgs(userID).WillReturnRows(pgxmock.NewRows(profileColumns))
		conn.ExpectQuery(selectQ).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows(profileColumns).AddRow(userID, 2000, 300, intPtr(420), intPtr(1350), "Europe/Berlin"))
		p, created, err := repo.GetOrCreate(ctx, userID)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, 2000, p.DailyWaterTargetMl)
		assert.Equal(t, 300, p.CupSizeMl)
		require.NotNil(t, p.WakeMinutes)
		assert.Equal(t, 420, *p.WakeMinutes)
		require.NotNil(t, p.SleepMinutes)
		assert.Equal(t, 1350, *p.SleepMinutes)
		assert.Equal(t, "Europe/Berlin", p.TimeZone)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(insert).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, created, err := repo.GetOrCreate(ctx, userID)
		assert.False(t, created)
		assert.ErrorIs(t, err, errorvalues.ErrStorageUnavailable)
		assert.EqualError(t, err, "creating user error: storage unavailable: db error")
	})
	t.Run("empty id", func(t *testing.T) {
		_, _, err := repo.GetOrCreate(ctx, 0)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	})
	assert.NoError(t, conn.ExpectationsWereMet())
}

func TestFindUserByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepo(conn)
	query := regexp.QuoteMeta(`SELECT user_id, daily_water_target_ml, cup_size_ml, wake_time_minutes, sleep_time_minutes, tz FROM users WHERE user_id = $1;`)
	var userID int64 = 7
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc: "found",
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(userID).
					WillReturnRows(pgxmock.NewRows(profileColumns).AddRow(userID, 4000, 250, (*int)(nil), (*int)(nil), "UTC"))
			},
		},
		{
			Desc:  "not found",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			Desc:  "db error",
			Error: errorvalues.ErrStorageUnavailable,
			MockPrepFunc: func() {
				conn.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			p, err := repo.FindByID(ctx, userID)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				assert.Nil(t, p)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, userID, p.UserID)
			}
		})
	}
}

func TestUpdateSettings(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepo(conn)
	query := regexp.QuoteMeta(`UPDATE users SET
	daily_water_target_ml = COALESCE($1, daily_water_target_ml),
	cup_size_ml = COALESCE($2, cup_size_ml),
	wake_time_minutes = COALESCE($3, wake_time_minutes),
	sleep_time_minutes = COALESCE($4, sleep_time_minutes),
	tz = COALESCE($5, tz)
WHERE user_id = $6
RETURNING user_id, daily_water_target_ml, cup_size_ml, wake_time_minutes, sleep_time_minutes, tz;`)
	var userID int64 = 7
	upd := &entity.SettingsUpdate{
		WakeMinutes: intPtr(420),
		TimeZone:    strPtr("Asia/Tokyo"),
	}
	ctx := context.Background()

	t.Run("partial update", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(upd.DailyWaterTargetMl, upd.CupSizeMl, upd.WakeMinutes, upd.SleepMinutes, upd.TimeZone, userID).
			WillReturnRows(pgxmock.NewRows(profileColumns).AddRow(userID, 4000, 250, intPtr(420), (*int)(nil), "Asia/Tokyo"))
		p, err := repo.UpdateSettings(ctx, userID, upd)
		require.NoError(t, err)
		assert.Equal(t, "Asia/Tokyo", p.TimeZone)
		assert.Equal(t, 420, *p.WakeMinutes)
		assert.Nil(t, p.SleepMinutes)
	})
	t.Run("user not found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(upd.DailyWaterTargetMl, upd.CupSizeMl, upd.WakeMinutes, upd.SleepMinutes, upd.TimeZone, userID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.UpdateSettings(ctx, userID, upd)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(upd.DailyWaterTargetMl, upd.CupSizeMl, upd.WakeMinutes, upd.SleepMinutes, upd.TimeZone, userID).
			WillReturnError(errors.New("db error"))
		_, err := repo.UpdateSettings(ctx, userID, upd)
		assert.EqualError(t, err, "updating user settings error: storage unavailable: db error")
	})
	t.Run("nil update", func(t *testing.T) {
		_, err := repo.UpdateSettings(ctx, userID, nil)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidInput)
	})
}

func TestListAllUsers(t *testing.T) {
	conn, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewUsersRepo(conn)
	query := regexp.QuoteMeta(`SELECT user_id, daily_water_target_ml, cup_size_ml, wake_time_minutes, sleep_time_minutes, tz FROM users ORDER BY user_id;`)
	ctx := context.Background()

	conn.ExpectQuery(query).WillReturnRows(pgxmock.NewRows(profileColumns).
		AddRow(int64(1), 4000, 250, intPtr(420), intPtr(1350), "UTC").
		AddRow(int64(2), 3000, 500, (*int)(nil), (*int)(nil), "Europe/Paris"))
	profiles, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	assert.Equal(t, int64(2), profiles[1].UserID)
	assert.Equal(t, 500, profiles[1].CupSizeMl)

	conn.ExpectQuery(query).WillReturnError(errors.New("db error"))
	_, err = repo.ListAll(ctx)
	assert.ErrorIs(t, err, errorvalues.ErrStorageUnavailable)
}
