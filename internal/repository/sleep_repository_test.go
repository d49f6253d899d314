package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/lifetrack/internal/error_values"
	"github.com/limbo/lifetrack/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	selectOpenForUpdate = regexp.QuoteMeta(`SELECT id, sleep_start_utc FROM sleep_logs WHERE user_id = $1 AND wake_utc IS NULL ORDER BY id DESC LIMIT 1 FOR UPDATE;`)
	insertWakeOnly      = regexp.QuoteMeta(`INSERT INTO sleep_logs (user_id, date, wake_utc) VALUES ($1, $2, $3) RETURNING id;`)
	completeSleep       = regexp.QuoteMeta(`UPDATE sleep_logs SET wake_utc = $1, duration_minutes = $2, date = $3 WHERE id = $4;`)
)

func TestStartSleep(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewSleepRepo(mock)
	query := regexp.QuoteMeta(`INSERT INTO sleep_logs (user_id, sleep_start_utc) VALUES ($1, $2);`)
	start := time.Date(2024, time.May, 1, 22, 0, 0, 0, time.UTC)
	ctx := context.Background()

	mock.ExpectExec(query).WithArgs(int64(1), start).WillReturnResult(pgxmock.NewResult("INSERT", 1))
	assert.NoError(t, repo.Start(ctx, 1, start))

	mock.ExpectExec(query).WithArgs(int64(1), start).WillReturnError(errors.New("db error"))
	assert.ErrorIs(t, repo.Start(ctx, 1, start), errorvalues.ErrStorageUnavailable)

	assert.ErrorIs(t, repo.Start(ctx, 1, time.Time{}), errorvalues.ErrInvalidInput)
}

func TestLatestOpenSleep(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewSleepRepo(mock)
	query := regexp.QuoteMeta(`SELECT id, sleep_start_utc FROM sleep_logs WHERE user_id = $1 AND wake_utc IS NULL ORDER BY id DESC LIMIT 1;`)
	start := time.Date(2024, time.May, 1, 22, 0, 0, 0, time.UTC)
	ctx := context.Background()

	mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(pgxmock.NewRows([]string{"id", "sleep_start_utc"}).AddRow(int64(9), &start))
	interval, err := repo.LatestOpen(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(9), interval.ID)
	require.NotNil(t, interval.StartUTC)
	assert.Equal(t, start, *interval.StartUTC)
	assert.Nil(t, interval.WakeUTC)

	mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnError(pgx.ErrNoRows)
	interval, err = repo.LatestOpen(ctx, 1)
	assert.NoError(t, err)
	assert.Nil(t, interval)

	mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnError(errors.New("db error"))
	_, err = repo.LatestOpen(ctx, 1)
	assert.EqualError(t, err, "getting open sleep error: storage unavailable: db error")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogWake(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewSleepRepo(mock)
	var userID int64 = 1
	start := time.Date(2024, time.May, 1, 22, 10, 0, 0, time.UTC)
	wake := time.Date(2024, time.May, 2, 6, 45, 30, 0, time.UTC)
	date := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("completes open interval", func(t *testing.T) {
		expected := 515
		mock.ExpectBegin()
		mock.ExpectQuery(selectOpenForUpdate).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "sleep_start_utc"}).AddRow(int64(4), &start))
		mock.ExpectExec(completeSleep).WithArgs(wake, &expected, date, int64(4)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		mock.ExpectCommit()
		interval, err := repo.LogWake(ctx, userID, date, wake)
		require.NoError(t, err)
		assert.Equal(t, int64(4), interval.ID)
		require.NotNil(t, interval.DurationMinutes)
		assert.Equal(t, 515, *interval.DurationMinutes)
		assert.Equal(t, date, *interval.LocalDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("wake without open interval", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(selectOpenForUpdate).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
		mock.ExpectQuery(insertWakeOnly).WithArgs(userID, date, wake).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(5)))
		mock.ExpectCommit()
		interval, err := repo.LogWake(ctx, userID, date, wake)
		require.NoError(t, err)
		assert.Equal(t, int64(5), interval.ID)
		assert.Nil(t, interval.StartUTC)
		assert.Nil(t, interval.DurationMinutes)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("update fails and rolls back", func(t *testing.T) {
		expected := 515
		mock.ExpectBegin()
		mock.ExpectQuery(selectOpenForUpdate).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "sleep_start_utc"}).AddRow(int64(4), &start))
		mock.ExpectExec(completeSleep).WithArgs(wake, &expected, date, int64(4)).
			WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.LogWake(ctx, userID, date, wake)
		assert.EqualError(t, err, "completing sleep error: storage unavailable: db error")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("open lookup fails and rolls back", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery(selectOpenForUpdate).WithArgs(userID).WillReturnError(errors.New("db error"))
		mock.ExpectRollback()
		_, err := repo.LogWake(ctx, userID, date, wake)
		assert.EqualError(t, err, "getting open sleep error: storage unavailable: db error")
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("begin fails", func(t *testing.T) {
		mock.ExpectBegin().WillReturnError(errors.New("db error"))
		_, err := repo.LogWake(ctx, userID, date, wake)
		assert.ErrorIs(t, err, errorvalues.ErrStorageUnavailable)
	})
}

func TestLatestDurationForDate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewSleepRepo(mock)
	query := regexp.QuoteMeta(`SELECT duration_minutes FROM sleep_logs WHERE user_id = $1 AND date = $2 AND duration_minutes IS NOT NULL ORDER BY id DESC LIMIT 1;`)
	date := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	mock.ExpectQuery(query).WithArgs(int64(1), date).WillReturnRows(pgxmock.NewRows([]string{"duration_minutes"}).AddRow(480))
	minutes, err := repo.LatestDurationForDate(ctx, 1, date)
	require.NoError(t, err)
	require.NotNil(t, minutes)
	assert.Equal(t, 480, *minutes)

	mock.ExpectQuery(query).WithArgs(int64(1), date).WillReturnError(pgx.ErrNoRows)
	minutes, err = repo.LatestDurationForDate(ctx, 1, date)
	assert.NoError(t, err)
	assert.Nil(t, minutes)
}
