package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/limbo/lifetrack/pkg/entity"
)

type SleepRepository struct {
	conn PgConnection
}

func NewSleepRepo(conn PgConnection) *SleepRepository {
	mustPing(conn, "sleepRepo")
	return &SleepRepository{
		conn: conn,
	}
}

func (sr *SleepRepository) Start(ctx context.Context, userID int64, startUTC time.Time) error {
	if startUTC.IsZero() {
		return invalidInput("sleep start is empty")
	}
	_, err := sr.conn.Exec(
		ctx,
		`INSERT INTO sleep_logs (user_id, sleep_start_utc) VALUES ($1, $2);`,
		userID,
		startUTC.UTC(),
	)
	if err != nil {
		return storageErr("starting sleep", err)
	}
	return nil
}

const latestOpenQuery = `SELECT id, sleep_start_utc FROM sleep_logs WHERE user_id = $1 AND wake_utc IS NULL ORDER BY id DESC LIMIT 1`

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// latestOpen returns nil without error when the user has no open interval.
// lock is appended to the query, e.g. " FOR UPDATE" inside a transaction.
func latestOpen(ctx context.Context, q rowQuerier, userID int64, lock string) (*entity.SleepInterval, error) {
	interval := entity.SleepInterval{UserID: userID}
	row := q.QueryRow(ctx, latestOpenQuery+lock+";", userID)
	if err := row.Scan(&interval.ID, &interval.StartUTC); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("getting open sleep", err)
	}
	if interval.StartUTC != nil {
		start := interval.StartUTC.UTC()
		interval.StartUTC = &start
	}
	return &interval, nil
}

func (sr *SleepRepository) LatestOpen(ctx context.Context, userID int64) (*entity.SleepInterval, error) {
	return latestOpen(ctx, sr.conn, userID, "")
}

// LogWake pairs the wake with the latest open interval inside one transaction,
// so two wakes cannot complete the same interval.
func (sr *SleepRepository) LogWake(ctx context.Context, userID int64, date time.Time, wakeUTC time.Time) (*entity.SleepInterval, error) {
	if date.IsZero() || wakeUTC.IsZero() {
		return nil, invalidInput("wake date and timestamp are required")
	}
	wakeUTC = wakeUTC.UTC()
	tx, err := sr.conn.Begin(ctx)
	if err != nil {
		return nil, storageErr("beginning wake transaction", err)
	}
	open, err := latestOpen(ctx, tx, userID, " FOR UPDATE")
	if err != nil {
		rollback(ctx, tx)
		return nil, err
	}
	interval := entity.SleepInterval{
		UserID:    userID,
		LocalDate: &date,
		WakeUTC:   &wakeUTC,
	}
	if open == nil {
		err = tx.QueryRow(
			ctx,
			`INSERT INTO sleep_logs (user_id, date, wake_utc) VALUES ($1, $2, $3) RETURNING id;`,
			userID,
			date,
			wakeUTC,
		).Scan(&interval.ID)
		if err != nil {
			rollback(ctx, tx)
			return nil, storageErr("creating wake record", err)
		}
	} else {
		interval.ID = open.ID
		interval.StartUTC = open.StartUTC
		if open.StartUTC != nil {
			duration := entity.SleepDuration(*open.StartUTC, wakeUTC)
			interval.DurationMinutes = &duration
		}
		_, err = tx.Exec(
			ctx,
			`UPDATE sleep_logs SET wake_utc = $1, duration_minutes = $2, date = $3 WHERE id = $4;`,
			wakeUTC,
			interval.DurationMinutes,
			date,
			interval.ID,
		)
		if err != nil {
			rollback(ctx, tx)
			return nil, storageErr("completing sleep", err)
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, storageErr("committing wake", err)
	}
	return &interval, nil
}

func (sr *SleepRepository) LatestDurationForDate(ctx context.Context, userID int64, date time.Time) (*int, error) {
	var minutes int
	row := sr.conn.QueryRow(
		ctx,
		`SELECT duration_minutes FROM sleep_logs WHERE user_id = $1 AND date = $2 AND duration_minutes IS NOT NULL ORDER BY id DESC LIMIT 1;`,
		userID,
		date,
	)
	if err := row.Scan(&minutes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("getting sleep duration", err)
	}
	return &minutes, nil
}

func (sr *SleepRepository) ListByUser(ctx context.Context, userID int64) ([]entity.SleepInterval, error) {
	rows, err := sr.conn.Query(
		ctx,
		`SELECT id, user_id, date, sleep_start_utc, wake_utc, duration_minutes FROM sleep_logs WHERE user_id = $1 ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, storageErr("listing sleep", err)
	}
	defer rows.Close()
	result := make([]entity.SleepInterval, 0, 4)
	for rows.Next() {
		s := entity.SleepInterval{}
		if err := rows.Scan(&s.ID, &s.UserID, &s.LocalDate, &s.StartUTC, &s.WakeUTC, &s.DurationMinutes); err != nil {
			return nil, storageErr("sleep row parsing", err)
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("unexpected sleep rows", err)
	}
	return result, nil
}
