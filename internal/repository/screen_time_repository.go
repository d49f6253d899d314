package repository

import (
	"context"
	"time"

	"github.com/limbo/lifetrack/pkg/entity"
)

type ScreenTimeRepository struct {
	conn PgConnection
}

func NewScreenTimeRepo(conn PgConnection) *ScreenTimeRepository {
	mustPing(conn, "screenTimeRepo")
	return &ScreenTimeRepository{
		conn: conn,
	}
}

func (sr *ScreenTimeRepository) Add(ctx context.Context, userID int64, date time.Time, minutes int, instantUTC time.Time) error {
	if minutes < 0 {
		return invalidInput("screen time minutes must not be negative")
	}
	if date.IsZero() || instantUTC.IsZero() {
		return invalidInput("screen time date and timestamp are required")
	}
	_, err := sr.conn.Exec(
		ctx,
		`INSERT INTO screen_time_logs (user_id, date, minutes, ts_utc) VALUES ($1, $2, $3, $4);`,
		userID,
		date,
		minutes,
		instantUTC.UTC(),
	)
	if err != nil {
		return storageErr("adding screen time", err)
	}
	return nil
}

func (sr *ScreenTimeRepository) SumByDate(ctx context.Context, userID int64, date time.Time) (int, error) {
	var total int
	row := sr.conn.QueryRow(
		ctx,
		`SELECT COALESCE(SUM(minutes), 0) FROM screen_time_logs WHERE user_id = $1 AND date = $2;`,
		userID,
		date,
	)
	if err := row.Scan(&total); err != nil {
		return 0, storageErr("summing screen time", err)
	}
	return total, nil
}

func (sr *ScreenTimeRepository) ListByUser(ctx context.Context, userID int64) ([]entity.ScreenTimeEvent, error) {
	rows, err := sr.conn.Query(
		ctx,
		`SELECT id, user_id, date, minutes, ts_utc FROM screen_time_logs WHERE user_id = $1 ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, storageErr("listing screen time", err)
	}
	defer rows.Close()
	result := make([]entity.ScreenTimeEvent, 0, 4)
	for rows.Next() {
		ev := entity.ScreenTimeEvent{}
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.LocalDate, &ev.Minutes, &ev.InstantUTC); err != nil {
			return nil, storageErr("screen time row parsing", err)
		}
		ev.InstantUTC = ev.InstantUTC.UTC()
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("unexpected screen time rows", err)
	}
	return result, nil
}
