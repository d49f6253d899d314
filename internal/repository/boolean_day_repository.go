package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/lifetrack/internal/error_values"
	"github.com/limbo/lifetrack/pkg/entity"
)

// BooleanDayRepository serves both exercise_logs and retention_logs.
// Each table has UNIQUE(user_id, date), so an upsert is a single statement.
type BooleanDayRepository struct {
	conn PgConnection
}

func NewBooleanDayRepo(conn PgConnection) *BooleanDayRepository {
	mustPing(conn, "booleanDayRepo")
	return &BooleanDayRepository{
		conn: conn,
	}
}

func booleanTable(kind entity.BooleanKind) (table, column string, err error) {
	switch kind {
	case entity.Exercise:
		return "exercise_logs", "did_exercise", nil
	case entity.Retention:
		return "retention_logs", "did_retain", nil
	}
	return "", "", fmt.Errorf("%w: %q", errorvalues.ErrUnknownEventKind, kind)
}

func (br *BooleanDayRepository) Upsert(ctx context.Context, kind entity.BooleanKind, userID int64, date time.Time, value bool, instantUTC time.Time) error {
	table, column, err := booleanTable(kind)
	if err != nil {
		return err
	}
	if date.IsZero() || instantUTC.IsZero() {
		return invalidInput(string(kind) + " date and timestamp are required")
	}
	_, err = br.conn.Exec(
		ctx,
		fmt.Sprintf(`INSERT INTO %[1]s (user_id, date, %[2]s, ts_utc) VALUES ($1, $2, $3, $4) ON CONFLICT (user_id, date) DO UPDATE SET %[2]s = EXCLUDED.%[2]s, ts_utc = EXCLUDED.ts_utc;`, table, column),
		userID,
		date,
		value,
		instantUTC.UTC(),
	)
	if err != nil {
		return storageErr("upserting "+string(kind), err)
	}
	return nil
}

func (br *BooleanDayRepository) Get(ctx context.Context, kind entity.BooleanKind, userID int64, date time.Time) (*entity.BooleanDayEvent, error) {
	table, column, err := booleanTable(kind)
	if err != nil {
		return nil, err
	}
	ev := entity.BooleanDayEvent{Kind: kind}
	row := br.conn.QueryRow(
		ctx,
		fmt.Sprintf(`SELECT id, user_id, date, %s, ts_utc FROM %s WHERE user_id = $1 AND date = $2;`, column, table),
		userID,
		date,
	)
	if err := row.Scan(&ev.ID, &ev.UserID, &ev.LocalDate, &ev.Value, &ev.InstantUTC); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, storageErr("getting "+string(kind), err)
	}
	ev.InstantUTC = ev.InstantUTC.UTC()
	return &ev, nil
}

func (br *BooleanDayRepository) ListByUser(ctx context.Context, kind entity.BooleanKind, userID int64) ([]entity.BooleanDayEvent, error) {
	table, column, err := booleanTable(kind)
	if err != nil {
		return nil, err
	}
	rows, err := br.conn.Query(
		ctx,
		fmt.Sprintf(`SELECT id, user_id, date, %s, ts_utc FROM %s WHERE user_id = $1 ORDER BY id;`, column, table),
		userID,
	)
	if err != nil {
		return nil, storageErr("listing "+string(kind), err)
	}
	defer rows.Close()
	result := make([]entity.BooleanDayEvent, 0, 8)
	for rows.Next() {
		ev := entity.BooleanDayEvent{Kind: kind}
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.LocalDate, &ev.Value, &ev.InstantUTC); err != nil {
			return nil, storageErr(string(kind)+" row parsing", err)
		}
		ev.InstantUTC = ev.InstantUTC.UTC()
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("unexpected "+string(kind)+" rows", err)
	}
	return result, nil
}
