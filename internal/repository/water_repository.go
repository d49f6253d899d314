package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/limbo/lifetrack/pkg/entity"
)

type WaterRepository struct {
	conn PgConnection
}

func NewWaterRepo(conn PgConnection) *WaterRepository {
	mustPing(conn, "waterRepo")
	return &WaterRepository{
		conn: conn,
	}
}

func (wr *WaterRepository) Add(ctx context.Context, userID int64, amountMl int, instantUTC time.Time) error {
	if amountMl <= 0 {
		return invalidInput("water amount must be positive")
	}
	if instantUTC.IsZero() {
		return invalidInput("water timestamp is empty")
	}
	_, err := wr.conn.Exec(
		ctx,
		`INSERT INTO water_logs (user_id, amount_ml, ts_utc) VALUES ($1, $2, $3);`,
		userID,
		amountMl,
		instantUTC.UTC(),
	)
	if err != nil {
		return storageErr("adding water", err)
	}
	return nil
}

func (wr *WaterRepository) GetByRange(ctx context.Context, userID int64, from, to time.Time) ([]entity.WaterEvent, error) {
	rows, err := wr.conn.Query(
		ctx,
		`SELECT id, user_id, amount_ml, ts_utc FROM water_logs WHERE user_id = $1 AND ts_utc >= $2 AND ts_utc < $3 ORDER BY id;`,
		userID,
		from.UTC(),
		to.UTC(),
	)
	if err != nil {
		return nil, storageErr("getting water for period", err)
	}
	return collectWater(rows)
}

func (wr *WaterRepository) ListByUser(ctx context.Context, userID int64) ([]entity.WaterEvent, error) {
	rows, err := wr.conn.Query(
		ctx,
		`SELECT id, user_id, amount_ml, ts_utc FROM water_logs WHERE user_id = $1 ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, storageErr("listing water", err)
	}
	return collectWater(rows)
}

func collectWater(rows pgx.Rows) ([]entity.WaterEvent, error) {
	defer rows.Close()
	result := make([]entity.WaterEvent, 0, 8)
	for rows.Next() {
		ev := entity.WaterEvent{}
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.AmountMl, &ev.InstantUTC); err != nil {
			return nil, storageErr("water row parsing", err)
		}
		ev.InstantUTC = ev.InstantUTC.UTC()
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("unexpected water rows", err)
	}
	return result, nil
}
