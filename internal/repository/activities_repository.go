package repository

import (
	"context"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/limbo/lifetrack/pkg/entity"
)

type ActivitiesRepository struct {
	conn PgConnection
}

func NewActivitiesRepo(conn PgConnection) *ActivitiesRepository {
	mustPing(conn, "activitiesRepo")
	return &ActivitiesRepository{
		conn: conn,
	}
}

func (ar *ActivitiesRepository) Add(ctx context.Context, activity *entity.ActivityEvent) error {
	if activity == nil || strings.TrimSpace(activity.ActivityType) == "" {
		return invalidInput("activity type is required")
	}
	if activity.LocalDate.IsZero() || activity.InstantUTC.IsZero() {
		return invalidInput("activity date and timestamp are required")
	}
	_, err := ar.conn.Exec(
		ctx,
		`INSERT INTO activities (user_id, date, activity_type, details, ts_utc) VALUES ($1, $2, $3, $4, $5);`,
		activity.UserID,
		activity.LocalDate,
		activity.ActivityType,
		activity.Details,
		activity.InstantUTC.UTC(),
	)
	if err != nil {
		return storageErr("adding activity", err)
	}
	return nil
}

func (ar *ActivitiesRepository) GetByDate(ctx context.Context, userID int64, date time.Time) ([]entity.ActivityEvent, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT id, user_id, date, activity_type, details, ts_utc FROM activities WHERE user_id = $1 AND date = $2 ORDER BY id;`,
		userID,
		date,
	)
	if err != nil {
		return nil, storageErr("getting activities for date", err)
	}
	return collectActivities(rows)
}

func (ar *ActivitiesRepository) ListByUser(ctx context.Context, userID int64) ([]entity.ActivityEvent, error) {
	rows, err := ar.conn.Query(
		ctx,
		`SELECT id, user_id, date, activity_type, details, ts_utc FROM activities WHERE user_id = $1 ORDER BY id;`,
		userID,
	)
	if err != nil {
		return nil, storageErr("listing activities", err)
	}
	return collectActivities(rows)
}

func collectActivities(rows pgx.Rows) ([]entity.ActivityEvent, error) {
	defer rows.Close()
	result := make([]entity.ActivityEvent, 0, 4)
	for rows.Next() {
		ev := entity.ActivityEvent{}
		if err := rows.Scan(&ev.ID, &ev.UserID, &ev.LocalDate, &ev.ActivityType, &ev.Details, &ev.InstantUTC); err != nil {
			return nil, storageErr("activity row parsing", err)
		}
		ev.InstantUTC = ev.InstantUTC.UTC()
		result = append(result, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("unexpected activity rows", err)
	}
	return result, nil
}
