package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	errorvalues "github.com/limbo/lifetrack/internal/error_values"
	"github.com/limbo/lifetrack/pkg/entity"
)

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(conn PgConnection) *UsersRepository {
	mustPing(conn, "usersRepo")
	return &UsersRepository{
		conn: conn,
	}
}

const selectProfile = `SELECT user_id, daily_water_target_ml, cup_size_ml, wake_time_minutes, sleep_time_minutes, tz FROM users`

func scanProfile(row pgx.Row) (*entity.UserProfile, error) {
	var p entity.UserProfile
	err := row.Scan(&p.UserID, &p.DailyWaterTargetMl, &p.CupSizeMl, &p.WakeMinutes, &p.SleepMinutes, &p.TimeZone)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetOrCreate reports created=true only when this call inserted the row.
func (ur *UsersRepository) GetOrCreate(ctx context.Context, userID int64) (*entity.UserProfile, bool, error) {
	if userID == 0 {
		return nil, false, invalidInput("empty user id")
	}
	row := ur.conn.QueryRow(
		ctx,
		`INSERT INTO users (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING
RETURNING user_id, daily_water_target_ml, cup_size_ml, wake_time_minutes, sleep_time_minutes, tz;`,
		userID,
	)
	p, err := scanProfile(row)
	if err == nil {
		return p, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, storageErr("creating user", err)
	}
	p, err = ur.FindByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	return p, false, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, userID int64) (*entity.UserProfile, error) {
	p, err := scanProfile(ur.conn.QueryRow(ctx, selectProfile+` WHERE user_id = $1;`, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, storageErr("searching user by id", err)
	}
	return p, nil
}

func (ur *UsersRepository) UpdateSettings(ctx context.Context, userID int64, upd *entity.SettingsUpdate) (*entity.UserProfile, error) {
	if upd == nil {
		return nil, invalidInput("settings update is nil")
	}
	row := ur.conn.QueryRow(
		ctx,
		`UPDATE users SET
	daily_water_target_ml = COALESCE($1, daily_water_target_ml),
	cup_size_ml = COALESCE($2, cup_size_ml),
	wake_time_minutes = COALESCE($3, wake_time_minutes),
	sleep_time_minutes = COALESCE($4, sleep_time_minutes),
	tz = COALESCE($5, tz)
WHERE user_id = $6
RETURNING user_id, daily_water_target_ml, cup_size_ml, wake_time_minutes, sleep_time_minutes, tz;`,
		upd.DailyWaterTargetMl,
		upd.CupSizeMl,
		upd.WakeMinutes,
		upd.SleepMinutes,
		upd.TimeZone,
		userID,
	)
	p, err := scanProfile(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, storageErr("updating user settings", err)
	}
	return p, nil
}

func (ur *UsersRepository) ListAll(ctx context.Context) ([]*entity.UserProfile, error) {
	rows, err := ur.conn.Query(ctx, selectProfile+` ORDER BY user_id;`)
	if err != nil {
		return nil, storageErr("listing users", err)
	}
	defer rows.Close()
	result := make([]*entity.UserProfile, 0, 1)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, storageErr("user row parsing", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("unexpected user rows", err)
	}
	return result, nil
}
