package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	errorvalues "github.com/limbo/lifetrack/internal/error_values"
	"github.com/limbo/lifetrack/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks . UsersRepositoryI,WaterRepositoryI,BooleanDayRepositoryI,ActivitiesRepositoryI,SleepRepositoryI,ScreenTimeRepositoryI,EventsRepositoryI

type UsersRepositoryI interface {
	// Inserts profile with defaults if missing and returns the stored one
	GetOrCreate(ctx context.Context, userID int64) (*entity.UserProfile, bool, error)
	// Looks up profile by user id
	FindByID(ctx context.Context, userID int64) (*entity.UserProfile, error)
	// Applies set fields of upd atomically and returns the fresh profile
	UpdateSettings(ctx context.Context, userID int64, upd *entity.SettingsUpdate) (*entity.UserProfile, error)
	// Lists every stored profile. Used to re-arm reminders on startup
	ListAll(ctx context.Context) ([]*entity.UserProfile, error)
}

type WaterRepositoryI interface {
	Add(ctx context.Context, userID int64, amountMl int, instantUTC time.Time) error
	// Water events with from <= ts_utc < to, in insertion order
	GetByRange(ctx context.Context, userID int64, from, to time.Time) ([]entity.WaterEvent, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.WaterEvent, error)
}

type BooleanDayRepositoryI interface {
	// Replaces the record for (userID, date) if one exists
	Upsert(ctx context.Context, kind entity.BooleanKind, userID int64, date time.Time, value bool, instantUTC time.Time) error
	// Returns nil without error when there is no record for the date
	Get(ctx context.Context, kind entity.BooleanKind, userID int64, date time.Time) (*entity.BooleanDayEvent, error)
	ListByUser(ctx context.Context, kind entity.BooleanKind, userID int64) ([]entity.BooleanDayEvent, error)
}

type ActivitiesRepositoryI interface {
	Add(ctx context.Context, activity *entity.ActivityEvent) error
	GetByDate(ctx context.Context, userID int64, date time.Time) ([]entity.ActivityEvent, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.ActivityEvent, error)
}

type SleepRepositoryI interface {
	// Opens a new interval holding only the start instant
	Start(ctx context.Context, userID int64, startUTC time.Time) error
	// Most recently created interval without wake, nil if none
	LatestOpen(ctx context.Context, userID int64) (*entity.SleepInterval, error)
	// Completes the latest open interval, or records a wake-only interval
	LogWake(ctx context.Context, userID int64, date time.Time, wakeUTC time.Time) (*entity.SleepInterval, error)
	// Duration of the most recent completed interval for the date, nil if none
	LatestDurationForDate(ctx context.Context, userID int64, date time.Time) (*int, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.SleepInterval, error)
}

type ScreenTimeRepositoryI interface {
	Add(ctx context.Context, userID int64, date time.Time, minutes int, instantUTC time.Time) error
	SumByDate(ctx context.Context, userID int64, date time.Time) (int, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.ScreenTimeEvent, error)
}

type EventsRepositoryI interface {
	// Deletes all event rows of the user. The profile is kept
	PurgeAll(ctx context.Context, userID int64) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

// storageErr marks a driver failure as ErrStorageUnavailable and keeps the cause.
func storageErr(op string, err error) error {
	return fmt.Errorf("%s error: %w: %w", op, errorvalues.ErrStorageUnavailable, err)
}

func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", errorvalues.ErrInvalidInput, msg)
}
