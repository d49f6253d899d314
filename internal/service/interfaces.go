package service

import (
	"context"
	"time"

	"github.com/limbo/lifetrack/internal/scheduler"
	"github.com/limbo/lifetrack/pkg/entity"
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks . TrackingServiceI,AggregationServiceI,SettingsServiceI,Reconciler,Activator

type LogWaterRequest struct {
	AmountMl int `validate:"gt=0,max=10000"`
}

type LogActivityRequest struct {
	ActivityType string `validate:"required,notblank,max=64"`
	Details      string `validate:"max=1000"`
}

type LogScreenTimeRequest struct {
	Minutes int `validate:"min=0,max=1440"`
}

// WaterLogResult is what the front-end shows after logging water.
type WaterLogResult struct {
	AmountMl  int       `json:"amount_ml"`
	TotalMl   int       `json:"total_ml"`
	TargetMl  int       `json:"target_ml"`
	LocalDate time.Time `json:"date"`
}

type TrackingServiceI interface {
	// Appends a water event now and returns the local-day total
	LogWater(ctx context.Context, userID int64, amountMl int) (*WaterLogResult, error)
	// Upserts exercise or retention. Nil date means today in the user's zone
	SetBooleanDay(ctx context.Context, kind entity.BooleanKind, userID int64, value bool, date *time.Time) error
	LogActivity(ctx context.Context, userID int64, activityType, details string) error
	StartSleep(ctx context.Context, userID int64) error
	// Latest interval without a wake, nil when none is open
	OpenSleep(ctx context.Context, userID int64) (*entity.SleepInterval, error)
	// Completes the open sleep interval or records a wake-only one
	Wake(ctx context.Context, userID int64) (*entity.SleepInterval, error)
	LogScreenTime(ctx context.Context, userID int64, minutes int) error
	// Deletes all logs, keeps settings
	Reset(ctx context.Context, userID int64) error
	// Raw events of one kind in insertion order
	Export(ctx context.Context, userID int64, kind entity.EventKind) (*entity.EventDump, error)
}

type AggregationServiceI interface {
	// Current local date of the user
	Today(ctx context.Context, userID int64) (time.Time, error)
	WaterTotalForLocalDate(ctx context.Context, userID int64, date time.Time, tzName string) (int, error)
	DaySummary(ctx context.Context, userID int64, date time.Time) (*entity.DaySummary, error)
	BooleanStreak(ctx context.Context, userID int64, kind entity.BooleanKind, expected bool, from time.Time) (int, error)
	WaterStreak(ctx context.Context, userID int64, tzName string, from time.Time) (int, error)
	// Water, exercise and retention streaks ending at date (today when nil)
	Streaks(ctx context.Context, userID int64, date *time.Time) (*entity.Streaks, error)
}

type SettingsServiceI interface {
	// Returns the profile, creating it with defaults on first interaction
	GetProfile(ctx context.Context, userID int64) (*entity.UserProfile, error)
	// Stores the change and re-arms reminders. Scheduling problems never fail the update
	UpdateSettings(ctx context.Context, userID int64, upd *entity.SettingsUpdate) (*entity.UserProfile, error)
	// Arms reminders from the stored profile, used on first interaction
	Activate(ctx context.Context, userID int64) error
	// Reconciles reminders of every stored profile, used on startup
	ActivateAll(ctx context.Context) error
}

// Activator arms reminders for a user whose profile was just created.
type Activator interface {
	Activate(ctx context.Context, userID int64) error
}

// Reconciler re-derives and re-arms a user's reminder triggers.
type Reconciler interface {
	Reconcile(ctx context.Context, profile entity.UserProfile) *scheduler.Report
}
