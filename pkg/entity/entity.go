package entity

import (
	"time"
)

const (
	DefaultWaterTargetMl = 4000
	DefaultCupSizeMl     = 250
	DefaultTimeZone      = "UTC"
)

// UserProfile is the only mutable record of a user. It survives a data reset.
type UserProfile struct {
	UserID             int64  `json:"user_id"`
	DailyWaterTargetMl int    `json:"daily_water_target_ml"`
	CupSizeMl          int    `json:"cup_size_ml"`
	WakeMinutes        *int   `json:"wake_minutes,omitempty"`
	SleepMinutes       *int   `json:"sleep_minutes,omitempty"`
	TimeZone           string `json:"tz"`
}

func NewUserProfile(userID int64) *UserProfile {
	return &UserProfile{
		UserID:             userID,
		DailyWaterTargetMl: DefaultWaterTargetMl,
		CupSizeMl:          DefaultCupSizeMl,
		TimeZone:           DefaultTimeZone,
	}
}

// SettingsUpdate holds a partial change of profile settings. Nil fields are left as is.
type SettingsUpdate struct {
	DailyWaterTargetMl *int    `json:"daily_water_target_ml,omitempty" validate:"omitempty,gt=0,max=20000"`
	CupSizeMl          *int    `json:"cup_size_ml,omitempty" validate:"omitempty,gt=0,max=5000"`
	WakeMinutes        *int    `json:"wake_minutes,omitempty" validate:"omitempty,min=0,max=1439"`
	SleepMinutes       *int    `json:"sleep_minutes,omitempty" validate:"omitempty,min=0,max=1439"`
	TimeZone           *string `json:"tz,omitempty" validate:"omitempty,min=1,max=64"`
}

func (u *SettingsUpdate) Empty() bool {
	return u.DailyWaterTargetMl == nil && u.CupSizeMl == nil && u.WakeMinutes == nil &&
		u.SleepMinutes == nil && u.TimeZone == nil
}

// Apply copies every set field of the update onto the profile.
func (u *SettingsUpdate) Apply(p *UserProfile) {
	if u.DailyWaterTargetMl != nil {
		p.DailyWaterTargetMl = *u.DailyWaterTargetMl
	}
	if u.CupSizeMl != nil {
		p.CupSizeMl = *u.CupSizeMl
	}
	if u.WakeMinutes != nil {
		v := *u.WakeMinutes
		p.WakeMinutes = &v
	}
	if u.SleepMinutes != nil {
		v := *u.SleepMinutes
		p.SleepMinutes = &v
	}
	if u.TimeZone != nil {
		p.TimeZone = *u.TimeZone
	}
}

type WaterEvent struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	AmountMl   int       `json:"amount_ml"`
	InstantUTC time.Time `json:"ts_utc"`
}

// BooleanKind selects one of the at-most-one-per-day tables.
type BooleanKind string

const (
	Exercise  BooleanKind = "exercise"
	Retention BooleanKind = "retention"
)

func (k BooleanKind) Valid() bool {
	return k == Exercise || k == Retention
}

// BooleanDayEvent is upserted: a later write for the same date replaces the value.
type BooleanDayEvent struct {
	ID         int64       `json:"id"`
	UserID     int64       `json:"user_id"`
	Kind       BooleanKind `json:"kind"`
	LocalDate  time.Time   `json:"date"`
	Value      bool        `json:"value"`
	InstantUTC time.Time   `json:"ts_utc"`
}

type ActivityEvent struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	LocalDate    time.Time `json:"date"`
	ActivityType string    `json:"activity_type"`
	Details      string    `json:"details"`
	InstantUTC   time.Time `json:"ts_utc"`
}

// SleepInterval is opened with only StartUTC and completed by the next wake.
// LocalDate is assigned at wake time.
type SleepInterval struct {
	ID              int64      `json:"id"`
	UserID          int64      `json:"user_id"`
	LocalDate       *time.Time `json:"date,omitempty"`
	StartUTC        *time.Time `json:"sleep_start_utc,omitempty"`
	WakeUTC         *time.Time `json:"wake_utc,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
}

// SleepDuration returns whole minutes between start and wake, never negative.
func SleepDuration(start, wake time.Time) int {
	minutes := int(wake.Sub(start) / time.Minute)
	if minutes < 0 {
		return 0
	}
	return minutes
}

type ScreenTimeEvent struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	LocalDate  time.Time `json:"date"`
	Minutes    int       `json:"minutes"`
	InstantUTC time.Time `json:"ts_utc"`
}

type DaySummary struct {
	LocalDate         time.Time       `json:"date"`
	WaterTotalMl      int             `json:"water_total_ml"`
	WaterTargetMl     int             `json:"water_target_ml"`
	DidExercise       bool            `json:"did_exercise"`
	DidRetain         bool            `json:"did_retain"`
	Activities        []ActivityEvent `json:"activities"`
	SleepMinutes      *int            `json:"sleep_minutes,omitempty"`
	ScreenTimeMinutes int             `json:"screen_time_minutes"`
}

type Streaks struct {
	Water     int `json:"water"`
	Exercise  int `json:"exercise"`
	Retention int `json:"retention"`
}

// EventKind names an event table for raw dumps.
type EventKind string

const (
	WaterKind      EventKind = "water"
	ExerciseKind   EventKind = "exercise"
	RetentionKind  EventKind = "retention"
	ActivityKind   EventKind = "activities"
	SleepKind      EventKind = "sleep"
	ScreenTimeKind EventKind = "screen_time"
)

// EventDump is the ordered raw content of one event kind for a user.
type EventDump struct {
	Kind       EventKind         `json:"kind"`
	Water      []WaterEvent      `json:"water,omitempty"`
	BooleanDay []BooleanDayEvent `json:"boolean_day,omitempty"`
	Activities []ActivityEvent   `json:"activities,omitempty"`
	Sleep      []SleepInterval   `json:"sleep,omitempty"`
	ScreenTime []ScreenTimeEvent `json:"screen_time,omitempty"`
}
