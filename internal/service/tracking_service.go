package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	errorvalues "github.com/limbo/lifetrack/internal/error_values"
	"github.com/limbo/lifetrack/pkg/entity"
	"github.com/limbo/lifetrack/pkg/tzclock"
)

// TrackingService validates logging input and writes events stamped with the
// current instant and the local date of the user's zone at write time.
type TrackingService struct {
	repos      Repositories
	aggregator AggregationServiceI
	now        func() time.Time
	activator  Activator
}

func NewTrackingService(repos Repositories, aggregator AggregationServiceI) *TrackingService {
	if repos.Users == nil || repos.Water == nil || repos.BooleanDay == nil || repos.Activities == nil ||
		repos.Sleep == nil || repos.ScreenTime == nil || repos.Events == nil {
		log.Fatal("provided nil repository to tracking service")
	}
	if aggregator == nil {
		log.Fatal("provided nil aggregator")
	}
	return &TrackingService{
		repos:      repos,
		aggregator: aggregator,
		now:        time.Now,
	}
}

func (ts *TrackingService) WithClock(now func() time.Time) *TrackingService {
	ts.now = now
	return ts
}

// WithActivation arms reminders for users created by their first log.
func (ts *TrackingService) WithActivation(a Activator) *TrackingService {
	ts.activator = a
	return ts
}

func (ts *TrackingService) profile(ctx context.Context, userID int64) (*entity.UserProfile, error) {
	return loadProfile(ctx, ts.repos.Users, ts.activator, userID)
}

func (ts *TrackingService) LogWater(ctx context.Context, userID int64, amountMl int) (*WaterLogResult, error) {
	if err := validateStruct(LogWaterRequest{AmountMl: amountMl}); err != nil {
		return nil, err
	}
	p, err := ts.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := ts.now().UTC()
	if err = ts.repos.Water.Add(ctx, userID, amountMl, now); err != nil {
		return nil, err
	}
	date := tzclock.LocalDate(p.TimeZone, now)
	total, err := ts.aggregator.WaterTotalForLocalDate(ctx, userID, date, p.TimeZone)
	if err != nil {
		return nil, err
	}
	return &WaterLogResult{
		AmountMl:  amountMl,
		TotalMl:   total,
		TargetMl:  p.DailyWaterTargetMl,
		LocalDate: date,
	}, nil
}

func (ts *TrackingService) SetBooleanDay(ctx context.Context, kind entity.BooleanKind, userID int64, value bool, date *time.Time) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %w: %s", errorvalues.ErrInvalidInput, errorvalues.ErrUnknownEventKind, kind)
	}
	p, err := ts.profile(ctx, userID)
	if err != nil {
		return err
	}
	now := ts.now().UTC()
	day := tzclock.LocalDate(p.TimeZone, now)
	if date != nil {
		day = tzclock.Date(*date)
	}
	return retryOnceErr(ctx, func() error {
		return ts.repos.BooleanDay.Upsert(ctx, kind, userID, day, value, now)
	})
}

func (ts *TrackingService) LogActivity(ctx context.Context, userID int64, activityType, details string) error {
	req := LogActivityRequest{
		ActivityType: strings.TrimSpace(activityType),
		Details:      strings.TrimSpace(details),
	}
	if err := validateStruct(req); err != nil {
		return err
	}
	p, err := ts.profile(ctx, userID)
	if err != nil {
		return err
	}
	now := ts.now().UTC()
	return ts.repos.Activities.Add(ctx, &entity.ActivityEvent{
		UserID:       userID,
		LocalDate:    tzclock.LocalDate(p.TimeZone, now),
		ActivityType: req.ActivityType,
		Details:      req.Details,
		InstantUTC:   now,
	})
}

func (ts *TrackingService) StartSleep(ctx context.Context, userID int64) error {
	if _, err := ts.profile(ctx, userID); err != nil {
		return err
	}
	return ts.repos.Sleep.Start(ctx, userID, ts.now().UTC())
}

func (ts *TrackingService) OpenSleep(ctx context.Context, userID int64) (*entity.SleepInterval, error) {
	return retryOnce(ctx, func() (*entity.SleepInterval, error) {
		return ts.repos.Sleep.LatestOpen(ctx, userID)
	})
}

// Wake is not retried: a repeated attempt after a lost commit could record a
// second wake-only interval.
func (ts *TrackingService) Wake(ctx context.Context, userID int64) (*entity.SleepInterval, error) {
	p, err := ts.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := ts.now().UTC()
	return ts.repos.Sleep.LogWake(ctx, userID, tzclock.LocalDate(p.TimeZone, now), now)
}

func (ts *TrackingService) LogScreenTime(ctx context.Context, userID int64, minutes int) error {
	if err := validateStruct(LogScreenTimeRequest{Minutes: minutes}); err != nil {
		return err
	}
	p, err := ts.profile(ctx, userID)
	if err != nil {
		return err
	}
	now := ts.now().UTC()
	return ts.repos.ScreenTime.Add(ctx, userID, tzclock.LocalDate(p.TimeZone, now), minutes, now)
}

func (ts *TrackingService) Reset(ctx context.Context, userID int64) error {
	return retryOnceErr(ctx, func() error {
		return ts.repos.Events.PurgeAll(ctx, userID)
	})
}

func (ts *TrackingService) Export(ctx context.Context, userID int64, kind entity.EventKind) (*entity.EventDump, error) {
	dump := entity.EventDump{Kind: kind}
	var err error
	switch kind {
	case entity.WaterKind:
		dump.Water, err = retryOnce(ctx, func() ([]entity.WaterEvent, error) {
			return ts.repos.Water.ListByUser(ctx, userID)
		})
	case entity.ExerciseKind, entity.RetentionKind:
		dump.BooleanDay, err = retryOnce(ctx, func() ([]entity.BooleanDayEvent, error) {
			return ts.repos.BooleanDay.ListByUser(ctx, entity.BooleanKind(kind), userID)
		})
	case entity.ActivityKind:
		dump.Activities, err = retryOnce(ctx, func() ([]entity.ActivityEvent, error) {
			return ts.repos.Activities.ListByUser(ctx, userID)
		})
	case entity.SleepKind:
		dump.Sleep, err = retryOnce(ctx, func() ([]entity.SleepInterval, error) {
			return ts.repos.Sleep.ListByUser(ctx, userID)
		})
	case entity.ScreenTimeKind:
		dump.ScreenTime, err = retryOnce(ctx, func() ([]entity.ScreenTimeEvent, error) {
			return ts.repos.ScreenTime.ListByUser(ctx, userID)
		})
	default:
		return nil, fmt.Errorf("%w: %w: %s", errorvalues.ErrInvalidInput, errorvalues.ErrUnknownEventKind, kind)
	}
	if err != nil {
		return nil, err
	}
	return &dump, nil
}
