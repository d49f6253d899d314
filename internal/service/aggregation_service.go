package service

import (
	"context"
	"fmt"
	"log"
	"time"

	errorvalues "github.com/limbo/lifetrack/internal/error_values"
	"github.com/limbo/lifetrack/internal/repository"
	"github.com/limbo/lifetrack/pkg/entity"
	"github.com/limbo/lifetrack/pkg/tzclock"
)

// Repositories bundles the event store tables used by the services.
type Repositories struct {
	Users      repository.UsersRepositoryI
	Water      repository.WaterRepositoryI
	BooleanDay repository.BooleanDayRepositoryI
	Activities repository.ActivitiesRepositoryI
	Sleep      repository.SleepRepositoryI
	ScreenTime repository.ScreenTimeRepositoryI
	Events     repository.EventsRepositoryI
}

type AggregationService struct {
	repos Repositories
	// 0 means the streak walk is unbounded
	maxLookbackDays int
	now             func() time.Time
	activator       Activator
}

func NewAggregationService(repos Repositories, maxLookbackDays int) *AggregationService {
	if repos.Users == nil || repos.Water == nil || repos.BooleanDay == nil ||
		repos.Activities == nil || repos.Sleep == nil || repos.ScreenTime == nil {
		log.Fatal("provided nil repository to aggregation service")
	}
	if maxLookbackDays < 0 {
		maxLookbackDays = 0
	}
	return &AggregationService{
		repos:           repos,
		maxLookbackDays: maxLookbackDays,
		now:             time.Now,
	}
}

// WithClock replaces the wall clock, used by tests.
func (as *AggregationService) WithClock(now func() time.Time) *AggregationService {
	as.now = now
	return as
}

// WithActivation arms reminders for users created by a read.
func (as *AggregationService) WithActivation(a Activator) *AggregationService {
	as.activator = a
	return as
}

func (as *AggregationService) profile(ctx context.Context, userID int64) (*entity.UserProfile, error) {
	return loadProfile(ctx, as.repos.Users, as.activator, userID)
}

func (as *AggregationService) Today(ctx context.Context, userID int64) (time.Time, error) {
	p, err := as.profile(ctx, userID)
	if err != nil {
		return time.Time{}, err
	}
	return tzclock.LocalDate(p.TimeZone, as.now()), nil
}

// WaterTotalForLocalDate sums water logged inside the UTC bounds of the local
// day. The offset is taken at read time, not from the stored events.
func (as *AggregationService) WaterTotalForLocalDate(ctx context.Context, userID int64, date time.Time, tzName string) (int, error) {
	from, to := tzclock.DayBounds(tzName, date)
	events, err := retryOnce(ctx, func() ([]entity.WaterEvent, error) {
		return as.repos.Water.GetByRange(ctx, userID, from, to)
	})
	if err != nil {
		return 0, err
	}
	total := 0
	for _, e := range events {
		total += e.AmountMl
	}
	return total, nil
}

func (as *AggregationService) DaySummary(ctx context.Context, userID int64, date time.Time) (*entity.DaySummary, error) {
	p, err := as.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	date = tzclock.Date(date)
	summary := entity.DaySummary{
		LocalDate:     date,
		WaterTargetMl: p.DailyWaterTargetMl,
	}
	if summary.WaterTotalMl, err = as.WaterTotalForLocalDate(ctx, userID, date, p.TimeZone); err != nil {
		return nil, err
	}
	if summary.DidExercise, err = as.booleanValue(ctx, entity.Exercise, userID, date); err != nil {
		return nil, err
	}
	if summary.DidRetain, err = as.booleanValue(ctx, entity.Retention, userID, date); err != nil {
		return nil, err
	}
	summary.Activities, err = retryOnce(ctx, func() ([]entity.ActivityEvent, error) {
		return as.repos.Activities.GetByDate(ctx, userID, date)
	})
	if err != nil {
		return nil, err
	}
	summary.SleepMinutes, err = retryOnce(ctx, func() (*int, error) {
		return as.repos.Sleep.LatestDurationForDate(ctx, userID, date)
	})
	if err != nil {
		return nil, err
	}
	summary.ScreenTimeMinutes, err = retryOnce(ctx, func() (int, error) {
		return as.repos.ScreenTime.SumByDate(ctx, userID, date)
	})
	if err != nil {
		return nil, err
	}
	if summary.Activities == nil {
		summary.Activities = []entity.ActivityEvent{}
	}
	return &summary, nil
}

// booleanValue is false when no record exists for the date.
func (as *AggregationService) booleanValue(ctx context.Context, kind entity.BooleanKind, userID int64, date time.Time) (bool, error) {
	ev, err := retryOnce(ctx, func() (*entity.BooleanDayEvent, error) {
		return as.repos.BooleanDay.Get(ctx, kind, userID, date)
	})
	if err != nil {
		return false, err
	}
	return ev != nil && ev.Value, nil
}

// BooleanStreak counts consecutive days ending at from whose record holds
// expected. A missing record or another value ends the streak.
func (as *AggregationService) BooleanStreak(ctx context.Context, userID int64, kind entity.BooleanKind, expected bool, from time.Time) (int, error) {
	if !kind.Valid() {
		return 0, fmt.Errorf("%w: %w: %s", errorvalues.ErrInvalidInput, errorvalues.ErrUnknownEventKind, kind)
	}
	streak := 0
	day := tzclock.Date(from)
	for as.withinLookback(streak) {
		ev, err := retryOnce(ctx, func() (*entity.BooleanDayEvent, error) {
			return as.repos.BooleanDay.Get(ctx, kind, userID, day)
		})
		if err != nil {
			return 0, err
		}
		if ev == nil || ev.Value != expected {
			break
		}
		streak++
		day = tzclock.AddDays(day, -1)
	}
	return streak, nil
}

// WaterStreak counts consecutive days ending at from whose total reached the
// current daily target. Past days are judged against today's target.
func (as *AggregationService) WaterStreak(ctx context.Context, userID int64, tzName string, from time.Time) (int, error) {
	p, err := as.profile(ctx, userID)
	if err != nil {
		return 0, err
	}
	return as.waterStreak(ctx, userID, tzName, p.DailyWaterTargetMl, from)
}

func (as *AggregationService) waterStreak(ctx context.Context, userID int64, tzName string, targetMl int, from time.Time) (int, error) {
	streak := 0
	day := tzclock.Date(from)
	for as.withinLookback(streak) {
		total, err := as.WaterTotalForLocalDate(ctx, userID, day, tzName)
		if err != nil {
			return 0, err
		}
		if total < targetMl {
			break
		}
		streak++
		day = tzclock.AddDays(day, -1)
	}
	return streak, nil
}

func (as *AggregationService) withinLookback(streak int) bool {
	return as.maxLookbackDays == 0 || streak < as.maxLookbackDays
}

func (as *AggregationService) Streaks(ctx context.Context, userID int64, date *time.Time) (*entity.Streaks, error) {
	p, err := as.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	from := tzclock.LocalDate(p.TimeZone, as.now())
	if date != nil {
		from = tzclock.Date(*date)
	}
	var streaks entity.Streaks
	if streaks.Water, err = as.waterStreak(ctx, userID, p.TimeZone, p.DailyWaterTargetMl, from); err != nil {
		return nil, err
	}
	if streaks.Exercise, err = as.BooleanStreak(ctx, userID, entity.Exercise, true, from); err != nil {
		return nil, err
	}
	if streaks.Retention, err = as.BooleanStreak(ctx, userID, entity.Retention, true, from); err != nil {
		return nil, err
	}
	return &streaks, nil
}
