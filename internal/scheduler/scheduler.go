package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	errorvalues "github.com/limbo/lifetrack/internal/error_values"
	"github.com/limbo/lifetrack/pkg/entity"
	"github.com/limbo/lifetrack/pkg/tzclock"
)

type TriggerKind string

const (
	WaterReminder TriggerKind = "water_reminder"
	DailySummary  TriggerKind = "daily_summary"
)

// Payload travels with an armed trigger and comes back on every fire.
// CupSizeMl is captured at arming time.
type Payload struct {
	Kind      TriggerKind
	UserID    int64
	CupSizeMl int
}

// Trigger is a daily recurrence at a local clock time.
type Trigger struct {
	At       tzclock.ClockTime
	TimeZone string
	Payload  Payload
}

// Handle identifies an armed trigger inside a Dispatcher.
type Handle string

// ErrTriggerGone is returned by Dispatcher.Cancel for unknown or removed handles.
var ErrTriggerGone = errors.New("trigger already gone")

type Dispatcher interface {
	Arm(ctx context.Context, t Trigger) (Handle, error)
	// Must be idempotent: cancelling twice returns ErrTriggerGone, not a failure
	Cancel(ctx context.Context, h Handle) error
}

type CancelOutcome int

const (
	Cancelled CancelOutcome = iota
	AlreadyGone
	CancelFailed
)

func (o CancelOutcome) String() string {
	switch o {
	case Cancelled:
		return "cancelled"
	case AlreadyGone:
		return "already gone"
	case CancelFailed:
		return "cancel failed, proceeding"
	}
	return "unknown"
}

// Report describes what one reconciliation did.
type Report struct {
	UserID        int64
	Plan          Plan
	Cancellations []CancelOutcome
	ArmedWater    []tzclock.ClockTime
	SummaryArmed  bool
	ArmFailures   int
	// ErrNotConfigured when water reminders could not be derived
	Reason        error
}

func (r *Report) Count(o CancelOutcome) int {
	n := 0
	for _, c := range r.Cancellations {
		if c == o {
			n++
		}
	}
	return n
}

type armedTrigger struct {
	at     tzclock.ClockTime
	handle Handle
}

type armedSet struct {
	plan    Plan
	water   []armedTrigger
	summary *armedTrigger
}

// Snapshot is the currently armed state of one user.
type Snapshot struct {
	Plan    Plan                `json:"plan"`
	Water   []tzclock.ClockTime `json:"water"`
	Summary *tzclock.ClockTime  `json:"summary,omitempty"`
}

// Scheduler owns the per-user registry of armed triggers. Reconciliations
// for one user are serialized; different users proceed independently.
type Scheduler struct {
	dispatcher Dispatcher
	log        *slog.Logger

	mu       sync.Mutex
	locks    map[int64]*sync.Mutex
	registry map[int64]*armedSet
}

func New(dispatcher Dispatcher, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		dispatcher: dispatcher,
		log:        logger.With(slog.String("component", "scheduler")),
		locks:      make(map[int64]*sync.Mutex),
		registry:   make(map[int64]*armedSet),
	}
}

func (s *Scheduler) userLock(userID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// Reconcile cancels every trigger armed for the user and arms the set derived
// from profile. It never fails: cancel errors are recorded and skipped, arm
// errors are retried once and then left out of the registry.
func (s *Scheduler) Reconcile(ctx context.Context, profile entity.UserProfile) *Report {
	l := s.userLock(profile.UserID)
	l.Lock()
	defer l.Unlock()

	logger := s.log.With(slog.Int64("uid", profile.UserID))
	report := &Report{UserID: profile.UserID}

	s.mu.Lock()
	prev := s.registry[profile.UserID]
	s.mu.Unlock()
	if prev != nil {
		for _, w := range prev.water {
			report.Cancellations = append(report.Cancellations, s.cancel(ctx, logger, w.handle))
		}
		if prev.summary != nil {
			report.Cancellations = append(report.Cancellations, s.cancel(ctx, logger, prev.summary.handle))
		}
	}

	plan := BuildPlan(profile)
	report.Plan = plan
	next := &armedSet{plan: plan}
	if !plan.Configured {
		report.Reason = errorvalues.ErrNotConfigured
		logger.Info("water reminders not armed: wake or sleep time unset")
	}
	for _, at := range plan.Water {
		h, ok := s.arm(ctx, logger, Trigger{
			At:       at,
			TimeZone: plan.TimeZone,
			Payload:  Payload{Kind: WaterReminder, UserID: profile.UserID, CupSizeMl: plan.CupSizeMl},
		})
		if !ok {
			report.ArmFailures++
			continue
		}
		next.water = append(next.water, armedTrigger{at: at, handle: h})
		report.ArmedWater = append(report.ArmedWater, at)
	}
	h, ok := s.arm(ctx, logger, Trigger{
		At:       plan.Summary,
		TimeZone: plan.TimeZone,
		Payload:  Payload{Kind: DailySummary, UserID: profile.UserID},
	})
	if ok {
		next.summary = &armedTrigger{at: plan.Summary, handle: h}
		report.SummaryArmed = true
	} else {
		report.ArmFailures++
	}

	s.mu.Lock()
	s.registry[profile.UserID] = next
	s.mu.Unlock()

	logger.Info("reminders reconciled",
		slog.Int("armed_water", len(report.ArmedWater)),
		slog.Bool("summary_armed", report.SummaryArmed),
		slog.Int("cancelled", report.Count(Cancelled)),
		slog.Int("already_gone", report.Count(AlreadyGone)),
		slog.Int("cancel_failed", report.Count(CancelFailed)),
		slog.Int("arm_failures", report.ArmFailures),
	)
	return report
}

func (s *Scheduler) cancel(ctx context.Context, logger *slog.Logger, h Handle) CancelOutcome {
	err := s.dispatcher.Cancel(ctx, h)
	switch {
	case err == nil:
		return Cancelled
	case errors.Is(err, ErrTriggerGone):
		return AlreadyGone
	default:
		logger.Warn("cancelling trigger failed", slog.String("handle", string(h)), slog.String("error", err.Error()))
		return CancelFailed
	}
}

func (s *Scheduler) arm(ctx context.Context, logger *slog.Logger, t Trigger) (Handle, bool) {
	h, err := s.dispatcher.Arm(ctx, t)
	if err == nil {
		return h, true
	}
	logger.Warn("arming trigger failed, retrying", slog.String("at", t.At.String()), slog.String("error", err.Error()))
	h, err = s.dispatcher.Arm(ctx, t)
	if err != nil {
		logger.Error("arming trigger failed", slog.String("at", t.At.String()), slog.String("kind", string(t.Payload.Kind)), slog.String("error", err.Error()))
		return "", false
	}
	return h, true
}

// Snapshot returns the armed state of a user, false if never reconciled.
func (s *Scheduler) Snapshot(userID int64) (Snapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.registry[userID]
	if !ok {
		return Snapshot{}, false
	}
	snap := Snapshot{Plan: set.plan, Water: make([]tzclock.ClockTime, 0, len(set.water))}
	for _, w := range set.water {
		snap.Water = append(snap.Water, w.at)
	}
	if set.summary != nil {
		at := set.summary.at
		snap.Summary = &at
	}
	return snap, true
}
