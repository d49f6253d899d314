// Package dispatcher fires armed reminder triggers on a shared cron timer.
package dispatcher

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"github.com/limbo/lifetrack/internal/scheduler"
	"github.com/limbo/lifetrack/pkg/tzclock"
)

const DefaultFireTimeout = 30 * time.Second

// FireFunc handles one fired trigger. Each fire runs in its own goroutine.
type FireFunc func(ctx context.Context, p scheduler.Payload)

type CronDispatcher struct {
	cron    *cron.Cron
	fire    FireFunc
	timeout time.Duration
	log     *slog.Logger

	mu      sync.Mutex
	entries map[scheduler.Handle]cron.EntryID
}

func New(fire FireFunc, timeout time.Duration, logger *slog.Logger) *CronDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = DefaultFireTimeout
	}
	logger = logger.With(slog.String("component", "dispatcher"))
	cl := cronLogger{log: logger}
	return &CronDispatcher{
		cron:    cron.New(cron.WithLogger(cl), cron.WithChain(cron.Recover(cl))),
		fire:    fire,
		timeout: timeout,
		log:     logger,
		entries: make(map[scheduler.Handle]cron.EntryID),
	}
}

// Spec renders a daily trigger as a cron line bound to the trigger zone.
// Unknown zones resolve to UTC.
func Spec(t scheduler.Trigger) string {
	return fmt.Sprintf("CRON_TZ=%s %d %d * * *", tzclock.Location(t.TimeZone).String(), t.At.Minute, t.At.Hour)
}

func (d *CronDispatcher) Arm(_ context.Context, t scheduler.Trigger) (scheduler.Handle, error) {
	payload := t.Payload
	id, err := d.cron.AddFunc(Spec(t), func() {
		d.run(payload)
	})
	if err != nil {
		return "", fmt.Errorf("arming trigger error: %w", err)
	}
	h := scheduler.Handle(uuid.NewString())
	d.mu.Lock()
	d.entries[h] = id
	d.mu.Unlock()
	return h, nil
}

// Cancel removes the entry behind h. Unknown handles report ErrTriggerGone.
func (d *CronDispatcher) Cancel(_ context.Context, h scheduler.Handle) error {
	d.mu.Lock()
	id, ok := d.entries[h]
	delete(d.entries, h)
	d.mu.Unlock()
	if !ok || d.cron.Entry(id).ID == 0 {
		return scheduler.ErrTriggerGone
	}
	d.cron.Remove(id)
	return nil
}

// Next reports when h fires next after from.
func (d *CronDispatcher) Next(h scheduler.Handle, from time.Time) (time.Time, bool) {
	d.mu.Lock()
	id, ok := d.entries[h]
	d.mu.Unlock()
	if !ok {
		return time.Time{}, false
	}
	entry := d.cron.Entry(id)
	if entry.ID == 0 {
		return time.Time{}, false
	}
	return entry.Schedule.Next(from), true
}

func (d *CronDispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.entries)
}

func (d *CronDispatcher) Start() {
	d.cron.Start()
	d.log.Info("dispatcher started")
}

// Stop halts the timer and waits for running fires to finish or ctx to end.
func (d *CronDispatcher) Stop(ctx context.Context) error {
	done := d.cron.Stop()
	select {
	case <-done.Done():
		d.log.Info("dispatcher stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *CronDispatcher) run(p scheduler.Payload) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()
	d.log.Debug("trigger fired", slog.Int64("uid", p.UserID), slog.String("kind", string(p.Kind)))
	d.fire(ctx, p)
}

// cronLogger routes cron's own logging into slog.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
