// Package notify turns fired triggers into outgoing user messages.
package notify

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/limbo/lifetrack/internal/scheduler"
	"github.com/limbo/lifetrack/internal/service"
	"github.com/limbo/lifetrack/pkg/entity"
	"github.com/limbo/lifetrack/pkg/tzclock"
)

type Message struct {
	UserID int64     `json:"user_id"`
	Kind   string    `json:"kind"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// Sender delivers a message to the user's front-end.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Notifier struct {
	aggregator service.AggregationServiceI
	sender     Sender
	log        *slog.Logger
	now        func() time.Time
}

func NewNotifier(aggregator service.AggregationServiceI, sender Sender, logger *slog.Logger) *Notifier {
	if aggregator == nil || sender == nil {
		log.Fatal("provided nil aggregator or sender to notifier")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Notifier{
		aggregator: aggregator,
		sender:     sender,
		log:        logger.With(slog.String("component", "notifier")),
		now:        time.Now,
	}
}

func WaterReminderText(cupSizeMl int) string {
	return fmt.Sprintf("Hydration reminder 💧\nConsider drinking ~%d ml now.", cupSizeMl)
}

func SummaryText(s *entity.DaySummary) string {
	lines := []string{
		fmt.Sprintf("Daily Summary 📊 — %s", tzclock.FormatDate(s.LocalDate)),
		fmt.Sprintf("Water: %d / %d ml", s.WaterTotalMl, s.WaterTargetMl),
		fmt.Sprintf("Exercise: %s", mark(s.DidExercise)),
		fmt.Sprintf("Retention: %s", mark(s.DidRetain)),
	}
	if s.SleepMinutes != nil {
		lines = append(lines, fmt.Sprintf("Sleep: %d min", *s.SleepMinutes))
	}
	lines = append(lines, fmt.Sprintf("Screen Time: %d min", s.ScreenTimeMinutes))
	if len(s.Activities) > 0 {
		names := make([]string, 0, len(s.Activities))
		for _, a := range s.Activities {
			names = append(names, a.ActivityType)
		}
		lines = append(lines, "Activities: "+strings.Join(names, ", "))
	}
	return strings.Join(lines, "\n")
}

func mark(ok bool) string {
	if ok {
		return "✅"
	}
	return "❌"
}

// Fire builds the text for a fired trigger and sends it. Water reminders use
// the cup size captured when the trigger was armed.
func (n *Notifier) Fire(ctx context.Context, p scheduler.Payload) {
	logger := n.log.With(slog.Int64("uid", p.UserID), slog.String("kind", string(p.Kind)))
	var text string
	switch p.Kind {
	case scheduler.WaterReminder:
		text = WaterReminderText(p.CupSizeMl)
	case scheduler.DailySummary:
		text = n.summaryText(ctx, p.UserID)
	default:
		logger.Warn("unknown trigger kind")
		return
	}
	msg := Message{UserID: p.UserID, Kind: string(p.Kind), Text: text, SentAt: n.now().UTC()}
	if err := n.sender.Send(ctx, msg); err != nil {
		logger.Error("sending notification failed", slog.String("error", err.Error()))
		return
	}
	logger.Info("notification sent")
}

func (n *Notifier) summaryText(ctx context.Context, userID int64) string {
	today, err := n.aggregator.Today(ctx, userID)
	if err != nil {
		return fmt.Sprintf("Failed to build summary: %s", err.Error())
	}
	summary, err := n.aggregator.DaySummary(ctx, userID, today)
	if err != nil {
		return fmt.Sprintf("Failed to build summary: %s", err.Error())
	}
	return SummaryText(summary)
}
