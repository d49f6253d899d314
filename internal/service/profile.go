package service

import (
	"context"
	"log/slog"

	"github.com/limbo/lifetrack/internal/repository"
	"github.com/limbo/lifetrack/pkg/entity"
)

// loadProfile reads the profile, creating it on first interaction. A freshly
// created user gets reminders armed through activator when one is set.
// Activation problems are logged and never fail the caller.
func loadProfile(ctx context.Context, users repository.UsersRepositoryI, activator Activator, userID int64) (*entity.UserProfile, error) {
	var created bool
	p, err := retryOnce(ctx, func() (*entity.UserProfile, error) {
		p, c, err := users.GetOrCreate(ctx, userID)
		created = created || c
		return p, err
	})
	if err != nil {
		return nil, err
	}
	if created && activator != nil {
		if err = activator.Activate(ctx, userID); err != nil {
			slog.Warn("reminders not armed for new user", slog.Int64("uid", userID), slog.String("error", err.Error()))
		}
	}
	return p, nil
}
