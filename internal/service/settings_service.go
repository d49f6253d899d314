package service

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"sync"

	errorvalues "github.com/limbo/lifetrack/internal/error_values"
	"github.com/limbo/lifetrack/internal/repository"
	"github.com/limbo/lifetrack/pkg/entity"
)

// SettingsService owns profile writes. Storing settings and reconciling
// reminders happen under one per-user lock, so the armed triggers always
// follow the latest stored profile.
type SettingsService struct {
	repo       repository.UsersRepositoryI
	reconciler Reconciler
	log        *slog.Logger

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewSettingsService(usersRepo repository.UsersRepositoryI, reconciler Reconciler, logger *slog.Logger) *SettingsService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	if reconciler == nil {
		log.Fatal("provided nil reconciler")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsService{
		repo:       usersRepo,
		reconciler: reconciler,
		log:        logger.With(slog.String("component", "settings")),
		locks:      make(map[int64]*sync.Mutex),
	}
}

func (ss *SettingsService) userLock(userID int64) *sync.Mutex {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	l, ok := ss.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		ss.locks[userID] = l
	}
	return l
}

func (ss *SettingsService) GetProfile(ctx context.Context, userID int64) (*entity.UserProfile, error) {
	return loadProfile(ctx, ss.repo, ss, userID)
}

// Activate re-reads the stored profile and reconciles reminders with it.
func (ss *SettingsService) Activate(ctx context.Context, userID int64) error {
	l := ss.userLock(userID)
	l.Lock()
	defer l.Unlock()
	profile, err := retryOnce(ctx, func() (*entity.UserProfile, error) {
		return ss.repo.FindByID(ctx, userID)
	})
	if err != nil {
		return err
	}
	report := ss.reconciler.Reconcile(ctx, *profile)
	if report != nil {
		ss.log.Info("reminders activated", slog.Int64("uid", userID), slog.Int("water", len(report.ArmedWater)),
			slog.Bool("summary", report.SummaryArmed))
	}
	return nil
}

// UpdateSettings stores the change and reconciles reminders with the stored
// result. An unknown zone name is kept as given and read as UTC.
func (ss *SettingsService) UpdateSettings(ctx context.Context, userID int64, upd *entity.SettingsUpdate) (*entity.UserProfile, error) {
	if upd == nil || upd.Empty() {
		return nil, fmt.Errorf("%w: no settings to update", errorvalues.ErrInvalidInput)
	}
	if err := validateStruct(upd); err != nil {
		return nil, err
	}
	l := ss.userLock(userID)
	l.Lock()
	defer l.Unlock()
	// the update below is reconciled anyway, no separate activation
	if _, err := loadProfile(ctx, ss.repo, nil, userID); err != nil {
		return nil, err
	}
	profile, err := retryOnce(ctx, func() (*entity.UserProfile, error) {
		return ss.repo.UpdateSettings(ctx, userID, upd)
	})
	if err != nil {
		return nil, err
	}
	ss.reconciler.Reconcile(ctx, *profile)
	return profile, nil
}

// ActivateAll arms reminders for every stored profile.
func (ss *SettingsService) ActivateAll(ctx context.Context) error {
	profiles, err := retryOnce(ctx, func() ([]*entity.UserProfile, error) {
		return ss.repo.ListAll(ctx)
	})
	if err != nil {
		return err
	}
	armed := 0
	for _, p := range profiles {
		l := ss.userLock(p.UserID)
		l.Lock()
		report := ss.reconciler.Reconcile(ctx, *p)
		l.Unlock()
		if report != nil && report.SummaryArmed {
			armed++
		}
	}
	ss.log.Info("reminders activated", slog.Int("profiles", len(profiles)), slog.Int("summary_armed", armed))
	return nil
}
