package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/limbo/lifetrack/internal/api"
	"github.com/limbo/lifetrack/internal/dispatcher"
	"github.com/limbo/lifetrack/internal/notify"
	"github.com/limbo/lifetrack/internal/repository"
	"github.com/limbo/lifetrack/internal/scheduler"
	"github.com/limbo/lifetrack/internal/service"
	"github.com/limbo/lifetrack/pkg/cleanup"
	"github.com/limbo/lifetrack/pkg/config"
	jwtservice "github.com/limbo/lifetrack/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	mintToken := flag.String("mint-token", "", "print a bearer token for the given user id and exit")
	flag.Parse()

	cfg := config.New()
	jwtSvc := jwtservice.New(cfg.GetString("JWT_SECRET"))
	if *mintToken != "" {
		uid, err := strconv.ParseInt(*mintToken, 10, 64)
		if err != nil {
			log.Fatal("invalid user id: " + err.Error())
		}
		token, err := jwtSvc.GenerateToken(uid)
		if err != nil {
			log.Fatal("minting token error: " + err.Error())
		}
		fmt.Println(token)
		return
	}

	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	if err := repository.Migrate(&dbCfg, cfg.GetStringOr("MIGRATIONS_DIR", "./migrations")); err != nil {
		log.Fatal(err)
	}
	pool := repository.NewPool(&dbCfg)
	repos := service.Repositories{
		Users:      repository.NewUsersRepo(pool),
		Water:      repository.NewWaterRepo(pool),
		BooleanDay: repository.NewBooleanDayRepo(pool),
		Activities: repository.NewActivitiesRepo(pool),
		Sleep:      repository.NewSleepRepo(pool),
		ScreenTime: repository.NewScreenTimeRepo(pool),
		Events:     repository.NewEventsRepo(pool),
	}
	aggregationService := service.NewAggregationService(repos, cfg.GetIntOr("STREAK_MAX_LOOKBACK_DAYS", 0))

	var sender notify.Sender = notify.NewLogSender(slog.Default())
	if url := cfg.GetStringOr("NOTIFY_WEBHOOK_URL", ""); url != "" {
		sender = notify.NewWebhookSender(url, &http.Client{Timeout: 10 * time.Second})
	}
	notifier := notify.NewNotifier(aggregationService, sender, slog.Default())
	cronDispatcher := dispatcher.New(notifier.Fire, 0, slog.Default())
	sched := scheduler.New(cronDispatcher, slog.Default())

	settingsService := service.NewSettingsService(repos.Users, sched, slog.Default())
	aggregationService.WithActivation(settingsService)
	startCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	if err := settingsService.ActivateAll(startCtx); err != nil {
		slog.Error("reminders not restored on startup", slog.String("error", err.Error()))
	}
	cancel()
	cronDispatcher.Start()
	cleanup.Register(&cleanup.Job{
		Name: "stopping reminder dispatcher",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			return cronDispatcher.Stop(ctx)
		},
	})

	allowed, _ := cfg.GetInt64("ALLOWED_USER_ID")
	serv := api.New(&api.ServicesList{
		TrackingService:    service.NewTrackingService(repos, aggregationService).WithActivation(settingsService),
		AggregationService: aggregationService,
		SettingsService:    settingsService,
		Reminders:          sched,
		JwtService:         jwtSvc,
		AllowedUserID:      allowed,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		if err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
			slog.Error("server error", slog.String("error", err.Error()))
			stop()
		}
	}()
	<-ctx.Done()
	slog.Info("shutting down")
	cleanup.CleanUp()
}
