package api

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/limbo/lifetrack/internal/service"
	"github.com/limbo/lifetrack/pkg/cleanup"
)

type Server struct {
	mx                 *chi.Mux
	trackingService    service.TrackingServiceI
	aggregationService service.AggregationServiceI
	settingsService    service.SettingsServiceI
	reminders          ReminderViewerI
	jwtService         JWTServiceI
	// 0 allows every user id
	allowedUserID int64
}

type ServicesList struct {
	TrackingService    service.TrackingServiceI
	AggregationService service.AggregationServiceI
	SettingsService    service.SettingsServiceI
	Reminders          ReminderViewerI
	JwtService         JWTServiceI
	AllowedUserID      int64
}

func New(servicesOptions *ServicesList) *Server {
	if servicesOptions.TrackingService == nil || servicesOptions.AggregationService == nil ||
		servicesOptions.SettingsService == nil || servicesOptions.JwtService == nil {
		log.Fatal("provided nil service to api server")
	}
	s := &Server{
		mx:                 chi.NewMux(),
		trackingService:    servicesOptions.TrackingService,
		aggregationService: servicesOptions.AggregationService,
		settingsService:    servicesOptions.SettingsService,
		reminders:          servicesOptions.Reminders,
		jwtService:         servicesOptions.JwtService,
		allowedUserID:      servicesOptions.AllowedUserID,
	}
	s.mountRoutes()
	return s
}

func (s *Server) mountRoutes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

		r.Get("/profile", s.GetProfile)
		r.Patch("/profile", s.UpdateProfile)

		r.Post("/water", s.LogWater)
		r.Get("/water/total", s.GetWaterTotal)
		r.Put("/exercise", s.SetExercise)
		r.Put("/retention", s.SetRetention)
		r.Post("/activities", s.LogActivity)
		r.Post("/sleep/start", s.StartSleep)
		r.Get("/sleep/open", s.GetOpenSleep)
		r.Post("/sleep/wake", s.Wake)
		r.Post("/screen-time", s.LogScreenTime)

		r.Get("/summary", s.GetSummary)
		r.Get("/streaks", s.GetStreaks)
		r.Get("/export/{kind}", s.Export)
		r.Delete("/data", s.ResetData)
		r.Get("/reminders", s.GetReminders)
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves until the server is shut down by the cleanup jobs.
func (s *Server) Run(address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
	slog.Info("api server listening", slog.String("address", address))
	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
