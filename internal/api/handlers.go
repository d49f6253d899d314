package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"

	"github.com/limbo/lifetrack/internal/notify"
	"github.com/limbo/lifetrack/internal/scheduler"
	"github.com/limbo/lifetrack/pkg/entity"
	"github.com/limbo/lifetrack/pkg/httputil"
	"github.com/limbo/lifetrack/pkg/tzclock"
)

const requestTimeout = 10 * time.Second

// UpdateProfileRequest takes wake and sleep as HH:MM.
type UpdateProfileRequest struct {
	DailyWaterTargetMl *int    `json:"daily_water_target_ml"`
	CupSizeMl          *int    `json:"cup_size_ml"`
	WakeTime           *string `json:"wake_time"`
	SleepTime          *string `json:"sleep_time"`
	TimeZone           *string `json:"tz"`
}

type ProfileResponse struct {
	*entity.UserProfile
	WakeTime  string `json:"wake_time,omitempty"`
	SleepTime string `json:"sleep_time,omitempty"`
	// False when the stored zone is unknown and read as UTC
	TimeZoneKnown bool `json:"tz_known"`
}

type LogWaterRequest struct {
	AmountMl int `json:"amount_ml"`
}

type BooleanDayRequest struct {
	Value bool   `json:"value"`
	Date  string `json:"date"`
}

type LogActivityRequest struct {
	ActivityType string `json:"activity_type"`
	Details      string `json:"details"`
}

// LogScreenTimeRequest takes either whole minutes or a duration such as
// "1h 30m", "45m" or "2:00".
type LogScreenTimeRequest struct {
	Minutes  int    `json:"minutes"`
	Duration string `json:"duration,omitempty"`
}

type WaterTotalResponse struct {
	Date     string `json:"date"`
	TotalMl  int    `json:"total_ml"`
	TargetMl int    `json:"target_ml"`
}

type SummaryResponse struct {
	*entity.DaySummary
	Text string `json:"text"`
}

type RemindersResponse struct {
	Armed   bool     `json:"armed"`
	Water   []string `json:"water"`
	Summary string   `json:"summary,omitempty"`
	// Set when wake or sleep time is missing
	Configured bool `json:"configured"`
}

func toProfileResponse(p *entity.UserProfile) ProfileResponse {
	resp := ProfileResponse{UserProfile: p, TimeZoneKnown: tzclock.Known(p.TimeZone)}
	if p.WakeMinutes != nil {
		resp.WakeTime = tzclock.FormatMinutes(*p.WakeMinutes)
	}
	if p.SleepMinutes != nil {
		resp.SleepTime = tzclock.FormatMinutes(*p.SleepMinutes)
	}
	return resp
}

// dateParam reads an optional YYYY-MM-DD query value.
func dateParam(r *http.Request) (*time.Time, error) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		return nil, nil
	}
	d, err := tzclock.ParseDate(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// authorized extracts the user id or writes 401.
func authorized(w http.ResponseWriter, r *http.Request, op string) (int64, *slog.Logger, bool) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return 0, logger, false
	}
	return uid, logger, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, dst any) bool {
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Error(op + " error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

func serviceError(w http.ResponseWriter, logger *slog.Logger, op string, err error, msg string) {
	code := httputil.WriteServiceError(w, err, msg)
	if code >= http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		return
	}
	logger.Warn(op+" error: rejected", slog.String("error", err.Error()))
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := authorized(w, r, "get profile")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	profile, err := s.settingsService.GetProfile(ctx, uid)
	if err != nil {
		serviceError(w, logger, "get profile", err, "error while getting profile")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, toProfileResponse(profile))
	logger.Info("profile provided")
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := authorized(w, r, "update profile")
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if !decodeBody(w, r, logger, "update profile", &req) {
		return
	}
	upd := entity.SettingsUpdate{
		DailyWaterTargetMl: req.DailyWaterTargetMl,
		CupSizeMl:          req.CupSizeMl,
		TimeZone:           req.TimeZone,
	}
	for _, clock := range []struct {
		raw *string
		dst **int
	}{{req.WakeTime, &upd.WakeMinutes}, {req.SleepTime, &upd.SleepMinutes}} {
		if clock.raw == nil {
			continue
		}
		minutes, err := tzclock.ParseClock(*clock.raw)
		if err != nil {
			logger.Error("update profile error: invalid clock time")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid time, use HH:MM", err)
			return
		}
		*clock.dst = &minutes
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	profile, err := s.settingsService.UpdateSettings(ctx, uid, &upd)
	if err != nil {
		serviceError(w, logger, "update profile", err, "error while updating settings")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, toProfileResponse(profile))
	logger.Info("settings updated")
}

func (s *Server) LogWater(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := authorized(w, r, "log water")
	if !ok {
		return
	}
	var req LogWaterRequest
	if !decodeBody(w, r, logger, "log water", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	res, err := s.trackingService.LogWater(ctx, uid, req.AmountMl)
	if err != nil {
		serviceError(w, logger, "log water", err, "error while logging water")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, res)
	logger.Info("water logged", slog.Int("amount_ml", req.AmountMl))
}

func (s *Server) GetWaterTotal(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := authorized(w, r, "water total")
	if !ok {
		return
	}
	date, err := dateParam(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	profile, err := s.settingsService.GetProfile(ctx, uid)
	if err != nil {
		serviceError(w, logger, "water total", err, "error while getting profile")
		return
	}
	day := tzclock.LocalDate(profile.TimeZone, time.Now())
	if date != nil {
		day = *date
	}
	total, err := s.aggregationService.WaterTotalForLocalDate(ctx, uid, day, profile.TimeZone)
	if err != nil {
		serviceError(w, logger, "water total", err, "error while counting water")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, WaterTotalResponse{
		Date:     tzclock.FormatDate(day),
		TotalMl:  total,
		TargetMl: profile.DailyWaterTargetMl,
	})
}

func (s *Server) SetExercise(w http.ResponseWriter, r *http.Request) {
	s.setBooleanDay(w, r, entity.Exercise)
}

func (s *Server) SetRetention(w http.ResponseWriter, r *http.Request) {
	s.setBooleanDay(w, r, entity.Retention)
}

func (s *Server) setBooleanDay(w http.ResponseWriter, r *http.Request, kind entity.BooleanKind) {
	op := "set " + string(kind)
	uid, logger, ok := authorized(w, r, op)
	if !ok {
		return
	}
	var req BooleanDayRequest
	if !decodeBody(w, r, logger, op, &req) {
		return
	}
	var date *time.Time
	if req.Date != "" {
		d, err := tzclock.ParseDate(req.Date)
		if err != nil {
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
			return
		}
		date = &d
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.trackingService.SetBooleanDay(ctx, kind, uid, req.Value, date); err != nil {
		serviceError(w, logger, op, err, "error while saving "+string(kind))
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info(string(kind)+" saved", slog.Bool("value", req.Value))
}

func (s *Server) LogActivity(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := authorized(w, r, "log activity")
	if !ok {
		return
	}
	var req LogActivityRequest
	if !decodeBody(w, r, logger, "log activity", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.trackingService.LogActivity(ctx, uid, req.ActivityType, req.Details); err != nil {
		serviceError(w, logger, "log activity", err, "error while logging activity")
		return
	}
	w.WriteHeader(http.StatusCreated)
	logger.Info("activity logged")
}

func (s *Server) StartSleep(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := authorized(w, r, "start sleep")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.trackingService.StartSleep(ctx, uid); err != nil {
		serviceError(w, logger, "start sleep", err, "error while starting sleep")
		return
	}
	w.WriteHeader(http.StatusCreated)
	logger.Info("sleep started")
}

// GetOpenSleep answers 204 when no interval is open.
func (s *Server) GetOpenSleep(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := authorized(w, r, "open sleep")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	interval, err := s.trackingService.OpenSleep(ctx, uid)
	if err != nil {
		serviceError(w, logger, "open sleep", err, "error while getting sleep session")
		return
	}
	if interval == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, interval)
}

func (s *Server) Wake(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := authorized(w, r, "wake")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	interval, err := s.trackingService.Wake(ctx, uid)
	if err != nil {
		serviceError(w, logger, "wake", err, "error while logging wake")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, interval)
	logger.Info("wake logged")
}

func (s *Server) LogScreenTime(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := authorized(w, r, "log screen time")
	if !ok {
		return
	}
	var req LogScreenTimeRequest
	if !decodeBody(w, r, logger, "log screen time", &req) {
		return
	}
	if req.Duration != "" {
		if req.Minutes != 0 {
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "use either minutes or duration", nil)
			return
		}
		minutes, err := tzclock.ParseDuration(req.Duration)
		if err != nil {
			logger.Error("log screen time error: invalid duration")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid duration", err)
			return
		}
		req.Minutes = minutes
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.trackingService.LogScreenTime(ctx, uid, req.Minutes); err != nil {
		serviceError(w, logger, "log screen time", err, "error while logging screen time")
		return
	}
	w.WriteHeader(http.StatusCreated)
	logger.Info("screen time logged", slog.Int("minutes", req.Minutes))
}

func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := authorized(w, r, "summary")
	if !ok {
		return
	}
	date, err := dateParam(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if date == nil {
		today, err := s.aggregationService.Today(ctx, uid)
		if err != nil {
			serviceError(w, logger, "summary", err, "error while building summary")
			return
		}
		date = &today
	}
	summary, err := s.aggregationService.DaySummary(ctx, uid, *date)
	if err != nil {
		serviceError(w, logger, "summary", err, "error while building summary")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SummaryResponse{DaySummary: summary, Text: notify.SummaryText(summary)})
	logger.Info("summary provided")
}

func (s *Server) GetStreaks(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := authorized(w, r, "streaks")
	if !ok {
		return
	}
	date, err := dateParam(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	streaks, err := s.aggregationService.Streaks(ctx, uid, date)
	if err != nil {
		serviceError(w, logger, "streaks", err, "error while counting streaks")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, streaks)
}

func (s *Server) Export(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := authorized(w, r, "export")
	if !ok {
		return
	}
	kind := entity.EventKind(chi.URLParam(r, "kind"))
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	dump, err := s.trackingService.Export(ctx, uid, kind)
	if err != nil {
		serviceError(w, logger, "export", err, "error while exporting events")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dump)
	logger.Info("events exported", slog.String("kind", string(kind)))
}

func (s *Server) ResetData(w http.ResponseWriter, r *http.Request) {
	uid, logger, ok := authorized(w, r, "reset")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
	defer cancel()
	if err := s.trackingService.Reset(ctx, uid); err != nil {
		serviceError(w, logger, "reset", err, "error while deleting data")
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("user data purged")
}

func (s *Server) GetReminders(w http.ResponseWriter, r *http.Request) {
	uid, _, ok := authorized(w, r, "reminders")
	if !ok {
		return
	}
	resp := RemindersResponse{Water: []string{}}
	if s.reminders != nil {
		if snap, armed := s.reminders.Snapshot(uid); armed {
			resp.Armed = true
			resp.Configured = snap.Plan.Configured
			resp.Water = clockStrings(snap.Water)
			if snap.Summary != nil {
				resp.Summary = snap.Summary.String()
			}
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

func clockStrings(times []tzclock.ClockTime) []string {
	out := make([]string, 0, len(times))
	for _, t := range times {
		out = append(out, t.String())
	}
	return out
}

var _ ReminderViewerI = (*scheduler.Scheduler)(nil)
