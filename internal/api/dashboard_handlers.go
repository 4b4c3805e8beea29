package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/limbo/fitdash/internal/error_values"
	"github.com/limbo/fitdash/internal/service"
	"github.com/limbo/fitdash/pkg/httputil"
)

const dashboardTimeout = 15 * time.Second

type LogWaterRequest struct {
	AmountML int `json:"amount_ml"`
}

type LogStepsRequest struct {
	StepCount int    `json:"step_count"`
	Date      string `json:"date,omitempty"`
}

type LogWeightRequest struct {
	WeightKG float64 `json:"weight_kg"`
}

func writeDashboardError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrUnauthenticated):
		logger.Error(op + " error: unauthenticated")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
	case errors.Is(err, errorvalues.ErrInvalidLogData):
		logger.Error(op+" error: invalid data", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid log data", err)
	case errors.Is(err, errorvalues.ErrPersistence):
		logger.Error(op+" error: storage rejected write", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadGateway, "couldn't save log entry", nil)
	case errors.Is(err, errorvalues.ErrAggregation):
		logger.Error(op+" error: aggregation failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "couldn't compute dashboard", nil)
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

// dashboardWrite decodes body into req, runs write and responds with the refreshed state.
func dashboardWrite[T any](s *Server, w http.ResponseWriter, r *http.Request, op string,
	write func(ctx context.Context, uid uuid.UUID, req T) (service.DashboardState, error)) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		writeDashboardError(w, logger, op, err)
		return
	}
	var req T
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(op + " error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()
	state, err := write(ctx, uid, req)
	if err != nil {
		writeDashboardError(w, logger, op, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, state)
	logger.Info(op + " done")
}

func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		writeDashboardError(w, logger, "get dashboard", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()
	state, err := s.dashboards.Refresh(ctx, uid)
	if err != nil {
		writeDashboardError(w, logger, "get dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, state)
}

func (s *Server) GetDashboardSnapshot(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		writeDashboardError(w, logger, "get dashboard snapshot", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, s.dashboards.Snapshot(uid))
}

func (s *Server) LogWater(w http.ResponseWriter, r *http.Request) {
	dashboardWrite(s, w, r, "log water", func(ctx context.Context, uid uuid.UUID, req LogWaterRequest) (service.DashboardState, error) {
		return s.dashboards.LogWaterIntake(ctx, uid, req.AmountML)
	})
}

func (s *Server) LogSteps(w http.ResponseWriter, r *http.Request) {
	dashboardWrite(s, w, r, "log steps", func(ctx context.Context, uid uuid.UUID, req LogStepsRequest) (service.DashboardState, error) {
		return s.dashboards.LogDailySteps(ctx, uid, req.StepCount, req.Date)
	})
}

func (s *Server) LogMeal(w http.ResponseWriter, r *http.Request) {
	dashboardWrite(s, w, r, "log meal", s.dashboards.LogMeal)
}

func (s *Server) LogWorkout(w http.ResponseWriter, r *http.Request) {
	dashboardWrite(s, w, r, "log workout", s.dashboards.LogWorkout)
}

func (s *Server) LogWeight(w http.ResponseWriter, r *http.Request) {
	dashboardWrite(s, w, r, "log weight", func(ctx context.Context, uid uuid.UUID, req LogWeightRequest) (service.DashboardState, error) {
		return s.dashboards.LogWeight(ctx, uid, req.WeightKG)
	})
}

// RefreshDashboard accepts an empty body as "nothing specific changed".
func (s *Server) RefreshDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		writeDashboardError(w, logger, "refresh dashboard", err)
		return
	}
	var flags service.ActivityFlags
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&flags); err != nil && !errors.Is(err, io.EOF) {
		logger.Error("refresh dashboard error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), dashboardTimeout)
	defer cancel()
	state, err := s.dashboards.UpdateActivitySummary(ctx, uid, flags)
	if err != nil {
		writeDashboardError(w, logger, "refresh dashboard", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, state)
}

func (s *Server) StreamDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		writeDashboardError(w, logger, "dashboard stream", err)
		return
	}
	if s.streamer == nil {
		httputil.WriteErrorResponse(w, http.StatusNotImplemented, "realtime updates are disabled", nil)
		return
	}
	if err = s.streamer.Serve(w, r, uid); err != nil {
		// Upgrader has already answered the client
		logger.Error("dashboard stream error", slog.String("error", err.Error()))
		return
	}
	logger.Info("dashboard stream closed")
}
