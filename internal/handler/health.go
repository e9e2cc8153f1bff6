package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/osse101/ChoreWheel_Go/internal/database"
)

// ReadinessTimeout bounds the database ping behind /readyz
const ReadinessTimeout = 2 * time.Second

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseDown   = "database connection failed"
	HealthCheckDatabase     = "database"
)

// HealthResponse is the body of /healthz and /readyz. Checks lists each
// dependency checked by /readyz with its status.
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// HandleHealthz reports that the process is serving
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: HealthStatusOK})
	}
}

// HandleReadyz reports whether spins can be served, which needs Postgres
// @Summary Readiness check
// @Description Pings the database the wheel reads configs and quotas from
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), ReadinessTimeout)
		defer cancel()

		start := time.Now()
		err := dbPool.Ping(ctx)
		if err != nil {
			slog.Error(LogMsgReadinessFailed, "error", err, "elapsed", time.Since(start))
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  HealthStatusUnavailable,
				Message: HealthMsgDatabaseDown,
				Checks:  map[string]string{HealthCheckDatabase: HealthStatusUnavailable},
			})
			return
		}

		respondJSON(w, http.StatusOK, HealthResponse{
			Status: HealthStatusOK,
			Checks: map[string]string{HealthCheckDatabase: HealthStatusOK},
		})
	}
}
