package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/deppfellow/school-personnel/internal/middleware"
	"github.com/deppfellow/school-personnel/internal/server"
	"github.com/labstack/echo/v4"
)

var errDatabaseNotConfigured = errors.New("database not configured")

// HealthHandler serves the status endpoint used by load balancers and
// uptime monitors.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type HealthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]HealthCheck `json:"checks"`
}

func (h *HealthHandler) recordFailure(checkType, errorType string, attrs map[string]interface{}) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	event := map[string]interface{}{
		"check_type": checkType,
		"operation":  "health_check",
		"error_type": errorType,
	}
	for k, v := range attrs {
		event[k] = v
	}
	app.RecordCustomEvent("HealthCheckError", event)
}

// CheckHealth answers 200 when every enabled dependency check passes and
// 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	obs := h.server.Config.Observability

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]HealthCheck),
	}

	if obs == nil || obs.HasCheck("database") {
		timeout := 5 * time.Second
		if obs != nil {
			timeout = obs.HealthChecks.Timeout
		}

		ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
		defer cancel()

		dbStart := time.Now()

		var err error
		if h.server.DB == nil {
			err = errDatabaseNotConfigured
		} else {
			err = h.server.DB.Ping(ctx)
		}

		check := HealthCheck{Status: "healthy", ResponseTime: time.Since(dbStart).String()}
		if err != nil {
			check.Status = "unhealthy"
			check.Error = err.Error()
			response.Status = "unhealthy"

			logger.Error().
				Err(err).
				Dur("response_time", time.Since(dbStart)).
				Msg("database health check failed")

			h.recordFailure("database", "database_unhealthy", map[string]interface{}{
				"response_time_ms": time.Since(dbStart).Milliseconds(),
				"error_message":    err.Error(),
			})
		} else {
			logger.Debug().
				Dur("response_time", time.Since(dbStart)).
				Msg("database health check passed")
		}
		response.Checks["database"] = check
	}

	if response.Status != "healthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordFailure("overall", "overall_unhealthy", map[string]interface{}{
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}
