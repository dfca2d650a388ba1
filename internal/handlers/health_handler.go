package handlers

import (
	"net/http"
	"time"

	"statement-transformer/internal/errors"
	"statement-transformer/internal/services"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db               *gorm.DB
	statementService services.StatementServiceInterface
}

// NewHealthCheckHandler creates a new health check handler. db may be nil when
// statement storage is disabled.
func NewHealthCheckHandler(db *gorm.DB, statementService services.StatementServiceInterface) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, statementService: statementService}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API and, when storage is enabled, database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,storage=string,store_breaker=string,store_failures=int,time=string} "Service is healthy"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	storage := "disabled"

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			return h.unavailable(c)
		}

		if err := sqlDB.PingContext(c.Request().Context()); err != nil {
			return h.unavailable(c)
		}
		storage = "connected"
	}

	response := map[string]interface{}{
		"status":  "healthy",
		"storage": storage,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}

	// writes are skipped or on trial until the breaker closes again
	if h.statementService != nil {
		store := h.statementService.StoreStatus()
		if store.Enabled {
			response["store_breaker"] = store.Breaker.String()
			response["store_failures"] = store.ConsecutiveFailures
			if store.Breaker != services.StateClosed {
				response["status"] = "degraded"
			}
		}
	}

	return c.JSON(http.StatusOK, response)
}

func (h *HealthCheckHandler) unavailable(c echo.Context) error {
	errorResponse := errors.NewErrorResponse(
		errors.SystemServiceUnavailable,
		getTraceIDFromContext(c),
		errors.WithDetails("Database connection failed"),
	)
	return c.JSON(http.StatusServiceUnavailable, errorResponse)
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		traceID = getTraceID(c)
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
