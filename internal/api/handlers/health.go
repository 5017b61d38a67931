package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// StatusResponse is the body of the probe endpoints.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// ReadinessChecker reports whether the provider has been initialized.
type ReadinessChecker interface {
	Initialized() bool
}

// HealthHandler provides health and readiness endpoints.
type HealthHandler struct {
	provider ReadinessChecker
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(p ReadinessChecker) *HealthHandler {
	return &HealthHandler{provider: p}
}

// Healthz returns 200 if the process is running.
func (*HealthHandler) Healthz(c echo.Context) error {
	return c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

// Readyz returns 200 once the provider holds credentials, 503 otherwise.
func (h *HealthHandler) Readyz(c echo.Context) error {
	if h.provider == nil || !h.provider.Initialized() {
		return c.JSON(http.StatusServiceUnavailable, StatusResponse{Status: "unavailable"})
	}
	return c.JSON(http.StatusOK, StatusResponse{Status: "ready"})
}
