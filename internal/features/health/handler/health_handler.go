package handler

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler serves the static capability descriptor for the service.
type HealthHandler struct {
	serviceName string
	version     string
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(serviceName, version string) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
	}
}

// HealthStatus is the health check payload.
type HealthStatus struct {
	Status    string         `json:"status"`
	Service   string         `json:"service"`
	Version   string         `json:"version"`
	Timestamp time.Time      `json:"timestamp"`
	Features  map[string]any `json:"features"`
}

// GetHealth handles GET /api/health.
// @Summary Health check
// @Description Returns the service's static capability descriptor.
// @Tags health
// @Produce json
// @Success 200 {object} HealthStatus
// @Router /api/health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(HealthStatus{
		Status:    "ok",
		Service:   h.serviceName,
		Version:   h.version,
		Timestamp: time.Now().UTC(),
		Features: map[string]any{
			"rateCalculation": "enabled",
			"mockData":        true,
		},
	})
}
