package handlers

import (
	"pizzaria-crm/internal/adapters/persistence/store"
	"pizzaria-crm/internal/config"

	"github.com/gofiber/fiber/v2"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	st  store.Store
	cfg *config.Config
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(st store.Store, cfg *config.Config) *HealthHandler {
	return &HealthHandler{st: st, cfg: cfg}
}

// Root handles the root endpoint
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "🍕 Pizzaria CRM API v1.0 is running",
		"mode":    h.cfg.AppMode,
	})
}

// HealthCheck reports API and document store health
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	storeStatus := "healthy"
	if err := h.st.Ping(c.Context()); err != nil {
		storeStatus = "unhealthy"
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":   "healthy",
			"store": storeStatus,
		},
	})
}

// APIInfo handles API v1 info
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Pizzaria CRM API v1.0",
		"version": "1.0.0",
	})
}
