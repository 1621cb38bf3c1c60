package handlers

import (
	"pizzaria-crm/internal/core/services"
	"pizzaria-crm/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles the overview endpoint
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// VisaoGeral handles the aggregated overview across all collections
func (h *DashboardHandler) VisaoGeral(c *fiber.Ctx) error {
	return response.Success(c, "visão geral", h.dashboardService.ObterVisaoGeral(c.Context()))
}
