package handlers

import (
	"main-gestdoc/internal/core/services"
	"main-gestdoc/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler handles dashboard endpoints
type DashboardHandler struct {
	dashboardService *services.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats handles the dashboard aggregate
// @Summary Get dashboard stats
// @Description Get KPI counts, recent activity and upcoming due dates
// @Tags Dashboard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /dashboard [get]
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.dashboardService.GetStats(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to get dashboard stats")
	}
	return response.Success(c, "Dashboard stats retrieved successfully", stats)
}
