package handlers

import (
	"main-gestdoc/internal/core/domain"
	"main-gestdoc/internal/core/services"
	"main-gestdoc/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NavigationHandler handles navigation shell endpoints
type NavigationHandler struct {
	navService *services.NavigationService
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(navService *services.NavigationService) *NavigationHandler {
	return &NavigationHandler{
		navService: navService,
	}
}

// GetItems handles listing the sidebar entries visible to the caller
// @Summary Get navigation items
// @Description Get the sidebar entries the caller's role may see
// @Tags Navigation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /navigation [get]
func (h *NavigationHandler) GetItems(c *fiber.Ctx) error {
	role, ok := c.Locals("role").(domain.Role)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}
	return response.Success(c, "Navigation items retrieved successfully", h.navService.ItemsFor(role))
}

// GetTitle handles deriving the header title for a path
// @Summary Get page title
// @Description Derive the header title for a path; unmatched paths fall back to the dashboard title
// @Tags Navigation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param path query string true "Frontend path"
// @Success 200 {object} response.Response
// @Router /navigation/title [get]
func (h *NavigationHandler) GetTitle(c *fiber.Ctx) error {
	return response.Success(c, "Title retrieved successfully", fiber.Map{
		"title": h.navService.TitleFor(c.Query("path")),
	})
}
