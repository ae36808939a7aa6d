package handlers

import (
	"errors"

	"main-gestdoc/internal/core/domain"
	"main-gestdoc/internal/core/services"
	"main-gestdoc/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StatusConfigHandler handles status whitelist administration endpoints
type StatusConfigHandler struct {
	configService *services.StatusConfigService
}

// NewStatusConfigHandler creates a new status config handler
func NewStatusConfigHandler(configService *services.StatusConfigService) *StatusConfigHandler {
	return &StatusConfigHandler{
		configService: configService,
	}
}

// UpdateStatusesRequest represents a whitelist replacement request body
type UpdateStatusesRequest struct {
	Statuses []domain.DocumentStatus `json:"statuses"`
}

// ListConfigs handles listing every variant's whitelist (Admin only)
// @Summary List status whitelists
// @Description Get the selectable statuses per document type; unconfigured types report all statuses
// @Tags Statuses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/statuses [get]
func (h *StatusConfigHandler) ListConfigs(c *fiber.Ctx) error {
	configs, err := h.configService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list status configs")
	}
	return response.Success(c, "Status configs retrieved successfully", configs)
}

// GetConfig handles getting one variant's whitelist (Admin only)
// @Summary Get status whitelist
// @Tags Statuses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "Document type key"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/statuses/{type} [get]
func (h *StatusConfigHandler) GetConfig(c *fiber.Ctx) error {
	docType, ok := domain.ParseDocumentType(c.Params("type"))
	if !ok {
		return response.BadRequest(c, "Tipo de documento desconocido")
	}

	statuses, err := h.configService.Get(c.Context(), docType)
	if err != nil {
		return response.InternalServerError(c, "Failed to get status config")
	}
	return response.Success(c, "Status config retrieved successfully", fiber.Map{
		"documentType": docType,
		"statuses":     statuses,
	})
}

// UpdateConfig handles replacing one variant's whitelist (Admin only)
// @Summary Update status whitelist
// @Description Replace the selectable statuses for a document type; the set cannot be empty
// @Tags Statuses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param type path string true "Document type key"
// @Param body body UpdateStatusesRequest true "Whitelisted statuses"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /admin/statuses/{type} [put]
func (h *StatusConfigHandler) UpdateConfig(c *fiber.Ctx) error {
	docType, ok := domain.ParseDocumentType(c.Params("type"))
	if !ok {
		return response.BadRequest(c, "Tipo de documento desconocido")
	}

	var req UpdateStatusesRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	statuses, err := h.configService.Update(c.Context(), docType, req.Statuses, actorName(c))
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return response.BadRequest(c, validationErr.Message)
		case errors.Is(err, domain.ErrInvalidStatus):
			return response.BadRequest(c, "Estado desconocido")
		default:
			return response.InternalServerError(c, "Failed to update status config")
		}
	}
	return response.Success(c, "Status config updated successfully", fiber.Map{
		"documentType": docType,
		"statuses":     statuses,
	})
}
