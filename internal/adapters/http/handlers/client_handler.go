package handlers

import (
	"errors"

	"main-gestdoc/internal/core/domain"
	"main-gestdoc/internal/core/services"
	"main-gestdoc/internal/pkg/pagination"
	"main-gestdoc/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClientHandler handles client endpoints
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// ListClients handles listing all clients
// @Summary List all clients
// @Description Get all clients, newest first (Admin or Manager)
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Param page query int false "Page number; omit to list everything"
// @Param limit query int false "Page size"
// @Router /clients [get]
func (h *ClientHandler) ListClients(c *fiber.Ctx) error {
	// An explicit page switches to the paginated envelope
	if c.Query("page") != "" {
		params := pagination.GetParams(c)
		clients, total, err := h.clientService.ListPage(c.Context(), params.Offset, params.Limit)
		if err != nil {
			return response.InternalServerError(c, "Failed to list clients")
		}
		return response.Success(c, "Clients retrieved successfully", pagination.NewResponse(clients, params, total))
	}

	clients, err := h.clientService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list clients")
	}
	return response.Success(c, "Clients retrieved successfully", clients)
}

// GetClient handles getting a client by ID
// @Summary Get client by ID
// @Description Get a specific client by ID (Admin or Manager)
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clients/{id} [get]
func (h *ClientHandler) GetClient(c *fiber.Ctx) error {
	client, err := h.clientService.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return response.NotFound(c, "Cliente no encontrado")
		}
		return response.InternalServerError(c, "Failed to get client")
	}
	return response.Success(c, "Client retrieved successfully", client)
}

// CreateClient handles creating a client
// @Summary Create client
// @Description Create a new client (Admin or Manager)
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ClientInput true "Client data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /clients [post]
func (h *ClientHandler) CreateClient(c *fiber.Ctx) error {
	var input services.ClientInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	client, err := h.clientService.Create(c.Context(), input, actorName(c))
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			return response.BadRequest(c, validationErr.Message)
		}
		return response.InternalServerError(c, "Failed to create client")
	}
	return response.Created(c, "Client created successfully", client)
}

// UpdateClient handles updating a client
// @Summary Update client
// @Description Replace a client's editable fields (Admin or Manager)
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Param body body services.ClientInput true "Client data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clients/{id} [put]
func (h *ClientHandler) UpdateClient(c *fiber.Ctx) error {
	var input services.ClientInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	client, err := h.clientService.Update(c.Context(), c.Params("id"), input, actorName(c))
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return response.BadRequest(c, validationErr.Message)
		case errors.Is(err, domain.ErrClientNotFound):
			return response.NotFound(c, "Cliente no encontrado")
		default:
			return response.InternalServerError(c, "Failed to update client")
		}
	}
	return response.Success(c, "Client updated successfully", client)
}

// DeleteClient handles deleting a client
// @Summary Delete client
// @Description Hard-remove a client; referencing documents keep their name snapshots (Admin or Manager)
// @Tags Clients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /clients/{id} [delete]
func (h *ClientHandler) DeleteClient(c *fiber.Ctx) error {
	removed, err := h.clientService.Delete(c.Context(), c.Params("id"), actorName(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete client")
	}
	if !removed {
		return response.NotFound(c, "Cliente no encontrado")
	}
	return response.Success(c, "Client deleted successfully", nil)
}
