package handlers

import (
	"errors"

	"main-gestdoc/internal/core/domain"
	"main-gestdoc/internal/core/services"
	"main-gestdoc/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler serves one document variant's endpoints. It is
// registered four times, once per variant, under its own route group.
type DocumentHandler[T any, PT services.DocPtr[T]] struct {
	docService *services.DocumentService[T, PT]
}

// NewDocumentHandler creates a document handler for one variant
func NewDocumentHandler[T any, PT services.DocPtr[T]](docService *services.DocumentService[T, PT]) *DocumentHandler[T, PT] {
	return &DocumentHandler[T, PT]{
		docService: docService,
	}
}

// ChangeStatusRequest represents a status change request body
type ChangeStatusRequest struct {
	Status domain.DocumentStatus `json:"status"`
}

// ListDocuments handles listing, with optional search and status filters
// @Summary List documents
// @Description Get all documents of the variant, newest first, optionally filtered by free text and status
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param search query string false "Free-text search"
// @Param status query string false "Exact status filter"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /{documents} [get]
func (h *DocumentHandler[T, PT]) ListDocuments(c *fiber.Ctx) error {
	status := domain.DocumentStatus(c.Query("status"))
	if status != "" && !status.IsValid() {
		return response.BadRequest(c, "Estado desconocido")
	}

	docs, err := h.docService.List(c.Context(), c.Query("search"), status)
	if err != nil {
		return response.InternalServerError(c, "Failed to list documents")
	}
	return response.Success(c, "Documents retrieved successfully", docs)
}

// GetDocument handles getting one document by ID
// @Summary Get document by ID
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{documents}/{id} [get]
func (h *DocumentHandler[T, PT]) GetDocument(c *fiber.Ctx) error {
	doc, err := h.docService.Get(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return response.NotFound(c, "Documento no encontrado")
		}
		return response.InternalServerError(c, "Failed to get document")
	}
	return response.Success(c, "Document retrieved successfully", doc)
}

// CreateDocument handles creating a document
// @Summary Create document
// @Description Create a document; identifier, creation date and name snapshots are system-assigned
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /{documents} [post]
func (h *DocumentHandler[T, PT]) CreateDocument(c *fiber.Ctx) error {
	var doc T
	if err := c.BodyParser(&doc); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	created, err := h.docService.Create(c.Context(), &doc, actorName(c))
	if err != nil {
		return h.writeDocError(c, err, "Failed to create document")
	}
	return response.Created(c, "Document created successfully", created)
}

// UpdateDocument handles replacing a document
// @Summary Update document
// @Description Replace a document by ID, preserving its creation date and re-resolving name snapshots
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{documents}/{id} [put]
func (h *DocumentHandler[T, PT]) UpdateDocument(c *fiber.Ctx) error {
	var doc T
	if err := c.BodyParser(&doc); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	updated, err := h.docService.Update(c.Context(), c.Params("id"), &doc, actorName(c))
	if err != nil {
		return h.writeDocError(c, err, "Failed to update document")
	}
	return response.Success(c, "Document updated successfully", updated)
}

// DeleteDocument handles deleting a document
// @Summary Delete document
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{documents}/{id} [delete]
func (h *DocumentHandler[T, PT]) DeleteDocument(c *fiber.Ctx) error {
	removed, err := h.docService.Delete(c.Context(), c.Params("id"), actorName(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to delete document")
	}
	if !removed {
		return response.NotFound(c, "Documento no encontrado")
	}
	return response.Success(c, "Document deleted successfully", nil)
}

// AvailableStatuses handles listing the variant's status whitelist
// @Summary List available statuses
// @Description Get the statuses selectable for the variant; missing config yields all statuses
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /{documents}/statuses [get]
func (h *DocumentHandler[T, PT]) AvailableStatuses(c *fiber.Ctx) error {
	statuses, err := h.docService.AvailableStatuses(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list statuses")
	}
	return response.Success(c, "Statuses retrieved successfully", statuses)
}

// ChangeStatus handles moving a document to a new status
// @Summary Change document status
// @Description Move a document to a whitelisted status and record the transition
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Param body body ChangeStatusRequest true "New status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{documents}/{id}/status [put]
func (h *DocumentHandler[T, PT]) ChangeStatus(c *fiber.Ctx) error {
	var req ChangeStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if !req.Status.IsValid() {
		return response.BadRequest(c, "Estado desconocido")
	}

	userID, _ := c.Locals("userID").(uint)

	doc, err := h.docService.ChangeStatus(c.Context(), c.Params("id"), req.Status, userID, actorName(c))
	if err != nil {
		return h.writeDocError(c, err, "Failed to change status")
	}
	return response.Success(c, "Status changed successfully", doc)
}

// StatusHistory handles listing a document's status transitions
// @Summary Get status history
// @Description Get the document's status transitions, newest first
// @Tags Documents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Document ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /{documents}/{id}/history [get]
func (h *DocumentHandler[T, PT]) StatusHistory(c *fiber.Ctx) error {
	if _, err := h.docService.Get(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrDocumentNotFound) {
			return response.NotFound(c, "Documento no encontrado")
		}
		return response.InternalServerError(c, "Failed to get document")
	}

	history, err := h.docService.History(c.Context(), c.Params("id"))
	if err != nil {
		return response.InternalServerError(c, "Failed to get status history")
	}
	return response.Success(c, "Status history retrieved successfully", history)
}

func (h *DocumentHandler[T, PT]) writeDocError(c *fiber.Ctx, err error, fallback string) error {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return response.BadRequest(c, validationErr.Message)
	case errors.Is(err, domain.ErrStatusNotAvailable):
		return response.BadRequest(c, "El estado seleccionado no está disponible para este tipo de documento")
	case errors.Is(err, domain.ErrDocumentNotFound):
		return response.NotFound(c, "Documento no encontrado")
	default:
		return response.InternalServerError(c, fallback)
	}
}
