package handlers

import (
	"errors"
	"strconv"

	"main-gestdoc/internal/core/domain"
	"main-gestdoc/internal/core/services"
	"main-gestdoc/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// UserHandler handles user administration endpoints
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers handles listing all users (Admin only)
// @Summary List all users
// @Description Get all users, newest first (Admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /admin/users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.userService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}
	return response.Success(c, "Users retrieved successfully", users)
}

// GetUser handles getting a user by ID (Admin only)
// @Summary Get user by ID
// @Description Get a specific user by ID (Admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	user, err := h.userService.Get(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return response.NotFound(c, "Usuario no encontrado")
		}
		return response.InternalServerError(c, "Failed to get user")
	}
	return response.Success(c, "User retrieved successfully", user)
}

// CreateUser handles creating a user (Admin only)
// @Summary Create user
// @Description Create a new user with a default password when none is supplied (Admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.UserInput true "User data"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /admin/users [post]
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.Create(c.Context(), input, actorName(c))
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return response.BadRequest(c, validationErr.Message)
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return response.Conflict(c, "El correo ya está registrado")
		default:
			return response.InternalServerError(c, "Failed to create user")
		}
	}
	return response.Created(c, "User created successfully", user)
}

// UpdateUser handles updating a user (Admin only)
// @Summary Update user
// @Description Replace a user's editable fields (Admin only)
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param body body services.UserInput true "User data"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /admin/users/{id} [put]
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	var input services.UserInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	user, err := h.userService.Update(c.Context(), uint(id), input, actorName(c))
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			return response.BadRequest(c, validationErr.Message)
		case errors.Is(err, domain.ErrUserNotFound):
			return response.NotFound(c, "Usuario no encontrado")
		case errors.Is(err, domain.ErrUserAlreadyExists):
			return response.Conflict(c, "El correo ya está registrado")
		default:
			return response.InternalServerError(c, "Failed to update user")
		}
	}
	return response.Success(c, "User updated successfully", user)
}

// DeleteUser handles deleting a user (Admin only)
// @Summary Delete user
// @Description Administrator accounts cannot be removed; other deletions are not offered yet
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 501 {object} response.Response
// @Router /admin/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	err = h.userService.Delete(c.Context(), uint(id))
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return response.NotFound(c, "Usuario no encontrado")
	case errors.Is(err, domain.ErrCannotDeleteAdmin):
		return response.Forbidden(c, "No se puede eliminar un administrador")
	case errors.Is(err, domain.ErrNotImplemented):
		return response.NotImplemented(c, "La eliminación de usuarios no está implementada")
	case err != nil:
		return response.InternalServerError(c, "Failed to delete user")
	}
	return response.Success(c, "User deleted successfully", nil)
}

// actorName resolves the acting user's display name from the session
func actorName(c *fiber.Ctx) string {
	if nombre, ok := c.Locals("nombre").(string); ok {
		return nombre
	}
	return ""
}
