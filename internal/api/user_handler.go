package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/JordanPiper315/techNotesBackend/internal/domain"
	"github.com/JordanPiper315/techNotesBackend/internal/model"
)

// UserHandler serves the user resource HTTP operations
type UserHandler struct {
	userSvc domain.UserService
}

func NewUserHandler(userSvc domain.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// GetAllUsers returns every user, password digests excluded
// GET /api/users
func (h *UserHandler) GetAllUsers(c *fiber.Ctx) error {
	users, err := h.userSvc.ListUsers(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(users)
}

// CreateUser stores a new user
// POST /api/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Username string         `json:"username"`
		Password string         `json:"password"`
		Roles    model.RoleList `json:"roles"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Invalid request body"})
	}
	if req.Username == "" || req.Password == "" || len(req.Roles) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "All fields are required"})
	}

	user, err := h.userSvc.CreateUser(c.Context(), req.Username, req.Password, req.Roles)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: fmt.Sprintf("New user %s created", user.Username)})
}

// UpdateUser overwrites an existing user; password is optional
// PATCH /api/users
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	var req struct {
		ID       uint           `json:"id"`
		Username string         `json:"username"`
		Roles    model.RoleList `json:"roles"`
		Active   *bool          `json:"active"` // pointer so a missing field is distinguishable from false
		Password string         `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Invalid request body"})
	}
	if req.ID == 0 || req.Username == "" || len(req.Roles) == 0 || req.Active == nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "All fields are required"})
	}

	user, err := h.userSvc.UpdateUser(c.Context(), req.ID, req.Username, req.Roles, *req.Active, req.Password)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(MessageResponse{Message: fmt.Sprintf("%s updated", user.Username)})
}

// DeleteUser removes a user with no assigned notes
// DELETE /api/users
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	var req struct {
		ID uint `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Invalid request body"})
	}
	if req.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "User ID required"})
	}

	user, err := h.userSvc.DeleteUser(c.Context(), req.ID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(MessageResponse{Message: fmt.Sprintf("Username %s with ID %d deleted", user.Username, user.ID)})
}
