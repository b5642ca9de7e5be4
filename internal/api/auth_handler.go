package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/JordanPiper315/techNotesBackend/internal/domain"
	"github.com/JordanPiper315/techNotesBackend/internal/model"
)

// AuthHandler serves login and token lifecycle endpoints
type AuthHandler struct {
	authSvc domain.AuthService
}

func NewAuthHandler(authSvc domain.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token        string         `json:"token"`
	RefreshToken string         `json:"refresh_token"`
	ID           uint           `json:"id"`
	Username     string         `json:"username"`
	Roles        model.RoleList `json:"roles"`
}

// Login authenticates a user and returns an access/refresh token pair
// POST /auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Invalid request body"})
	}
	if req.Username == "" || req.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "All fields are required"})
	}

	pair, user, err := h.authSvc.Login(c.Context(), req.Username, req.Password)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(authResponse{
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ID:           user.ID,
		Username:     user.Username,
		Roles:        user.Roles,
	})
}

// Refresh rotates a refresh token and returns a fresh pair
// POST /auth/refresh
func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Invalid request body"})
	}
	if req.RefreshToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Refresh token required"})
	}

	pair, err := h.authSvc.Refresh(c.Context(), req.RefreshToken)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(fiber.Map{
		"token":         pair.AccessToken,
		"refresh_token": pair.RefreshToken,
	})
}

// Logout revokes the presented refresh token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Invalid request body"})
	}

	if err := h.authSvc.Logout(c.Context(), req.RefreshToken); err != nil {
		return handleError(c, err)
	}
	return c.JSON(MessageResponse{Message: "Logged out successfully"})
}
