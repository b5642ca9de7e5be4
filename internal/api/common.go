package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/JordanPiper315/techNotesBackend/internal/domain"
)

// MessageResponse is the uniform body for confirmations and errors
type MessageResponse struct {
	Message string `json:"message"`
}

// handleError converts a service error into an HTTP response. AppErrors
// carry their own status code; anything else is an unexpected fault.
func handleError(c *fiber.Ctx, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return c.Status(appErr.Code).JSON(MessageResponse{Message: appErr.Message})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(MessageResponse{Message: "Internal server error"})
}
