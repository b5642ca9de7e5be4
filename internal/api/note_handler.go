package api

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/JordanPiper315/techNotesBackend/internal/domain"
)

// NoteHandler serves the note resource HTTP operations
type NoteHandler struct {
	noteSvc domain.NoteService
}

func NewNoteHandler(noteSvc domain.NoteService) *NoteHandler {
	return &NoteHandler{noteSvc: noteSvc}
}

// GetAllNotes returns every note joined with its owner's username
// GET /api/notes
func (h *NoteHandler) GetAllNotes(c *fiber.Ctx) error {
	notes, err := h.noteSvc.ListNotes(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(notes)
}

// CreateNote stores a new note
// POST /api/notes
func (h *NoteHandler) CreateNote(c *fiber.Ctx) error {
	var req struct {
		User  uint   `json:"user"`
		Title string `json:"title"`
		Text  string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Invalid request body"})
	}
	if req.User == 0 || req.Title == "" || req.Text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "All fields are required"})
	}

	note, err := h.noteSvc.CreateNote(c.Context(), req.User, req.Title, req.Text)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: fmt.Sprintf("New note %s created", note.Title)})
}

// UpdateNote overwrites an existing note
// PATCH /api/notes
func (h *NoteHandler) UpdateNote(c *fiber.Ctx) error {
	var req struct {
		ID        uint   `json:"id"`
		User      uint   `json:"user"`
		Title     string `json:"title"`
		Text      string `json:"text"`
		Completed *bool  `json:"completed"` // pointer so a missing field is distinguishable from false
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Invalid request body"})
	}
	if req.ID == 0 || req.User == 0 || req.Title == "" || req.Text == "" || req.Completed == nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "All fields are required"})
	}

	note, err := h.noteSvc.UpdateNote(c.Context(), req.ID, req.User, req.Title, req.Text, *req.Completed)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(MessageResponse{Message: fmt.Sprintf("%s updated", note.Title)})
}

// DeleteNote removes a note
// DELETE /api/notes
func (h *NoteHandler) DeleteNote(c *fiber.Ctx) error {
	var req struct {
		ID uint `json:"id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Invalid request body"})
	}
	if req.ID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(MessageResponse{Message: "Note ID required"})
	}

	note, err := h.noteSvc.DeleteNote(c.Context(), req.ID)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(MessageResponse{Message: fmt.Sprintf("Note '%s' with ID %d deleted", note.Title, note.ID)})
}
