package server

import (
	"promptvault/internal/cache"
	"promptvault/internal/models"
	"promptvault/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// GetComments handles GET /api/prompts/:id/comments. Comments come back in
// insertion order, which is chronological.
func (s *Server) GetComments(c *fiber.Ctx) error {
	prompt, err := s.store.PromptByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(prompt.Comments)
}

// CreateComment handles POST /api/prompts/:id/comments
func (s *Server) CreateComment(c *fiber.Ctx) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	comment, err := s.store.AddComment(c.Params("id"), req.Text)
	observability.RecordStoreOp("add_comment", err)
	if err != nil {
		return respondError(c, err)
	}

	cache.InvalidateDiscovery(c.Context())
	return c.Status(fiber.StatusCreated).JSON(comment)
}
