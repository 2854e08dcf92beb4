package server

import (
	"promptvault/internal/cache"
	"promptvault/internal/models"
	"promptvault/internal/observability"
	"promptvault/internal/store"
	"promptvault/internal/views"

	"github.com/gofiber/fiber/v2"
)

// ListPrompts handles GET /api/prompts?q=&tags=&author=&sort=
func (s *Server) ListPrompts(c *fiber.Ctx) error {
	filter := views.Filter{
		Query:    c.Query("q"),
		Tags:     splitCSV(c.Query("tags")),
		AuthorID: c.Query("author"),
	}
	sortKey := views.ParseSortKey(c.Query("sort"))

	prompts := views.Sort(filter.Apply(s.store.Prompts()), sortKey)
	return c.JSON(prompts)
}

// GetPrompt handles GET /api/prompts/:id
func (s *Server) GetPrompt(c *fiber.Ctx) error {
	prompt, err := s.store.PromptByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(prompt)
}

// CreatePrompt handles POST /api/prompts
func (s *Server) CreatePrompt(c *fiber.Ctx) error {
	var req store.CreatePromptInput
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	prompt, err := s.store.CreatePrompt(req)
	observability.RecordStoreOp("create_prompt", err)
	if err != nil {
		return respondError(c, err)
	}

	cache.InvalidateDiscovery(c.Context())
	return c.Status(fiber.StatusCreated).JSON(prompt)
}

// ToggleSave handles POST /api/prompts/:id/save. Saving is an idempotent
// toggle with no effect on upvotes.
func (s *Server) ToggleSave(c *fiber.Ctx) error {
	saved, err := s.store.ToggleSavePrompt(c.Params("id"))
	observability.RecordStoreOp("toggle_save", err)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"saved": saved})
}

// ToggleUpvote handles POST /api/prompts/:id/upvote. The vote-set membership
// and the prompt counter change together; the response carries the updated
// prompt.
func (s *Server) ToggleUpvote(c *fiber.Ctx) error {
	prompt, voted, err := s.store.ToggleUpvotePrompt(c.Params("id"))
	observability.RecordStoreOp("toggle_upvote", err)
	if err != nil {
		return respondError(c, err)
	}

	cache.InvalidateDiscovery(c.Context())
	return c.JSON(fiber.Map{
		"voted":  voted,
		"prompt": prompt,
	})
}
