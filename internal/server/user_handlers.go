package server

import (
	"promptvault/internal/models"
	"promptvault/internal/observability"
	"promptvault/internal/views"

	"github.com/gofiber/fiber/v2"
)

// GetAllUsers handles GET /api/users
func (s *Server) GetAllUsers(c *fiber.Ctx) error {
	return c.JSON(s.store.Users())
}

// GetUserProfile handles GET /api/users/:id
func (s *Server) GetUserProfile(c *fiber.Ctx) error {
	user, err := s.store.UserByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	user := s.store.CurrentUser()
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Login required"))
	}
	return c.JSON(user)
}

// UpdateMyProfile handles PUT /api/users/me. Only the users collection is
// updated; author snapshots in existing prompts and comments keep the old
// identity.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	var req struct {
		Name      string `json:"name"`
		AvatarURL string `json:"avatar_url"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.store.UpdateProfile(req.Name, req.AvatarURL)
	observability.RecordStoreOp("update_profile", err)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(user)
}

// GetSavedPrompts handles GET /api/users/me/saved
func (s *Server) GetSavedPrompts(c *fiber.Ctx) error {
	user := s.store.CurrentUser()
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError("Login required"))
	}
	return c.JSON(views.SavedBy(s.store.Prompts(), user))
}

// GetUserPrompts handles GET /api/users/:id/prompts
func (s *Server) GetUserPrompts(c *fiber.Ctx) error {
	id := c.Params("id")
	if _, err := s.store.UserByID(id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(views.ByAuthor(s.store.Prompts(), id))
}
