package server

import (
	"promptvault/internal/models"
	"promptvault/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// GetSession handles GET /api/session, returning the session user and the
// navigation slice.
func (s *Server) GetSession(c *fiber.Ctx) error {
	page, param := s.store.Session()
	return c.JSON(fiber.Map{
		"user":       s.store.CurrentUser(),
		"page":       page,
		"page_param": param,
	})
}

// Navigate handles POST /api/session/navigate. Page and param are set
// atomically; omitting param clears the slot.
func (s *Server) Navigate(c *fiber.Ctx) error {
	var req struct {
		Page  string `json:"page"`
		Param string `json:"param"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	page, err := models.ParsePage(req.Page)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.store.NavigateTo(page, req.Param); err != nil {
		return respondError(c, err)
	}
	observability.RecordStoreOp("navigate", nil)

	newPage, param := s.store.Session()
	return c.JSON(fiber.Map{"page": newPage, "page_param": param})
}

// ClearPageParam handles DELETE /api/session/param, the consume-once side of
// parameter passing: the page that used the value clears it so re-renders do
// not reapply it.
func (s *Server) ClearPageParam(c *fiber.Ctx) error {
	s.store.ClearPageParam()
	return c.SendStatus(fiber.StatusNoContent)
}
