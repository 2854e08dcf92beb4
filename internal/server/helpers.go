package server

import (
	"strings"

	"promptvault/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondError maps application errors to HTTP responses.
func respondError(c *fiber.Ctx, err error) error {
	return models.RespondWithError(c, models.StatusForError(err), err)
}

// splitCSV splits a comma-separated query value into trimmed, non-empty
// parts.
func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
