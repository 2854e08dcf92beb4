package server

import (
	"time"

	"promptvault/internal/cache"
	"promptvault/internal/models"
	"promptvault/internal/views"

	"github.com/gofiber/fiber/v2"
)

// GetTrending handles GET /api/trending?window=day|week|month. Results are
// cached per window.
func (s *Server) GetTrending(c *fiber.Ctx) error {
	window := views.ParseWindow(c.Query("window"))

	var ranked []models.Prompt
	err := cache.Aside(c.Context(), cache.TrendingKey(string(window)), &ranked, cache.TrendingTTL, func() error {
		ranked = views.Trending(s.store.Prompts(), window, time.Now())
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"window": window, "prompts": ranked})
}

// GetLeaderboard handles GET /api/leaderboard, returning creators ranked by
// composite score.
func (s *Server) GetLeaderboard(c *fiber.Ctx) error {
	var ranked []models.Creator
	err := cache.Aside(c.Context(), cache.LeaderboardKey(), &ranked, cache.LeaderboardTTL, func() error {
		ranked = views.RankCreators(s.store.Creators())
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"creators": ranked})
}

// GetTags handles GET /api/tags, the sorted union of every prompt's tags.
func (s *Server) GetTags(c *fiber.Ctx) error {
	var tags []string
	err := cache.Aside(c.Context(), cache.TagsKey(), &tags, cache.TagsTTL, func() error {
		tags = views.AllTags(s.store.Prompts())
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"tags": tags})
}
