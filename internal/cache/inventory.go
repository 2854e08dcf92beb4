package cache

import (
	"context"
	"fmt"
	"time"
)

// TTLs for the discovery view caches. Short, because the underlying data
// mutates with every upvote and comment.
const (
	TrendingTTL    = 2 * time.Minute
	LeaderboardTTL = 10 * time.Minute
	TagsTTL        = 5 * time.Minute
)

// TrendingKey returns the cache key for a trending window.
func TrendingKey(window string) string {
	return fmt.Sprintf("trending:%s", window)
}

// LeaderboardKey returns the cache key for the creator leaderboard.
func LeaderboardKey() string {
	return "leaderboard:creators"
}

// TagsKey returns the cache key for the tag universe.
func TagsKey() string {
	return "tags:all"
}

// Invalidate removes a key, best-effort.
func Invalidate(ctx context.Context, key string) {
	if client == nil {
		return
	}
	client.Del(ctx, key)
}

// InvalidateDiscovery drops every discovery-view cache entry. Called after
// any mutation that changes prompts, votes, or comments.
func InvalidateDiscovery(ctx context.Context) {
	for _, w := range []string{"day", "week", "month"} {
		Invalidate(ctx, TrendingKey(w))
	}
	Invalidate(ctx, LeaderboardKey())
	Invalidate(ctx, TagsKey())
}
