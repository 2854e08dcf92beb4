package views

import (
	"fmt"
	"testing"
	"time"

	"promptvault/internal/models"
	"promptvault/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func promptIDs(prompts []models.Prompt) []string {
	ids := make([]string, len(prompts))
	for i, p := range prompts {
		ids[i] = p.ID
	}
	return ids
}

func TestFilter_Apply(t *testing.T) {
	t.Parallel()

	prompts := seed.Static().Prompts

	t.Run("query matches title and description, case-insensitive", func(t *testing.T) {
		t.Parallel()
		got := Filter{Query: "PIXEL"}.Apply(prompts)
		assert.Equal(t, []string{"p3"}, promptIDs(got))

		// "cozy" appears in p4's title and description only.
		got = Filter{Query: "cozy"}.Apply(prompts)
		assert.Equal(t, []string{"p4"}, promptIDs(got))
	})

	t.Run("all selected tags must be present", func(t *testing.T) {
		t.Parallel()
		got := Filter{Tags: []string{"Sci-Fi", "Gaming"}}.Apply(prompts)
		assert.Equal(t, []string{"p1"}, promptIDs(got))

		got = Filter{Tags: []string{"Sci-Fi", "Fantasy"}}.Apply(prompts)
		assert.Empty(t, got, "no prompt carries both tags")
	})

	t.Run("tag matching is exact, not case-folded", func(t *testing.T) {
		t.Parallel()
		got := Filter{Tags: []string{"sci-fi"}}.Apply(prompts)
		assert.Empty(t, got)
	})

	t.Run("author filter keys on the snapshot id", func(t *testing.T) {
		t.Parallel()
		got := Filter{AuthorID: "u3"}.Apply(prompts)
		assert.Equal(t, []string{"p3", "p4"}, promptIDs(got))
	})

	t.Run("criteria combine with AND", func(t *testing.T) {
		t.Parallel()
		got := Filter{Query: "design", AuthorID: "u3"}.Apply(prompts)
		assert.Equal(t, []string{"p4"}, promptIDs(got))
	})

	t.Run("zero filter returns everything in order", func(t *testing.T) {
		t.Parallel()
		got := Filter{}.Apply(prompts)
		assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, promptIDs(got))
	})
}

func TestSort(t *testing.T) {
	t.Parallel()

	t.Run("newest first by default", func(t *testing.T) {
		t.Parallel()
		got := Sort(seed.Static().Prompts, ParseSortKey(""))
		assert.Equal(t, []string{"p5", "p3", "p1", "p2", "p4"}, promptIDs(got))
	})

	t.Run("by upvotes descending", func(t *testing.T) {
		t.Parallel()
		got := Sort(seed.Static().Prompts, SortUpvotes)
		assert.Equal(t, []string{"p5", "p3", "p4", "p1", "p2"}, promptIDs(got))
	})

	t.Run("by comment count, stable for ties", func(t *testing.T) {
		t.Parallel()
		got := Sort(seed.Static().Prompts, SortComments)
		// p1 has the only comment; the rest keep insertion order.
		assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, promptIDs(got))
	})
}

func TestTrending(t *testing.T) {
	t.Parallel()

	mk := func(id string, upvotes, comments int, age time.Duration, now time.Time) models.Prompt {
		p := models.Prompt{ID: id, Upvotes: upvotes, CreatedAt: now.Add(-age)}
		for i := 0; i < comments; i++ {
			p.Comments = append(p.Comments, models.Comment{ID: fmt.Sprintf("%s-c%d", id, i)})
		}
		return p
	}

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("scores upvotes plus five per comment", func(t *testing.T) {
		t.Parallel()
		prompts := []models.Prompt{
			mk("low", 100, 0, time.Hour, now),
			mk("comments-win", 90, 3, time.Hour, now), // 90 + 15 = 105
		}
		got := Trending(prompts, WindowDay, now)
		assert.Equal(t, []string{"comments-win", "low"}, promptIDs(got))
	})

	t.Run("window excludes older prompts", func(t *testing.T) {
		t.Parallel()
		prompts := []models.Prompt{
			mk("today", 10, 0, 2*time.Hour, now),
			mk("last-week", 5000, 0, 3*24*time.Hour, now),
			mk("last-year", 9000, 0, 365*24*time.Hour, now),
		}
		assert.Equal(t, []string{"today"}, promptIDs(Trending(prompts, WindowDay, now)))
		assert.Equal(t, []string{"last-week", "today"}, promptIDs(Trending(prompts, WindowWeek, now)))
		assert.Equal(t, []string{"last-week", "today"}, promptIDs(Trending(prompts, WindowMonth, now)))
	})

	t.Run("caps the list", func(t *testing.T) {
		t.Parallel()
		var prompts []models.Prompt
		for i := 0; i < TrendingLimit+10; i++ {
			prompts = append(prompts, mk(fmt.Sprintf("p%d", i), i, 0, time.Hour, now))
		}
		got := Trending(prompts, WindowWeek, now)
		require.Len(t, got, TrendingLimit)
		assert.Equal(t, fmt.Sprintf("p%d", TrendingLimit+9), got[0].ID)
	})

	t.Run("parse defaults to week", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, WindowWeek, ParseWindow(""))
		assert.Equal(t, WindowWeek, ParseWindow("year"))
		assert.Equal(t, WindowDay, ParseWindow("day"))
		assert.Equal(t, WindowMonth, ParseWindow("month"))
	})
}

func TestRankCreators(t *testing.T) {
	t.Parallel()

	ds := seed.Static()
	ranked := RankCreators(ds.Creators)

	ids := make([]string, len(ranked))
	for i, c := range ranked {
		ids[i] = c.ID
	}
	// score = followers + totalUpvotes/10 + 20*promptsCount
	assert.Equal(t, []string{"u6", "u4", "u5", "u3", "u1", "u2"}, ids)

	// Input order must survive.
	assert.Equal(t, "u4", ds.Creators[0].ID)
}

func TestAllTags(t *testing.T) {
	t.Parallel()

	tags := AllTags(seed.Static().Prompts)
	assert.Equal(t, []string{
		"Art", "Branding", "Character Design", "Cityscape", "Cozy", "Cyberpunk",
		"Fantasy", "Game Dev", "Gaming", "Interior Design", "Lifestyle",
		"Logo Design", "Minimalist", "Pixel Art", "Retro", "Sci-Fi", "TTRPG",
	}, tags)

	t.Run("duplicates collapse", func(t *testing.T) {
		t.Parallel()
		prompts := []models.Prompt{
			{ID: "a", Tags: []string{"X", "Y"}},
			{ID: "b", Tags: []string{"Y", "X", "X"}},
		}
		assert.Equal(t, []string{"X", "Y"}, AllTags(prompts))
	})
}

func TestSavedBy(t *testing.T) {
	t.Parallel()

	ds := seed.Static()

	t.Run("returns saved prompts in collection order", func(t *testing.T) {
		t.Parallel()
		user := &models.User{SavedPrompts: []string{"p4", "p1"}}
		got := SavedBy(ds.Prompts, user)
		assert.Equal(t, []string{"p1", "p4"}, promptIDs(got))
	})

	t.Run("dangling ids are skipped", func(t *testing.T) {
		t.Parallel()
		user := &models.User{SavedPrompts: []string{"p2", "p999"}}
		got := SavedBy(ds.Prompts, user)
		assert.Equal(t, []string{"p2"}, promptIDs(got))
	})

	t.Run("nil user yields nothing", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, SavedBy(ds.Prompts, nil))
	})
}

func TestByAuthor(t *testing.T) {
	t.Parallel()

	ds := seed.Static()
	assert.Equal(t, []string{"p3", "p4"}, promptIDs(ByAuthor(ds.Prompts, "u3")))
	assert.Empty(t, ByAuthor(ds.Prompts, "u6"))
}
