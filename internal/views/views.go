// Package views holds the read-side computations the presentation layer
// derives from store data: filtering, sorting, trending, and the creator
// leaderboard. Everything here is a pure function over copies; the store is
// never touched.
package views

import (
	"sort"
	"strings"
	"time"

	"promptvault/internal/models"
)

// SortKey selects a prompt ordering.
type SortKey string

const (
	SortNewest   SortKey = "newest"
	SortUpvotes  SortKey = "upvotes"
	SortComments SortKey = "comments"
)

// ParseSortKey maps a raw query value to a SortKey, defaulting to newest.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortUpvotes, SortComments:
		return SortKey(s)
	default:
		return SortNewest
	}
}

// Filter narrows prompts by a case-insensitive search over title and
// description, a tag set (every selected tag must be present), and an author
// id. Zero values disable the corresponding criterion.
type Filter struct {
	Query    string
	Tags     []string
	AuthorID string
}

// Apply returns the prompts matching the filter, preserving input order.
func (f Filter) Apply(prompts []models.Prompt) []models.Prompt {
	q := strings.ToLower(f.Query)
	out := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Title), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		if f.AuthorID != "" && p.Author.ID != f.AuthorID {
			continue
		}
		if !hasAllTags(&p, f.Tags) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func hasAllTags(p *models.Prompt, tags []string) bool {
	for _, t := range tags {
		if !p.HasTag(t) {
			return false
		}
	}
	return true
}

// Sort orders prompts by the given key. Sorting is stable so equal entries
// keep their insertion order. The input slice is sorted in place and
// returned.
func Sort(prompts []models.Prompt, key SortKey) []models.Prompt {
	switch key {
	case SortUpvotes:
		sort.SliceStable(prompts, func(i, j int) bool {
			return prompts[i].Upvotes > prompts[j].Upvotes
		})
	case SortComments:
		sort.SliceStable(prompts, func(i, j int) bool {
			return len(prompts[i].Comments) > len(prompts[j].Comments)
		})
	default:
		sort.SliceStable(prompts, func(i, j int) bool {
			return prompts[i].CreatedAt.After(prompts[j].CreatedAt)
		})
	}
	return prompts
}

// Window bounds the trending computation.
type Window string

const (
	WindowDay   Window = "day"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// ParseWindow maps a raw query value to a Window, defaulting to week.
func ParseWindow(s string) Window {
	switch Window(s) {
	case WindowDay, WindowMonth:
		return Window(s)
	default:
		return WindowWeek
	}
}

func (w Window) cutoff(now time.Time) time.Time {
	switch w {
	case WindowDay:
		return now.AddDate(0, 0, -1)
	case WindowMonth:
		return now.AddDate(0, -1, 0)
	default:
		return now.AddDate(0, 0, -7)
	}
}

// TrendingLimit caps the trending list length.
const TrendingLimit = 20

// trendingScore weighs comments heavier than raw upvotes.
func trendingScore(p *models.Prompt) int {
	return p.Upvotes + len(p.Comments)*5
}

// Trending returns the top prompts created within the window, scored by
// upvotes plus five points per comment, capped at TrendingLimit.
func Trending(prompts []models.Prompt, w Window, now time.Time) []models.Prompt {
	cutoff := w.cutoff(now)
	recent := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if p.CreatedAt.After(cutoff) {
			recent = append(recent, p)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return trendingScore(&recent[i]) > trendingScore(&recent[j])
	})
	if len(recent) > TrendingLimit {
		recent = recent[:TrendingLimit]
	}
	return recent
}

// creatorScore blends followers, total upvotes, and output volume.
func creatorScore(c *models.Creator) float64 {
	return float64(c.Followers) + float64(c.TotalUpvotes)/10 + float64(c.PromptsCount)*20
}

// RankCreators returns the creators sorted by leaderboard score, highest
// first. The input slice is not modified.
func RankCreators(creators []models.Creator) []models.Creator {
	ranked := append([]models.Creator(nil), creators...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return creatorScore(&ranked[i]) > creatorScore(&ranked[j])
	})
	return ranked
}

// AllTags returns the sorted set of distinct tags across all prompts.
func AllTags(prompts []models.Prompt) []string {
	seen := map[string]struct{}{}
	for _, p := range prompts {
		for _, t := range p.Tags {
			seen[t] = struct{}{}
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// SavedBy returns the prompts in the user's saved set, in prompt insertion
// order.
func SavedBy(prompts []models.Prompt, user *models.User) []models.Prompt {
	if user == nil {
		return nil
	}
	saved := make(map[string]struct{}, len(user.SavedPrompts))
	for _, id := range user.SavedPrompts {
		saved[id] = struct{}{}
	}
	out := make([]models.Prompt, 0, len(saved))
	for _, p := range prompts {
		if _, ok := saved[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

// ByAuthor returns the prompts whose author snapshot carries the given user
// id. Note this keys on the snapshot, so prompts written before a rename are
// still attributed by id even though the embedded name is stale.
func ByAuthor(prompts []models.Prompt, authorID string) []models.Prompt {
	out := make([]models.Prompt, 0)
	for _, p := range prompts {
		if p.Author.ID == authorID {
			out = append(out, p)
		}
	}
	return out
}
