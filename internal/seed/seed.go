// Package seed provides the datasets the store is initialized from: the
// static preset the application ships with, generated demo datasets, and
// YAML fixtures for development. Seed data is input only; mutations are
// never written back.
package seed

import (
	"sync"
	"time"

	"promptvault/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// StaticPassword is the password every static seed account accepts.
const StaticPassword = "password123"

var (
	hashOnce   sync.Once
	staticHash string
)

// passwordHash lazily hashes the shared seed password. All static accounts
// use the same credential, so one hash is enough.
func passwordHash() string {
	hashOnce.Do(func() {
		h, err := bcrypt.GenerateFromPassword([]byte(StaticPassword), bcrypt.DefaultCost)
		if err != nil {
			panic(err) // bcrypt only fails on invalid cost
		}
		staticHash = string(h)
	})
	return staticHash
}

func ts(value string) time.Time {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		panic(err)
	}
	return t
}

// Static returns the built-in dataset: six users, five prompts, and the
// creators leaderboard projection. Each call returns a fresh copy.
func Static() models.Dataset {
	hash := passwordHash()
	ds := models.Dataset{
		Users: []models.User{
			{
				ID: "u1", Name: "Cyber Architect", Email: "cyber@architect.io", Password: hash,
				AvatarURL: "https://picsum.photos/seed/u1/80/80",
				Followers: 1250, Following: 89,
				Prompts:        []string{"p1"},
				SavedPrompts:   []string{"p2"},
				UpvotedPrompts: []string{"p1", "p2"},
			},
			{
				ID: "u2", Name: "Lore Weaver", Email: "lore@weaver.com", Password: hash,
				AvatarURL: "https://picsum.photos/seed/u2/80/80",
				Followers: 980, Following: 123,
				Prompts:        []string{"p2"},
				SavedPrompts:   []string{},
				UpvotedPrompts: []string{"p3"},
			},
			{
				ID: "u3", Name: "8BitDreamer", Email: "8bit@dreamer.dev", Password: hash,
				AvatarURL: "https://picsum.photos/seed/u3/80/80",
				Followers: 2100, Following: 245,
				Prompts:        []string{"p3", "p4"},
				SavedPrompts:   []string{"p1"},
				UpvotedPrompts: []string{"p1", "p3", "p4"},
			},
			{
				ID: "u4", Name: "Visionary Vortex", Email: "visionary@vortex.ai", Password: hash,
				AvatarURL: "https://picsum.photos/seed/c1/80/80",
				Followers: 12400, Following: 150,
				Prompts:        []string{"p5"},
				SavedPrompts:   []string{},
				UpvotedPrompts: []string{},
			},
			{
				ID: "u5", Name: "Prompt Prodigy", Email: "prompt@prodigy.org", Password: hash,
				AvatarURL: "https://picsum.photos/seed/c2/80/80",
				Followers: 9800, Following: 204,
				Prompts:        []string{},
				SavedPrompts:   []string{},
				UpvotedPrompts: []string{},
			},
			{
				ID: "u6", Name: "AI Artisan", Email: "ai@artisan.net", Password: hash,
				AvatarURL: "https://picsum.photos/seed/c3/80/80",
				Followers: 15200, Following: 88,
				Prompts:        []string{},
				SavedPrompts:   []string{},
				UpvotedPrompts: []string{},
			},
		},
		Prompts: []models.Prompt{
			{
				ID:            "p1",
				Title:         "Futuristic Cityscape Generator",
				Description:   "Create breathtaking, high-detail futuristic cityscapes. Optimized for sprawling urban environments with flying vehicles and a cyberpunk aesthetic.",
				PromptContent: "Generate a sprawling futuristic cityscape at dusk, multiple layers of traffic, holographic advertisements, towering skyscrapers with unique architectural designs, style: cyberpunk, neon-lit, hyper-detailed, cinematic lighting, 8k.",
				Tags:          []string{"Sci-Fi", "Art", "Gaming", "Cyberpunk", "Cityscape"},
				Author:        models.Author{ID: "u1", Name: "Cyber Architect", AvatarURL: "https://picsum.photos/seed/u1/40/40"},
				Upvotes:       1250,
				CreatedAt:     ts("2024-05-20T10:00:00Z"),
				Comments: []models.Comment{
					{
						ID:        "c1",
						Text:      "This is amazing! The results are stunning.",
						Author:    models.Author{ID: "u2", Name: "Lore Weaver", AvatarURL: "https://picsum.photos/seed/u2/40/40"},
						CreatedAt: ts("2024-05-20T11:30:00Z"),
					},
				},
			},
			{
				ID:            "p2",
				Title:         "Fantasy Character Portraits",
				Description:   "Generate unique and expressive fantasy character portraits for your D&D or fantasy novel characters.",
				PromptContent: "Create a portrait of a female elf ranger, determined expression, leather armor with intricate elven carvings, long silver hair braided with leaves, background: misty forest at dawn, style: fantasy realism, detailed face, LOTR-inspired.",
				Tags:          []string{"Fantasy", "Character Design", "TTRPG"},
				Author:        models.Author{ID: "u2", Name: "Lore Weaver", AvatarURL: "https://picsum.photos/seed/u2/40/40"},
				Upvotes:       980,
				CreatedAt:     ts("2024-05-19T14:20:00Z"),
				Comments:      []models.Comment{},
			},
			{
				ID:            "p3",
				Title:         "Pixel Art Sprite Sheet Creator",
				Description:   "A prompt for creating retro-style pixel art sprite sheets. Ideal for indie game developers.",
				PromptContent: "Generate a 16-bit pixel art sprite sheet for a knight character. Include idle (4 frames), walk cycle (6 frames), and attack (4 frames) animations. Character should have silver armor and a blue cape. Background must be transparent.",
				Tags:          []string{"Pixel Art", "Game Dev", "Retro"},
				Author:        models.Author{ID: "u3", Name: "8BitDreamer", AvatarURL: "https://picsum.photos/seed/u3/40/40"},
				Upvotes:       2100,
				CreatedAt:     ts("2024-05-21T09:00:00Z"),
				Comments:      []models.Comment{},
			},
			{
				ID:            "p4",
				Title:         "Cozy Interior Design Ideas",
				Description:   "Generate beautiful and cozy interior design concepts for living rooms, bedrooms, or studies.",
				PromptContent: "Interior design concept for a cozy living room, Scandinavian style. Features: fireplace, comfortable sofa with knit blankets, large window with natural light, lots of houseplants, warm wood tones, and a soft rug. Style: photorealistic, warm and inviting, Architectural Digest.",
				Tags:          []string{"Interior Design", "Lifestyle", "Cozy"},
				Author:        models.Author{ID: "u3", Name: "8BitDreamer", AvatarURL: "https://picsum.photos/seed/u3/40/40"},
				Upvotes:       1800,
				CreatedAt:     ts("2024-05-18T18:00:00Z"),
				Comments:      []models.Comment{},
			},
			{
				ID:            "p5",
				Title:         "Abstract Logo Concepts",
				Description:   "Create modern, minimalist, and abstract logo concepts for tech startups.",
				PromptContent: "Generate a collection of 9 abstract, minimalist logos for a tech company named \"Quantum Leap\". Use geometric shapes, clean lines, and a color palette of deep blue and silver. Style: vector, modern, professional, Behance-worthy.",
				Tags:          []string{"Logo Design", "Branding", "Minimalist"},
				Author:        models.Author{ID: "u4", Name: "Visionary Vortex", AvatarURL: "https://picsum.photos/seed/c1/40/40"},
				Upvotes:       3200,
				CreatedAt:     ts("2024-05-22T11:00:00Z"),
				Comments:      []models.Comment{},
			},
		},
		Creators: []models.Creator{
			{ID: "u4", Name: "Visionary Vortex", AvatarURL: "https://picsum.photos/seed/c1/80/80", Followers: 12400, Following: 150, PromptsCount: 25, TotalUpvotes: 85000},
			{ID: "u6", Name: "AI Artisan", AvatarURL: "https://picsum.photos/seed/c3/80/80", Followers: 15200, Following: 88, PromptsCount: 40, TotalUpvotes: 120000},
			{ID: "u5", Name: "Prompt Prodigy", AvatarURL: "https://picsum.photos/seed/c2/80/80", Followers: 9800, Following: 204, PromptsCount: 18, TotalUpvotes: 65000},
			{ID: "u1", Name: "Cyber Architect", AvatarURL: "https://picsum.photos/seed/u1/80/80", Followers: 1250, Following: 89, PromptsCount: 12, TotalUpvotes: 15000},
			{ID: "u3", Name: "8BitDreamer", AvatarURL: "https://picsum.photos/seed/u3/80/80", Followers: 2100, Following: 245, PromptsCount: 30, TotalUpvotes: 45000},
			{ID: "u2", Name: "Lore Weaver", AvatarURL: "https://picsum.photos/seed/u2/80/80", Followers: 980, Following: 123, PromptsCount: 8, TotalUpvotes: 9000},
		},
	}
	return ds
}
