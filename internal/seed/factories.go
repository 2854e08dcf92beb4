package seed

import (
	"fmt"
	"math/rand"
	"time"

	"promptvault/internal/models"

	"github.com/brianvoe/gofakeit/v6"
)

// Options controls demo dataset generation.
type Options struct {
	Users   int
	Prompts int
	// MaxDays is how far back prompt timestamps are spread. Defaults to 90.
	MaxDays int
	// Seed makes generation deterministic when non-zero.
	Seed int64
}

var promptTopics = []string{
	"Sci-Fi", "Fantasy", "Art", "Gaming", "Cyberpunk", "Pixel Art",
	"Character Design", "Interior Design", "Logo Design", "Branding",
	"Photography", "Writing", "Marketing", "Code Review", "Worldbuilding",
}

// Generate builds a synthetic dataset for demos and load experiments. The
// result satisfies the same invariants as the static preset: unique ids and
// emails, each user's prompt list matching the prompts it authored, upvote
// counters consistent with the vote sets, and a creators projection built
// once from the generated data (and then left independent, like the static
// one).
func Generate(opts Options) models.Dataset {
	if opts.Users <= 0 {
		opts.Users = 12
	}
	if opts.Prompts <= 0 {
		opts.Prompts = 40
	}
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}

	faker := gofakeit.New(opts.Seed)
	r := rand.New(rand.NewSource(opts.Seed))
	if opts.Seed == 0 {
		faker = gofakeit.New(time.Now().UnixNano())
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	hash := passwordHash()
	now := time.Now().UTC()

	ds := models.Dataset{}
	for i := 0; i < opts.Users; i++ {
		id := fmt.Sprintf("u%d", i+1)
		ds.Users = append(ds.Users, models.User{
			ID:             id,
			Name:           faker.Username(),
			Email:          fmt.Sprintf("%s-%d@%s", faker.Word(), i+1, faker.DomainName()),
			Password:       hash,
			AvatarURL:      fmt.Sprintf("https://picsum.photos/seed/%s/80/80", id),
			Followers:      r.Intn(20000),
			Following:      r.Intn(500),
			Prompts:        []string{},
			SavedPrompts:   []string{},
			UpvotedPrompts: []string{},
		})
	}

	for i := 0; i < opts.Prompts; i++ {
		id := fmt.Sprintf("p%d", i+1)
		owner := r.Intn(len(ds.Users))
		author := ds.Users[owner].Snapshot()

		tags := pickTags(r, 2+r.Intn(3))
		createdAt := now.Add(-time.Duration(r.Intn(opts.MaxDays*24*60)) * time.Minute)

		prompt := models.Prompt{
			ID:            id,
			Title:         faker.Sentence(4),
			Description:   faker.Sentence(12),
			PromptContent: faker.Paragraph(1, 3, 12, " "),
			Tags:          tags,
			Author:        author,
			Comments:      []models.Comment{},
			CreatedAt:     createdAt,
		}

		// Sprinkle comments from other users, oldest first.
		for c := 0; c < r.Intn(4); c++ {
			commenter := ds.Users[r.Intn(len(ds.Users))]
			prompt.Comments = append(prompt.Comments, models.Comment{
				ID:        fmt.Sprintf("c%d", createdAt.UnixMilli()+int64(i*100+c)),
				Text:      faker.Sentence(8),
				Author:    commenter.Snapshot(),
				CreatedAt: createdAt.Add(time.Duration(c+1) * time.Hour),
			})
		}

		ds.Prompts = append(ds.Prompts, prompt)
		ds.Users[owner].Prompts = append(ds.Users[owner].Prompts, id)
	}

	// Upvotes come from actual vote-set membership so the counters start
	// consistent with the users collection.
	for pi := range ds.Prompts {
		for ui := range ds.Users {
			if r.Float32() < 0.25 {
				ds.Users[ui].UpvotedPrompts = append(ds.Users[ui].UpvotedPrompts, ds.Prompts[pi].ID)
				ds.Prompts[pi].Upvotes++
			}
			if r.Float32() < 0.15 {
				ds.Users[ui].SavedPrompts = append(ds.Users[ui].SavedPrompts, ds.Prompts[pi].ID)
			}
		}
	}

	for _, u := range ds.Users {
		total := 0
		for _, pid := range u.Prompts {
			for _, p := range ds.Prompts {
				if p.ID == pid {
					total += p.Upvotes
				}
			}
		}
		ds.Creators = append(ds.Creators, models.Creator{
			ID:           u.ID,
			Name:         u.Name,
			AvatarURL:    u.AvatarURL,
			Followers:    u.Followers,
			Following:    u.Following,
			PromptsCount: len(u.Prompts),
			TotalUpvotes: total,
		})
	}

	return ds
}

func pickTags(r *rand.Rand, n int) []string {
	perm := r.Perm(len(promptTopics))
	if n > len(perm) {
		n = len(perm)
	}
	tags := make([]string, 0, n)
	for _, i := range perm[:n] {
		tags = append(tags, promptTopics[i])
	}
	return tags
}
