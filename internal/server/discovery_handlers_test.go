package server

import (
	"net/http"
	"testing"

	"promptvault/internal/cache"
	"promptvault/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTrending(t *testing.T) {
	t.Run("defaults to the week window", func(t *testing.T) {
		app, _ := newTestApp(t)
		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/trending", nil, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Window  string          `json:"window"`
			Prompts []models.Prompt `json:"prompts"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "week", body.Window)
		// The static dataset's prompts are all from May 2024, far outside
		// any window relative to now.
		assert.Empty(t, body.Prompts)
	})

	t.Run("fresh prompts trend", func(t *testing.T) {
		app, _ := newTestApp(t)
		token := loginUser(t, app, "cyber@architect.io")

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/prompts/", fiber.Map{
			"title":          "Fresh Prompt",
			"prompt_content": "something new",
		}, token))
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/trending?window=day", nil, ""))
		require.NoError(t, err)

		var body struct {
			Window  string          `json:"window"`
			Prompts []models.Prompt `json:"prompts"`
		}
		decodeBody(t, resp, &body)
		assert.Equal(t, "day", body.Window)
		require.Len(t, body.Prompts, 1)
		assert.Equal(t, "Fresh Prompt", body.Prompts[0].Title)
	})
}

func TestGetLeaderboard(t *testing.T) {
	app, _ := newTestApp(t)
	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/leaderboard", nil, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Creators []models.Creator `json:"creators"`
	}
	decodeBody(t, resp, &body)
	require.Len(t, body.Creators, 6)
	assert.Equal(t, "u6", body.Creators[0].ID)
	assert.Equal(t, "u2", body.Creators[5].ID)
}

func TestGetTags(t *testing.T) {
	app, _ := newTestApp(t)
	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/tags", nil, ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Tags []string `json:"tags"`
	}
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Tags, "Sci-Fi")
	assert.Contains(t, body.Tags, "TTRPG")
	assert.Len(t, body.Tags, 17)
}

func TestDiscoveryCacheInvalidation(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	cache.SetClient(rdb)
	defer func() {
		cache.SetClient(nil)
		rdb.Close()
	}()

	app, _ := newTestApp(t)
	token := loginUser(t, app, "cyber@architect.io")

	// Prime the tags cache.
	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/tags", nil, ""))
	require.NoError(t, err)
	resp.Body.Close()
	require.True(t, mr.Exists(cache.TagsKey()))

	// Creating a prompt with a new tag must drop the cached discovery views.
	resp, err = app.Test(jsonRequest(t, http.MethodPost, "/api/prompts/", fiber.Map{
		"title":          "Tagged",
		"prompt_content": "body",
		"tags":           []string{"Brand-New-Tag"},
	}, token))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	assert.False(t, mr.Exists(cache.TagsKey()))

	// The next read recomputes and includes the new tag.
	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/tags", nil, ""))
	require.NoError(t, err)
	var body struct {
		Tags []string `json:"tags"`
	}
	decodeBody(t, resp, &body)
	assert.Contains(t, body.Tags, "Brand-New-Tag")
}
