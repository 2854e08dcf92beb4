package server

import (
	"net/http"
	"testing"

	"promptvault/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionBody struct {
	User      *models.User `json:"user"`
	Page      string       `json:"page"`
	PageParam string       `json:"page_param"`
}

func TestGetSession(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginUser(t, app, "cyber@architect.io")

	resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/session/", nil, token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body sessionBody
	decodeBody(t, resp, &body)
	require.NotNil(t, body.User)
	assert.Equal(t, "u1", body.User.ID)
	assert.Equal(t, string(models.DefaultPage), body.Page)
	assert.Empty(t, body.PageParam)
}

func TestNavigate(t *testing.T) {
	t.Run("sets page and param", func(t *testing.T) {
		app, s := newTestApp(t)
		token := loginUser(t, app, "cyber@architect.io")

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/session/navigate",
			fiber.Map{"page": "promptDetail", "param": "p3"}, token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		resp.Body.Close()

		page, param := s.store.Session()
		assert.Equal(t, models.PagePromptDetail, page)
		assert.Equal(t, "p3", param)
	})

	t.Run("navigating again replaces the param", func(t *testing.T) {
		app, s := newTestApp(t)
		token := loginUser(t, app, "cyber@architect.io")

		for _, req := range []fiber.Map{
			{"page": "promptDetail", "param": "p3"},
			{"page": "explore"},
		} {
			resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/session/navigate", req, token))
			require.NoError(t, err)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			resp.Body.Close()
		}

		page, param := s.store.Session()
		assert.Equal(t, models.PageExplore, page)
		assert.Empty(t, param)
	})

	t.Run("unknown page is 400", func(t *testing.T) {
		app, s := newTestApp(t)
		token := loginUser(t, app, "cyber@architect.io")

		resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/session/navigate",
			fiber.Map{"page": "settings"}, token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()

		page, _ := s.store.Session()
		assert.Equal(t, models.DefaultPage, page)
	})
}

func TestClearPageParam(t *testing.T) {
	app, s := newTestApp(t)
	token := loginUser(t, app, "cyber@architect.io")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/session/navigate",
		fiber.Map{"page": "create", "param": "remix-p2"}, token))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = app.Test(jsonRequest(t, http.MethodDelete, "/api/session/param", nil, token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	page, param := s.store.Session()
	assert.Equal(t, models.PageCreate, page)
	assert.Empty(t, param)
}
