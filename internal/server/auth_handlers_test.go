package server

import (
	"net/http"
	"testing"

	"promptvault/internal/models"
	"promptvault/internal/seed"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	t.Run("valid credentials return a token and the user", func(t *testing.T) {
		app, _ := newTestApp(t)

		req := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
			"email":    "cyber@architect.io",
			"password": seed.StaticPassword,
		}, "")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		}
		decodeBody(t, resp, &body)
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, "u1", body.User.ID)
		assert.Equal(t, "cyber@architect.io", body.User.Email)
	})

	t.Run("wrong password is 401", func(t *testing.T) {
		app, _ := newTestApp(t)

		req := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
			"email":    "cyber@architect.io",
			"password": "nope",
		}, "")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		app, _ := newTestApp(t)

		req := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{"email": "x@y.z"}, "")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("password never appears in the response", func(t *testing.T) {
		app, _ := newTestApp(t)

		req := jsonRequest(t, http.MethodPost, "/api/auth/login", fiber.Map{
			"email":    "cyber@architect.io",
			"password": seed.StaticPassword,
		}, "")
		resp, err := app.Test(req)
		require.NoError(t, err)

		var raw map[string]any
		decodeBody(t, resp, &raw)
		user, ok := raw["user"].(map[string]any)
		require.True(t, ok)
		_, leaked := user["password"]
		assert.False(t, leaked)
	})
}

func TestSignupHandler(t *testing.T) {
	t.Run("creates the account and logs it in", func(t *testing.T) {
		app, s := newTestApp(t)

		req := jsonRequest(t, http.MethodPost, "/api/auth/signup", fiber.Map{
			"name":  "New Person",
			"email": "new@person.dev",
		}, "")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body struct {
			Token string      `json:"token"`
			User  models.User `json:"user"`
		}
		decodeBody(t, resp, &body)
		assert.NotEmpty(t, body.Token)
		assert.Equal(t, "u7", body.User.ID)

		current := s.store.CurrentUser()
		require.NotNil(t, current)
		assert.Equal(t, "u7", current.ID)
	})

	t.Run("duplicate email is 409", func(t *testing.T) {
		app, _ := newTestApp(t)

		req := jsonRequest(t, http.MethodPost, "/api/auth/signup", fiber.Map{
			"name":  "Imposter",
			"email": "cyber@architect.io",
		}, "")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("missing name is 400", func(t *testing.T) {
		app, _ := newTestApp(t)

		req := jsonRequest(t, http.MethodPost, "/api/auth/signup", fiber.Map{"email": "x@y.z"}, "")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		resp.Body.Close()
	})
}

func TestLogoutRevokesAccess(t *testing.T) {
	app, _ := newTestApp(t)
	token := loginUser(t, app, "cyber@architect.io")

	resp, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/logout", nil, token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// The token itself is still well-formed, but the session is gone.
	resp, err = app.Test(jsonRequest(t, http.MethodGet, "/api/users/me", nil, token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestAuthRequired(t *testing.T) {
	t.Run("rejects missing token", func(t *testing.T) {
		app, _ := newTestApp(t)
		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/users/me", nil, ""))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("rejects garbage token", func(t *testing.T) {
		app, _ := newTestApp(t)
		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/users/me", nil, "not-a-jwt"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()
	})

	t.Run("rejects a token whose subject is not the live session", func(t *testing.T) {
		app, s := newTestApp(t)
		u1Token := loginUser(t, app, "cyber@architect.io")

		// u2 logging in replaces the session; u1's token no longer matches.
		loginUser(t, app, "lore@weaver.com")

		resp, err := app.Test(jsonRequest(t, http.MethodGet, "/api/users/me", nil, u1Token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		resp.Body.Close()

		require.Equal(t, "u2", s.store.CurrentUser().ID)
	})
}
