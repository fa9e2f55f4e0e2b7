package auth

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skm_backend/internals/configs"
	"skm_backend/internals/constants"
	authHelper "skm_backend/internals/helpers/auth"
	"skm_backend/internals/middlewares"
)

type fakeResolver map[uint]*authHelper.Identity

func (f fakeResolver) ResolveIdentity(_ context.Context, id uint) (*authHelper.Identity, error) {
	if u, ok := f[id]; ok {
		return u, nil
	}
	return nil, errors.New("not found")
}

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	configs.JWTSecret = "test-secret"

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	app.Use(ResolveIdentity(fakeResolver{
		1: {ID: 1, Email: "user@x.com", Role: constants.RoleUser},
		2: {ID: 2, Email: "admin@x.com", Role: constants.RoleAdmin},
		3: {ID: 3, Email: "root@x.com", Role: constants.RoleSuperAdmin},
	}))

	ok := func(c *fiber.Ctx) error {
		id := CurrentIdentity(c)
		if id == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(id.Email)
	}
	app.Get("/public", ok)
	app.Get("/me", RequireAuth(), ok)
	app.Get("/admin", OnlyAdmin(), ok)
	app.Get("/root", OnlySuperAdmin(), ok)
	return app
}

func tokenFor(t *testing.T, id uint) string {
	t.Helper()
	tok, err := authHelper.GenerateToken(authHelper.Identity{ID: id}, "test-secret", time.Hour)
	require.NoError(t, err)
	return tok
}

func call(t *testing.T, app *fiber.App, path, token string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestInvalidTokenLeavesRequestAnonymous(t *testing.T) {
	app := newApp(t)

	status, body := call(t, app, "/public", "not-a-jwt")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "anonymous", body)

	status, body = call(t, app, "/public", tokenFor(t, 99))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "anonymous", body)
}

func TestGuards(t *testing.T) {
	app := newApp(t)

	cases := []struct {
		path   string
		token  string
		status int
	}{
		{"/me", "", http.StatusUnauthorized},
		{"/me", "garbage", http.StatusUnauthorized},
		{"/me", tokenFor(t, 99), http.StatusUnauthorized},
		{"/me", tokenFor(t, 1), http.StatusOK},
		{"/admin", "", http.StatusUnauthorized},
		{"/admin", tokenFor(t, 1), http.StatusForbidden},
		{"/admin", tokenFor(t, 2), http.StatusOK},
		{"/admin", tokenFor(t, 3), http.StatusOK},
		{"/root", tokenFor(t, 2), http.StatusForbidden},
		{"/root", tokenFor(t, 3), http.StatusOK},
	}
	for _, tc := range cases {
		status, body := call(t, app, tc.path, tc.token)
		assert.Equal(t, tc.status, status, "%s %q: %s", tc.path, tc.token, body)
	}
}

func TestGuardErrorEnvelope(t *testing.T) {
	app := newApp(t)

	_, body := call(t, app, "/admin", "")
	assert.JSONEq(t, `{"errors":"Unauthorized"}`, body)

	_, body = call(t, app, "/admin", tokenFor(t, 1))
	assert.JSONEq(t, `{"errors":"Forbidden"}`, body)
}
