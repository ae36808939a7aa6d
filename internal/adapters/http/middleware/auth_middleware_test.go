package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"main-gestdoc/internal/config"
	"main-gestdoc/internal/core/domain"
	"main-gestdoc/internal/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func middlewareTestConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test_secret",
			RefreshSecret:    "test_refresh_secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

func newGuardedApp(cfg *config.Config) *fiber.App {
	app := fiber.New()
	protected := app.Group("", AuthMiddleware(cfg))
	protected.Get("/budgets", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	admin := protected.Group("/admin", AdminOnly())
	admin.Get("/users", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	clients := protected.Group("/clients", AdminOrManager())
	clients.Get("/", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func tokenFor(t *testing.T, cfg *config.Config, role domain.Role) string {
	t.Helper()
	token, err := jwt.GenerateAccessToken(1, "user@mainingenieros.cl", "Usuario Prueba", role, cfg.JWT.Secret, cfg.JWT.AccessTokenMins)
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthMiddlewareRequiresToken(t *testing.T) {
	cfg := middlewareTestConfig()
	app := newGuardedApp(cfg)

	resp := doRequest(t, app, "/budgets", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp = doRequest(t, app, "/budgets", "not-a-token")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthMiddlewareAcceptsCookieToken(t *testing.T) {
	cfg := middlewareTestConfig()
	app := newGuardedApp(cfg)

	req := httptest.NewRequest(http.MethodGet, "/budgets", nil)
	req.AddCookie(&http.Cookie{Name: "access_token", Value: tokenFor(t, cfg, domain.RoleOperator)})
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRoleGating(t *testing.T) {
	cfg := middlewareTestConfig()
	app := newGuardedApp(cfg)

	adminToken := tokenFor(t, cfg, domain.RoleAdmin)
	managerToken := tokenFor(t, cfg, domain.RoleManager)
	operatorToken := tokenFor(t, cfg, domain.RoleOperator)

	// Document routes are open to any authenticated role
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "/budgets", operatorToken).StatusCode)

	// Admin section rejects everyone but administrators
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "/admin/users", adminToken).StatusCode)
	assert.Equal(t, fiber.StatusForbidden, doRequest(t, app, "/admin/users", managerToken).StatusCode)
	assert.Equal(t, fiber.StatusForbidden, doRequest(t, app, "/admin/users", operatorToken).StatusCode)

	// Clients allow administrators and managers only
	assert.Equal(t, fiber.StatusOK, doRequest(t, app, "/clients/", managerToken).StatusCode)
	assert.Equal(t, fiber.StatusForbidden, doRequest(t, app, "/clients/", operatorToken).StatusCode)
}

func TestTokenFromWrongSecretIsRejected(t *testing.T) {
	cfg := middlewareTestConfig()
	app := newGuardedApp(cfg)

	other := middlewareTestConfig()
	other.JWT.Secret = "another_secret"

	resp := doRequest(t, app, "/budgets", tokenFor(t, other, domain.RoleAdmin))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
