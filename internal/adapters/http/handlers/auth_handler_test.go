package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/adapters/persistence/repositories"
	"main-gestdoc/internal/config"
	"main-gestdoc/internal/core/domain"
	"main-gestdoc/internal/core/services"
	"main-gestdoc/internal/pkg/password"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type loginUserRepo struct {
	users map[string]*models.User
}

var _ repositories.UserRepository = (*loginUserRepo)(nil)

func (r *loginUserRepo) Create(_ context.Context, user *models.User) error {
	r.users[user.Correo] = user
	return nil
}

func (r *loginUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *loginUserRepo) GetByCorreo(_ context.Context, correo string) (*models.User, error) {
	user, ok := r.users[correo]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (r *loginUserRepo) Update(_ context.Context, user *models.User) error {
	r.users[user.Correo] = user
	return nil
}

func (r *loginUserRepo) List(_ context.Context) ([]*models.User, error) {
	return nil, nil
}

func (r *loginUserRepo) ExistsByCorreo(_ context.Context, correo string) (bool, error) {
	_, ok := r.users[correo]
	return ok, nil
}

func (r *loginUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type loginTokenRepo struct {
	tokens []*models.RefreshToken
}

var _ repositories.RefreshTokenRepository = (*loginTokenRepo)(nil)

func (r *loginTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	token.ID = uint(len(r.tokens) + 1)
	r.tokens = append(r.tokens, token)
	return nil
}

func (r *loginTokenRepo) GetByTokenHash(_ context.Context, hash string) (*models.RefreshToken, error) {
	for _, token := range r.tokens {
		if token.TokenHash == hash && token.RevokedAt == nil {
			return token, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *loginTokenRepo) Revoke(_ context.Context, id uint) error {
	now := time.Now()
	for _, token := range r.tokens {
		if token.ID == id {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (r *loginTokenRepo) RevokeByTokenHash(_ context.Context, _ string) error { return nil }
func (r *loginTokenRepo) RevokeAllByUserID(_ context.Context, _ uint) error  { return nil }
func (r *loginTokenRepo) DeleteExpired(_ context.Context) error              { return nil }

func newLoginTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		JWT: config.JWTConfig{
			Secret:           "test_secret",
			RefreshSecret:    "test_refresh_secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}

	hashed, err := password.Hash("contraseña123")
	require.NoError(t, err)

	userRepo := &loginUserRepo{users: map[string]*models.User{
		"jvaltierra@mainingenieros.cl": {
			ID:        1,
			Nombre:    "Jaime Valtierra",
			Correo:    "jvaltierra@mainingenieros.cl",
			Password:  hashed,
			ProfileID: 1,
			Profile:   &models.Profile{ID: 1, Nombre: domain.RoleLabelAdmin},
		},
	}}

	authService := services.NewAuthService(userRepo, &loginTokenRepo{}, cfg)
	handler := NewAuthHandler(authService, cfg)

	app := fiber.New()
	app.Post("/login", handler.Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestLoginSucceedsWithValidCredentials(t *testing.T) {
	app := newLoginTestApp(t)

	resp := postLogin(t, app, `{"correo":"jvaltierra@mainingenieros.cl","password":"contraseña123"}`)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestLoginMalformedCorreoIsBadRequestNotServerError(t *testing.T) {
	app := newLoginTestApp(t)

	resp := postLogin(t, app, `{"correo":"no-es-un-correo","password":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginUnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	app := newLoginTestApp(t)

	unknown := postLogin(t, app, `{"correo":"nadie@mainingenieros.cl","password":"x"}`)
	wrong := postLogin(t, app, `{"correo":"jvaltierra@mainingenieros.cl","password":"incorrecta"}`)

	assert.Equal(t, fiber.StatusUnauthorized, unknown.StatusCode)
	assert.Equal(t, fiber.StatusUnauthorized, wrong.StatusCode)

	var unknownBody, wrongBody map[string]any
	require.NoError(t, json.NewDecoder(unknown.Body).Decode(&unknownBody))
	require.NoError(t, json.NewDecoder(wrong.Body).Decode(&wrongBody))
	assert.Equal(t, unknownBody["error"], wrongBody["error"])
	assert.Equal(t, "Correo o contraseña incorrectos", wrongBody["error"])
}
