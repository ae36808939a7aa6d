package services

import (
	"context"
	"testing"
	"time"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/config"
	"main-gestdoc/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT: config.JWTConfig{
			Secret:           "test-secret",
			RefreshSecret:    "test-refresh-secret",
			AccessTokenMins:  15,
			RefreshTokenDays: 7,
		},
	}
}

func newAuthTestService(t *testing.T) (*AuthService, *fakeUserRepo, *fakeRefreshTokenRepo) {
	t.Helper()
	userRepo := newFakeUserRepo()
	tokenRepo := newFakeRefreshTokenRepo()

	hashed, err := password.Hash("contraseña123")
	require.NoError(t, err)

	require.NoError(t, userRepo.Create(context.Background(), &models.User{
		ID:        1,
		Nombre:    "Jaime Valtierra",
		Correo:    "jvaltierra@mainingenieros.cl",
		Password:  hashed,
		ProfileID: 1,
		Profile:   &models.Profile{ID: 1, Nombre: "Administrador"},
	}))

	return NewAuthService(userRepo, tokenRepo, testConfig()), userRepo, tokenRepo
}

func TestLoginSuccess(t *testing.T) {
	svc, _, _ := newAuthTestService(t)

	result, err := svc.Login(context.Background(), &LoginInput{
		Correo:   "jvaltierra@mainingenieros.cl",
		Password: "contraseña123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, "Jaime Valtierra", result.User.Nombre)
}

func TestLoginFailureIsIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthTestService(t)
	ctx := context.Background()

	// Unknown email and wrong password produce the same sentinel
	_, unknownErr := svc.Login(ctx, &LoginInput{
		Correo:   "nadie@mainingenieros.cl",
		Password: "contraseña123",
	})
	_, wrongPassErr := svc.Login(ctx, &LoginInput{
		Correo:   "jvaltierra@mainingenieros.cl",
		Password: "incorrecta",
	})

	assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongPassErr.Error())
}

func TestRefreshTokenRotation(t *testing.T) {
	svc, _, tokenRepo := newAuthTestService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, &LoginInput{
		Correo:   "jvaltierra@mainingenieros.cl",
		Password: "contraseña123",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)

	// The old token was rotated out and cannot be reused
	_, err = svc.RefreshToken(ctx, login.RefreshToken)
	assert.Error(t, err)

	// Two live tokens were stored in total, one revoked
	assert.Len(t, tokenRepo.tokens, 2)
}

func TestRefreshSweepsExpiredTokens(t *testing.T) {
	svc, _, tokenRepo := newAuthTestService(t)
	ctx := context.Background()

	stale := time.Now().AddDate(0, 0, -1)
	require.NoError(t, tokenRepo.Create(ctx, &models.RefreshToken{
		UserID:    1,
		TokenHash: "stale-hash",
		ExpiresAt: stale,
	}))

	login, err := svc.Login(ctx, &LoginInput{
		Correo:   "jvaltierra@mainingenieros.cl",
		Password: "contraseña123",
	})
	require.NoError(t, err)

	_, err = svc.RefreshToken(ctx, login.RefreshToken)
	require.NoError(t, err)

	// Rotation swept the expired row
	assert.GreaterOrEqual(t, tokenRepo.deleteExpiredCalls, 1)
	_, staleKept := tokenRepo.tokens["stale-hash"]
	assert.False(t, staleKept)
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, _ := newAuthTestService(t)
	ctx := context.Background()

	login, err := svc.Login(ctx, &LoginInput{
		Correo:   "jvaltierra@mainingenieros.cl",
		Password: "contraseña123",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	_, err = svc.RefreshToken(ctx, login.RefreshToken)
	assert.Error(t, err)
}
