package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/propertyfinder/listings-service/internal/config"
	"github.com/propertyfinder/listings-service/internal/dtos"
	"github.com/propertyfinder/listings-service/internal/models"
	"github.com/propertyfinder/listings-service/internal/repositories"
	"github.com/propertyfinder/listings-service/internal/utils"
)

func newAuthFixture(t *testing.T) (*AuthService, repositories.UserRepository) {
	t.Helper()
	cfg := &config.Config{JWTSecret: []byte("test-secret")}
	userRepo := repositories.NewUserRepository()
	return NewAuthService(cfg, userRepo), userRepo
}

func TestLoginIssuesTokenWithRoleClaim(t *testing.T) {
	svc, userRepo := newAuthFixture(t)
	ctx := context.Background()

	_, err := userRepo.Create(ctx, &models.User{Name: "John Smith", Email: "john@example.com", Role: models.RoleBroker})
	require.NoError(t, err)

	// Any password works: identity is mock, the token carries the role.
	resp, err := svc.Login(ctx, dtos.LoginRequest{Email: "john@example.com", Password: "whatever"})
	require.NoError(t, err)
	require.Equal(t, "broker", resp.User.Role)

	tok, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims := tok.Claims.(jwt.MapClaims)
	require.Equal(t, "1", claims["sub"])
	require.Equal(t, "broker", claims["role"])
	require.NotEmpty(t, claims["jti"])
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), dtos.LoginRequest{Email: "nobody@example.com", Password: "x"})
	require.True(t, errors.Is(err, utils.ErrInvalidCredentials))
}

func TestSignupDefaultsToUserRole(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, dtos.SignupRequest{Name: "Emily Davis", Email: "emily@example.com", Password: "secret1"})
	require.NoError(t, err)
	require.Equal(t, "user", resp.User.Role)

	// Admin cannot be self-registered even when requested.
	resp, err = svc.Signup(ctx, dtos.SignupRequest{Name: "Sneaky", Email: "sneaky@example.com", Password: "secret1", Role: "admin"})
	require.NoError(t, err)
	require.Equal(t, "user", resp.User.Role)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, dtos.SignupRequest{Name: "Emily Davis", Email: "emily@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, dtos.SignupRequest{Name: "Twin", Email: "emily@example.com", Password: "secret1"})
	require.True(t, errors.Is(err, utils.ErrEmailExists))
}

func TestUpdateProfileLanguage(t *testing.T) {
	svc, userRepo := newAuthFixture(t)
	ctx := context.Background()

	created, err := userRepo.Create(ctx, &models.User{Name: "John Smith", Email: "john@example.com", Language: "en"})
	require.NoError(t, err)

	lang := "ar"
	updated, err := svc.UpdateProfile(ctx, created.ID, dtos.UpdateProfileRequest{Language: &lang})
	require.NoError(t, err)
	require.Equal(t, "ar", updated.Language)

	bad := "xx"
	_, err = svc.UpdateProfile(ctx, created.ID, dtos.UpdateProfileRequest{Language: &bad})
	require.True(t, errors.Is(err, utils.ErrUnsupportedLanguage))
}
