package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/storefront/backend/internal/infrastructure/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-at-least-32-characters!!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "storefront-test",
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := newTestJWTService()
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(GenerateTokenInput{
		UserID:   userID,
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		IsAdmin:  true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, "Bearer", pair.TokenType)

	claims, err := service.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)

	parsed, err := claims.GetUserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsed)
}

func TestJWTService_TokenTypeMismatch(t *testing.T) {
	service := newTestJWTService()

	pair, err := service.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Email: "a@b.com"})
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)

	_, err = service.ValidateRefreshToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	service := newTestJWTService()
	other := NewJWTService(config.JWTConfig{
		Secret:                 "another-secret-with-enough-length!!!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "storefront-test",
	})

	pair, err := other.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Email: "a@b.com"})
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	service := NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-at-least-32-characters!!",
		AccessTokenExpiration:  -time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "storefront-test",
	})

	pair, err := service.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Email: "a@b.com"})
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTService_RefreshTokenOmitsAdminFlag(t *testing.T) {
	service := newTestJWTService()

	pair, err := service.GenerateTokenPair(GenerateTokenInput{UserID: uuid.New(), Email: "a@b.com", IsAdmin: true})
	require.NoError(t, err)

	claims, err := service.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.False(t, claims.IsAdmin)
	assert.Empty(t, claims.Email)
}
