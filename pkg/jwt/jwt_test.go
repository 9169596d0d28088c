package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	token, err := service.GenerateAccessToken(userID, "admin@atlasrides.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "admin@atlasrides.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, AccessToken, claims.TokenType)
	assert.Equal(t, "atlasrides-backend", claims.Issuer)
}

func TestGenerateAndValidateRefreshToken(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	token, err := service.GenerateRefreshToken(userID, "admin@atlasrides.com")
	require.NoError(t, err)

	claims, err := service.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, RefreshToken, claims.TokenType)
}

func TestTokenTypeMismatch(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	accessToken, err := service.GenerateAccessToken(userID, "admin@atlasrides.com", "admin")
	require.NoError(t, err)

	refreshToken, err := service.GenerateRefreshToken(userID, "admin@atlasrides.com")
	require.NoError(t, err)

	// An access token must not pass as a refresh token or vice versa
	_, err = service.ValidateRefreshToken(accessToken)
	assert.Error(t, err)

	_, err = service.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	service := newTestService()
	other := NewService("different-secret", "different-refresh", time.Hour, time.Hour)

	token, err := service.GenerateAccessToken(uuid.New(), "admin@atlasrides.com", "admin")
	require.NoError(t, err)

	_, err = other.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	service := NewService("access-secret", "refresh-secret", -time.Minute, time.Hour)

	token, err := service.GenerateAccessToken(uuid.New(), "admin@atlasrides.com", "admin")
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(token)
	assert.Error(t, err)
	assert.True(t, service.IsTokenExpired(token))
}

func TestIsTokenExpired(t *testing.T) {
	service := newTestService()

	token, err := service.GenerateAccessToken(uuid.New(), "admin@atlasrides.com", "admin")
	require.NoError(t, err)
	assert.False(t, service.IsTokenExpired(token))

	assert.True(t, service.IsTokenExpired("not-a-token"))
}

func TestExtractClaimsWithoutValidation(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	token, err := service.GenerateAccessToken(userID, "admin@atlasrides.com", "admin")
	require.NoError(t, err)

	claims, err := service.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}
