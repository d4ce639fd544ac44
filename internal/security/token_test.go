package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret-at-least-32-characters!!", time.Hour, 24*time.Hour)

	t.Run("access token carries user claims", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(7, "rider@test.com", "user")
		require.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, int32(7), claims.UserID)
		assert.Equal(t, "rider@test.com", claims.Email)
		assert.Equal(t, TokenTypeAccess, claims.Type)
		assert.Equal(t, "user", claims.Role)
	})

	t.Run("refresh token is typed as refresh", func(t *testing.T) {
		token, err := tm.GenerateRefreshToken(7, "rider@test.com")
		require.NoError(t, err)

		claims, err := tm.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
		assert.Empty(t, claims.Role)
	})
}

func TestTokenManager_ValidateToken(t *testing.T) {
	tm := NewTokenManager("test-secret-at-least-32-characters!!", time.Hour, 24*time.Hour)

	t.Run("garbage input", func(t *testing.T) {
		_, err := tm.ValidateToken("not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong signing secret", func(t *testing.T) {
		other := NewTokenManager("another-secret-also-32-characters!!!", time.Hour, 24*time.Hour)
		token, err := other.GenerateAccessToken(7, "rider@test.com", "user")
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		short := &tokenManager{
			secret:     []byte("test-secret-at-least-32-characters!!"),
			accessTTL:  -time.Minute,
			refreshTTL: 24 * time.Hour,
		}
		token, err := short.GenerateAccessToken(7, "rider@test.com", "user")
		require.NoError(t, err)

		_, err = tm.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
