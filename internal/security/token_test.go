package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"meetingdesk-backend/internal/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour, 24*time.Hour)

	t.Run("AccessToken", func(t *testing.T) {
		token, err := manager.GenerateAccessToken(7, "dana@example.com", domain.RoleRoomApprover)
		assert.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int32(7), claims.UserID)
		assert.Equal(t, "dana@example.com", claims.Email)
		assert.Equal(t, domain.RoleRoomApprover, claims.Role)
		assert.Equal(t, TokenTypeAccess, claims.Type)
	})

	t.Run("RefreshTokenCarriesNoRole", func(t *testing.T) {
		token, err := manager.GenerateRefreshToken(7, "dana@example.com")
		assert.NoError(t, err)

		claims, err := manager.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, TokenTypeRefresh, claims.Type)
		assert.Empty(t, claims.Role)
	})
}

func TestTokenManager_ValidateToken(t *testing.T) {
	manager := NewTokenManager("test-secret", time.Hour, time.Hour)

	t.Run("Garbage", func(t *testing.T) {
		_, err := manager.ValidateToken("not.a.token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		other := NewTokenManager("other-secret", time.Hour, time.Hour)
		token, err := other.GenerateAccessToken(7, "dana@example.com", domain.RoleMember)
		assert.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewTokenManager("test-secret", -time.Minute, -time.Minute)
		token, err := expired.GenerateAccessToken(7, "dana@example.com", domain.RoleMember)
		assert.NoError(t, err)

		_, err = manager.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
