package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"meetingdesk-backend/internal/domain"
	"meetingdesk-backend/internal/security"
	"meetingdesk-backend/internal/service"
)

func newAuthFixture() (*MockUserRepo, security.TokenManager, service.AuthService) {
	userRepo := new(MockUserRepo)
	tokens := security.NewTokenManager("test-secret", time.Hour, 24*time.Hour)
	return userRepo, tokens, service.NewAuthService(userRepo, tokens)
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo, _, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "dana@example.com").Return(nil, domain.ErrNotFound)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := svc.Signup(ctx, "Dana", "dana@example.com", "s3cretpass")
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleMember, user.Role)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cretpass")))
	})

	t.Run("EmailTaken", func(t *testing.T) {
		userRepo, _, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "dana@example.com").Return(&domain.User{ID: 1}, nil)

		_, err := svc.Signup(ctx, "Dana", "dana@example.com", "s3cretpass")
		assert.ErrorIs(t, err, domain.ErrEmailTaken)
	})

	t.Run("ShortPassword", func(t *testing.T) {
		_, _, svc := newAuthFixture()

		_, err := svc.Signup(ctx, "Dana", "dana@example.com", "short")
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	stored := &domain.User{ID: 7, Email: "dana@example.com", PasswordHash: string(hash), Role: domain.RoleZoomApprover}

	t.Run("Success", func(t *testing.T) {
		userRepo, tokens, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "dana@example.com").Return(stored, nil)

		access, refresh, user, err := svc.Login(ctx, "dana@example.com", "s3cretpass")
		assert.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleZoomApprover, claims.Role)

		claims, err = tokens.ValidateToken(refresh)
		assert.NoError(t, err)
		assert.Equal(t, security.TokenTypeRefresh, claims.Type)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		userRepo, _, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "dana@example.com").Return(stored, nil)

		_, _, _, err := svc.Login(ctx, "dana@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		userRepo, _, svc := newAuthFixture()
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound)

		_, _, _, err := svc.Login(ctx, "nobody@example.com", "s3cretpass")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("ReflectsRoleChange", func(t *testing.T) {
		userRepo, tokens, svc := newAuthFixture()
		refresh, err := tokens.GenerateRefreshToken(7, "dana@example.com")
		assert.NoError(t, err)

		// Promoted since login; the refreshed access token carries the new role.
		userRepo.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, Email: "dana@example.com", Role: domain.RoleRoomApprover}, nil)

		access, err := svc.Refresh(ctx, refresh)
		assert.NoError(t, err)

		claims, err := tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, domain.RoleRoomApprover, claims.Role)
	})

	t.Run("RejectsAccessToken", func(t *testing.T) {
		_, tokens, svc := newAuthFixture()
		access, err := tokens.GenerateAccessToken(7, "dana@example.com", domain.RoleMember)
		assert.NoError(t, err)

		_, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})
}
