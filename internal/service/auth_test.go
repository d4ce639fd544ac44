package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/security"
	"bicirent-backend/internal/service"
)

func testTokenManager() security.TokenManager {
	return security.NewTokenManager("test-secret-at-least-32-characters!!", time.Hour, 24*time.Hour)
}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and issues both tokens", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		regionalRepo := new(MockRegionalRepo)
		svc := service.NewAuthService(userRepo, regionalRepo, testTokenManager())

		regionalRepo.On("GetByID", ctx, int32(1)).Return(&domain.Regional{ID: 1}, nil).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Role == domain.UserRoleUser && u.IsActive &&
				u.PasswordHash != "" && u.PasswordHash != "secret-pass"
		})).Return(nil).Once()

		user, access, refresh, err := svc.Register(ctx, &domain.User{
			Email: "rider@test.com", FirstName: "Rider", RegionalID: 1,
		}, "secret-pass")
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-pass")))
		userRepo.AssertExpectations(t)
	})

	t.Run("rejects an unknown regional", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		regionalRepo := new(MockRegionalRepo)
		svc := service.NewAuthService(userRepo, regionalRepo, testTokenManager())

		regionalRepo.On("GetByID", ctx, int32(9)).Return(nil, domain.ErrRegionalNotFound).Once()

		_, _, _, err := svc.Register(ctx, &domain.User{Email: "x@test.com", RegionalID: 9}, "secret-pass")
		assert.ErrorIs(t, err, domain.ErrRegionalNotFound)
		userRepo.AssertNotCalled(t, "Create")
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockRegionalRepo), testTokenManager())

		userRepo.On("GetByEmail", ctx, "rider@test.com").Return(&domain.User{
			ID: 7, Email: "rider@test.com", IsActive: true,
			PasswordHash: hashOf(t, "secret-pass"), Role: domain.UserRoleUser,
		}, nil).Once()

		user, access, refresh, err := svc.Login(ctx, "rider@test.com", "secret-pass")
		require.NoError(t, err)
		assert.Equal(t, int32(7), user.ID)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, refresh)
	})

	t.Run("wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockRegionalRepo), testTokenManager())

		userRepo.On("GetByEmail", ctx, "rider@test.com").Return(&domain.User{
			ID: 7, IsActive: true, PasswordHash: hashOf(t, "secret-pass"),
		}, nil).Once()

		_, _, _, err := svc.Login(ctx, "rider@test.com", "wrong-pass")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email gets the same answer as a wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockRegionalRepo), testTokenManager())

		userRepo.On("GetByEmail", ctx, "ghost@test.com").Return(nil, domain.ErrUserNotFound).Once()

		_, _, _, err := svc.Login(ctx, "ghost@test.com", "whatever")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockRegionalRepo), testTokenManager())

		userRepo.On("GetByEmail", ctx, "rider@test.com").Return(&domain.User{
			ID: 7, IsActive: false, PasswordHash: hashOf(t, "secret-pass"),
		}, nil).Once()

		_, _, _, err := svc.Login(ctx, "rider@test.com", "secret-pass")
		assert.ErrorIs(t, err, domain.ErrAccountDisabled)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()
	tokens := testTokenManager()

	t.Run("rotates tokens for an active user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockRegionalRepo), tokens)

		refresh, err := tokens.GenerateRefreshToken(7, "rider@test.com")
		require.NoError(t, err)
		userRepo.On("GetByID", ctx, int32(7)).Return(&domain.User{
			ID: 7, Email: "rider@test.com", IsActive: true, Role: domain.UserRoleUser,
		}, nil).Once()

		access, newRefresh, err := svc.Refresh(ctx, refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, access)
		assert.NotEmpty(t, newRefresh)
	})

	t.Run("rejects an access token on the refresh endpoint", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockRegionalRepo), tokens)

		access, err := tokens.GenerateAccessToken(7, "rider@test.com", "user")
		require.NoError(t, err)

		_, _, err = svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		userRepo.AssertNotCalled(t, "GetByID")
	})

	t.Run("rejects a disabled user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, new(MockRegionalRepo), tokens)

		refresh, err := tokens.GenerateRefreshToken(7, "rider@test.com")
		require.NoError(t, err)
		userRepo.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, IsActive: false}, nil).Once()

		_, _, err = svc.Refresh(ctx, refresh)
		assert.ErrorIs(t, err, domain.ErrAccountDisabled)
	})
}
