package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"bicirent-backend/internal/domain"
	"bicirent-backend/internal/logger"
	"bicirent-backend/internal/repository"
	"bicirent-backend/internal/security"
)

type authService struct {
	userRepo     repository.UserRepository
	regionalRepo repository.RegionalRepository
	tokens       security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, regionalRepo repository.RegionalRepository, tokens security.TokenManager) AuthService {
	return &authService{userRepo: userRepo, regionalRepo: regionalRepo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, user *domain.User, password string) (*domain.User, string, string, error) {
	if _, err := s.regionalRepo.GetByID(ctx, user.RegionalID); err != nil {
		return nil, "", "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", "", err
	}
	user.PasswordHash = string(hash)
	user.Role = domain.UserRoleUser
	user.IsActive = true

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, "", "", err
	}
	logger.Info("User registered", "user_id", user.ID, "email", user.Email)

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	return user, access, refresh, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*domain.User, string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Same answer for unknown email and wrong password.
			return nil, "", "", domain.ErrInvalidCredentials
		}
		return nil, "", "", err
	}
	if !user.IsActive {
		return nil, "", "", domain.ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", domain.ErrInvalidCredentials
	}

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		return nil, "", "", err
	}
	logger.Info("User logged in", "user_id", user.ID)
	return user, access, refresh, nil
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", "", domain.ErrUnauthorized
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", "", domain.ErrUnauthorized
	}

	// Re-read the user so a disabled account cannot keep refreshing.
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", "", domain.ErrUnauthorized
	}
	if !user.IsActive {
		return "", "", domain.ErrAccountDisabled
	}
	return s.issueTokens(user)
}

func (s *authService) issueTokens(user *domain.User) (string, string, error) {
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return "", "", err
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
