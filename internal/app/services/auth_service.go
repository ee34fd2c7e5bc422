package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/campusplacement/portal/internal/app/models"
	"github.com/campusplacement/portal/internal/app/models/dto"
	"github.com/campusplacement/portal/internal/app/repositories"
	"github.com/campusplacement/portal/internal/pkg/apperrors"
	"github.com/campusplacement/portal/internal/pkg/auth"
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo   *repositories.UserRepository
	tokenRepo  *repositories.TokenRepository
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo *repositories.UserRepository,
	tokenRepo *repositories.TokenRepository,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenRepo:  tokenRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues a token pair. Password checks
// accept both bcrypt hashes and legacy hex digests; legacy hashes are
// upgraded in place after a successful login.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			// Same error as a bad password so usernames cannot be probed
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		s.logger.Warn().Str("username", username).Msg("Failed login attempt")
		return nil, apperrors.ErrInvalidCredentials
	}

	if auth.IsLegacyHash(user.PasswordHash) {
		if upgraded, hashErr := auth.HashPassword(req.Password); hashErr == nil {
			if updErr := s.userRepo.UpdatePasswordHash(ctx, user.ID, upgraded); updErr != nil {
				s.logger.Warn().Err(updErr).Int64("userID", user.ID).Msg("Failed to upgrade legacy password hash")
			}
		}
	}

	return s.issueTokens(ctx, user)
}

// RefreshToken rotates a refresh token into a new token pair. The old
// token is revoked whether or not issuance succeeds.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.AuthResponse, error) {
	userID, err := s.tokenRepo.GetTokenUser(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if err := s.tokenRepo.RevokeToken(ctx, refreshToken); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes a refresh token
func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	return s.tokenRepo.RevokeToken(ctx, refreshToken)
}

// GetCurrentUser retrieves the authenticated user's record
func (s *AuthService) GetCurrentUser(ctx context.Context, userID int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// CleanupExpiredTokens removes refresh tokens past their expiry date
// and returns how many were deleted.
func (s *AuthService) CleanupExpiredTokens(ctx context.Context) (int64, error) {
	return s.tokenRepo.DeleteExpiredTokens(ctx)
}

// RunTokenSweeper purges expired refresh tokens on the given interval
// until the context is cancelled.
func (s *AuthService) RunTokenSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := s.CleanupExpiredTokens(ctx)
			if err != nil {
				s.logger.Error().Err(err).Msg("Failed to clean up expired refresh tokens")
				continue
			}
			if removed > 0 {
				s.logger.Info().Int64("removed", removed).Msg("Purged expired refresh tokens")
			}
		}
	}
}

func (s *AuthService) issueTokens(ctx context.Context, user *models.User) (*dto.AuthResponse, error) {
	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		s.logger.Error().Err(err).Int64("userID", user.ID).Msg("Failed to generate token pair")
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	if err := s.tokenRepo.CreateToken(ctx, refreshToken, user.ID, s.jwtService.GetRefreshTokenExpiry()); err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: refreshExpiresIn,
		},
		User: dto.UserInfo{
			ID:        user.ID,
			Username:  user.Username,
			Role:      string(user.Role),
			StudentID: user.StudentID,
		},
	}, nil
}
