package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/atlasrides/rental-backend/pkg/jwt"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both unknown email and wrong password,
// indistinguishably.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrInvalidRefreshToken indicates the presented refresh token cannot
// be exchanged.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// AdminAuthService handles back-office authentication
type AdminAuthService struct {
	profiles   *database.ProfileRepository
	jwtService *jwt.Service
	logger     *logrus.Logger
}

// NewAdminAuthService creates a new AdminAuthService
func NewAdminAuthService(profiles *database.ProfileRepository, jwtService *jwt.Service, logger *logrus.Logger) *AdminAuthService {
	return &AdminAuthService{
		profiles:   profiles,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Login verifies credentials and issues a token pair
func (s *AdminAuthService) Login(email, password string) (*models.TokenResponse, *models.Profile, error) {
	profile, err := s.profiles.GetByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Burn comparable time so unknown emails are not
			// distinguishable by latency.
			bcrypt.CompareHashAndPassword([]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0C1eVXg5vN1qV5bN1qV5bN1qV5b"), []byte(password))
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	tokens, err := s.issueTokens(profile)
	if err != nil {
		return nil, nil, err
	}

	s.logger.WithField("email", profile.Email).Info("admin logged in")

	return tokens, profile, nil
}

// Refresh exchanges a valid refresh token for a new token pair. The
// profile is re-read so a deleted or demoted account stops refreshing
// immediately.
func (s *AdminAuthService) Refresh(refreshToken string) (*models.TokenResponse, error) {
	claims, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	profile, err := s.profiles.GetByID(claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to look up profile: %w", err)
	}

	return s.issueTokens(profile)
}

func (s *AdminAuthService) issueTokens(profile *models.Profile) (*models.TokenResponse, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(profile.ID, profile.Email, profile.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := s.jwtService.GenerateRefreshToken(profile.ID, profile.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &models.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.jwtService.AccessTokenExpiry().Seconds()),
	}, nil
}
