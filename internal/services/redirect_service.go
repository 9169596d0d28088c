package services

import (
	"database/sql"
	"errors"

	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/sirupsen/logrus"
)

// RedirectService answers the client's "has this path moved" check on
// every route change.
type RedirectService struct {
	repo   *database.RedirectRepository
	logger *logrus.Logger
}

// NewRedirectService creates a new RedirectService
func NewRedirectService(repo *database.RedirectRepository, logger *logrus.Logger) *RedirectService {
	return &RedirectService{repo: repo, logger: logger}
}

// Resolve looks up an active redirect for the exact path. A lookup
// failure must never block page rendering, so errors degrade to "no
// redirect" and are only logged.
func (s *RedirectService) Resolve(path string) models.RedirectResolution {
	redirect, err := s.repo.FindActiveByPath(path)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.logger.WithError(err).WithField("path", path).Warn("redirect lookup failed")
		}
		return models.RedirectResolution{Redirect: false}
	}

	return models.RedirectResolution{Redirect: true, ToPath: redirect.ToPath}
}
