package services

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/atlasrides/rental-backend/internal/database"
)

// RateLimitService throttles public contact form submissions per
// client IP, backed by the contact_rate_limits table so limits hold
// across instances.
type RateLimitService struct {
	db          database.DB
	maxRequests int
	window      time.Duration
}

// NewRateLimitService creates a new rate limit service
func NewRateLimitService(db database.DB, maxRequests int, window time.Duration) *RateLimitService {
	return &RateLimitService{
		db:          db,
		maxRequests: maxRequests,
		window:      window,
	}
}

// RateLimitError represents a rate limit exceeded error
type RateLimitError struct {
	Message    string
	RetryAfter time.Time
}

func (e *RateLimitError) Error() string {
	return e.Message
}

// CheckContactRateLimit returns a RateLimitError when ip has exceeded
// the submission budget for the current window.
func (s *RateLimitService) CheckContactRateLimit(ip string) error {
	if ip == "" {
		return nil
	}

	count, lastRequest, err := s.getRequestCount(ip)
	if err != nil {
		return fmt.Errorf("failed to check contact rate limit: %w", err)
	}

	if count >= s.maxRequests {
		retryAfter := lastRequest.Add(s.window)
		return &RateLimitError{
			Message:    fmt.Sprintf("Too many contact requests. Please try again after %s", retryAfter.Format("15:04:05")),
			RetryAfter: retryAfter,
		}
	}

	return nil
}

// getRequestCount gets the number of requests within the time window
func (s *RateLimitService) getRequestCount(ip string) (int, time.Time, error) {
	windowStart := time.Now().Add(-s.window)

	query := `
		SELECT COUNT(*), COALESCE(MAX(created_at), NOW())
		FROM contact_rate_limits
		WHERE identifier = $1
		  AND created_at > $2
	`

	var count int
	var lastRequest time.Time

	err := s.db.QueryRow(query, ip, windowStart).Scan(&count, &lastRequest)
	if err != nil && err != sql.ErrNoRows {
		return 0, time.Time{}, err
	}

	return count, lastRequest, nil
}

// RecordContactRequest records a submission for rate limiting
func (s *RateLimitService) RecordContactRequest(ip string) error {
	if ip == "" {
		return nil
	}

	query := `
		INSERT INTO contact_rate_limits (identifier, created_at)
		VALUES ($1, NOW())
	`

	if _, err := s.db.Exec(query, ip); err != nil {
		return fmt.Errorf("failed to record contact request: %w", err)
	}

	return nil
}

// CleanupExpiredRateLimits removes records older than the window
func (s *RateLimitService) CleanupExpiredRateLimits() (int64, error) {
	cutoffTime := time.Now().Add(-s.window)

	result, err := s.db.Exec(`DELETE FROM contact_rate_limits WHERE created_at < $1`, cutoffTime)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup rate limits: %w", err)
	}

	return result.RowsAffected()
}
