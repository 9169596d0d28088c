package services

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// CronService manages scheduled background jobs: expiring stale
// pending bookings and pruning rate limit records.
type CronService struct {
	cron       *cron.Cron
	bookings   *BookingService
	rateLimits *RateLimitService
	pendingTTL time.Duration
	logger     *logrus.Logger
}

// NewCronService creates a new CronService
func NewCronService(bookings *BookingService, rateLimits *RateLimitService, pendingTTL time.Duration, logger *logrus.Logger) *CronService {
	return &CronService{
		cron:       cron.New(),
		bookings:   bookings,
		rateLimits: rateLimits,
		pendingTTL: pendingTTL,
		logger:     logger,
	}
}

// Start schedules all jobs and starts the scheduler
func (s *CronService) Start() error {
	// Expire stale pending bookings every 30 minutes
	if _, err := s.cron.AddFunc("*/30 * * * *", s.expireBookingsJob); err != nil {
		return fmt.Errorf("failed to schedule booking expiry job: %w", err)
	}

	// Prune old contact rate limit rows hourly
	if _, err := s.cron.AddFunc("@hourly", s.cleanupRateLimitsJob); err != nil {
		return fmt.Errorf("failed to schedule rate limit cleanup job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("cron service started")
	return nil
}

// Stop stops the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("cron service stopped")
}

func (s *CronService) expireBookingsJob() {
	start := time.Now()
	expired, err := s.bookings.ExpireStale(s.pendingTTL)
	if err != nil {
		s.logger.WithError(err).Error("booking expiry job failed")
		return
	}
	s.logger.WithFields(logrus.Fields{
		"expired":  expired,
		"duration": time.Since(start).String(),
	}).Debug("booking expiry job finished")
}

func (s *CronService) cleanupRateLimitsJob() {
	removed, err := s.rateLimits.CleanupExpiredRateLimits()
	if err != nil {
		s.logger.WithError(err).Error("rate limit cleanup job failed")
		return
	}
	if removed > 0 {
		s.logger.WithField("removed", removed).Debug("pruned rate limit records")
	}
}
