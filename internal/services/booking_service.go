package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/atlasrides/rental-backend/pkg/validator"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ErrItemUnavailable indicates the booked car or tour does not exist
// or is not active.
var ErrItemUnavailable = errors.New("requested item is not available")

// ValidationError marks a booking request the client can fix
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// BookingService validates and creates booking requests
type BookingService struct {
	bookings *database.BookingRepository
	cars     *database.CarRepository
	tours    *database.TourRepository
	phones   *validator.PhoneValidator
	logger   *logrus.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(bookings *database.BookingRepository, cars *database.CarRepository, tours *database.TourRepository, logger *logrus.Logger) *BookingService {
	return &BookingService{
		bookings: bookings,
		cars:     cars,
		tours:    tours,
		phones:   validator.NewPhoneValidator(),
		logger:   logger,
	}
}

// CreateBooking validates req and inserts a pending booking.
// userAgent is the already-summarized client device string.
func (s *BookingService) CreateBooking(req models.CreateBookingRequest, userAgent string) (*models.Booking, error) {
	if req.Kind != models.BookingKindCar && req.Kind != models.BookingKindTour {
		return nil, &ValidationError{Message: "kind must be car or tour"}
	}

	if !strings.Contains(req.CustomerEmail, "@") {
		return nil, &ValidationError{Message: "a valid email address is required"}
	}

	phone, err := s.phones.Validate(req.CustomerPhone)
	if err != nil {
		return nil, &ValidationError{Message: "a valid phone number is required"}
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, &ValidationError{Message: "start_date must be YYYY-MM-DD"}
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, &ValidationError{Message: "end_date must be YYYY-MM-DD"}
	}
	if endDate.Before(startDate) {
		return nil, &ValidationError{Message: "end_date must not be before start_date"}
	}

	if err := s.checkItemAvailable(req.Kind, req.ItemID); err != nil {
		return nil, err
	}

	id := uuid.New()
	booking := &models.Booking{
		ID:            id,
		Reference:     bookingReference(id),
		Kind:          req.Kind,
		ItemID:        req.ItemID,
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerEmail: strings.TrimSpace(req.CustomerEmail),
		CustomerPhone: phone,
		StartDate:     startDate,
		EndDate:       endDate,
		Status:        models.BookingStatusPending,
		Notes:         req.Notes,
	}
	if userAgent != "" {
		booking.UserAgent = &userAgent
	}

	created, err := s.bookings.Create(booking)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"reference": created.Reference,
		"kind":      created.Kind,
		"item_id":   created.ItemID,
	}).Info("booking created")

	return created, nil
}

func (s *BookingService) checkItemAvailable(kind string, itemID int64) error {
	var err error
	switch kind {
	case models.BookingKindCar:
		_, err = s.cars.GetActiveByID(itemID)
	case models.BookingKindTour:
		_, err = s.tours.GetActiveByID(itemID)
	}

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemUnavailable
		}
		return err
	}
	return nil
}

// ExpireStale marks pending bookings older than ttl as expired
func (s *BookingService) ExpireStale(ttl time.Duration) (int64, error) {
	cutoff := time.Now().Add(-ttl)
	expired, err := s.bookings.ExpirePending(cutoff)
	if err != nil {
		return 0, err
	}
	if expired > 0 {
		s.logger.WithField("count", expired).Info("expired stale pending bookings")
	}
	return expired, nil
}

// bookingReference derives the short customer-facing reference from
// the booking id.
func bookingReference(id uuid.UUID) string {
	compact := strings.ReplaceAll(id.String(), "-", "")
	return fmt.Sprintf("AR-%s", strings.ToUpper(compact[:8]))
}
