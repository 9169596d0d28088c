package services

import (
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBookingService(t *testing.T) (*BookingService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	return NewBookingService(
		database.NewBookingRepository(db),
		database.NewCarRepository(db),
		database.NewTourRepository(db),
		testLogger(),
	), mock
}

func validBookingRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		Kind:          models.BookingKindCar,
		ItemID:        7,
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+971501234567",
		StartDate:     "2024-06-10",
		EndDate:       "2024-06-13",
	}
}

func expectActiveCar(mock sqlmock.Sqlmock, id int64) {
	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM cars`).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "name", "category", "price_per_day", "seats", "transmission",
			"fuel", "image_url", "description", "features", "active",
			"created_at", "updated_at",
		}).AddRow(
			id, "Compact Hatch", "economy", 35.0, 5, "automatic",
			"petrol", nil, nil, []byte(`{}`), true,
			now, now,
		))
}

func TestCreateBookingValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.CreateBookingRequest)
		message string
	}{
		{
			name:    "Unknown Kind",
			mutate:  func(r *models.CreateBookingRequest) { r.Kind = "yacht" },
			message: "kind must be car or tour",
		},
		{
			name:    "Bad Email",
			mutate:  func(r *models.CreateBookingRequest) { r.CustomerEmail = "not-an-email" },
			message: "valid email address",
		},
		{
			name:    "Bad Start Date",
			mutate:  func(r *models.CreateBookingRequest) { r.StartDate = "10/06/2024" },
			message: "start_date must be YYYY-MM-DD",
		},
		{
			name:    "Bad End Date",
			mutate:  func(r *models.CreateBookingRequest) { r.EndDate = "June 13" },
			message: "end_date must be YYYY-MM-DD",
		},
		{
			name:    "Bad Phone Characters",
			mutate:  func(r *models.CreateBookingRequest) { r.CustomerPhone = "not-a-phone" },
			message: "valid phone number",
		},
		{
			name:    "Phone Too Short",
			mutate:  func(r *models.CreateBookingRequest) { r.CustomerPhone = "12345" },
			message: "valid phone number",
		},
		{
			name: "End Before Start",
			mutate: func(r *models.CreateBookingRequest) {
				r.StartDate = "2024-06-13"
				r.EndDate = "2024-06-10"
			},
			message: "end_date must not be before start_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newTestBookingService(t)

			req := validBookingRequest()
			tt.mutate(&req)

			booking, err := service.CreateBooking(req, "")
			assert.Nil(t, booking)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Message, tt.message)
		})
	}
}

func TestCreateBookingItemAvailability(t *testing.T) {
	t.Run("Inactive Car Rejected", func(t *testing.T) {
		service, mock := newTestBookingService(t)

		mock.ExpectQuery(`SELECT (.+) FROM cars`).
			WithArgs(int64(7)).
			WillReturnError(sql.ErrNoRows)

		booking, err := service.CreateBooking(validBookingRequest(), "")
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, ErrItemUnavailable)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Tour Rejected", func(t *testing.T) {
		service, mock := newTestBookingService(t)

		req := validBookingRequest()
		req.Kind = models.BookingKindTour

		mock.ExpectQuery(`SELECT (.+) FROM tours`).
			WithArgs(int64(7)).
			WillReturnError(sql.ErrNoRows)

		booking, err := service.CreateBooking(req, "")
		assert.Nil(t, booking)
		assert.ErrorIs(t, err, ErrItemUnavailable)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateBookingSuccess(t *testing.T) {
	service, mock := newTestBookingService(t)

	expectActiveCar(mock, 7)

	now := time.Now()
	id := uuid.New()
	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "reference", "kind", "item_id", "customer_name", "customer_email",
			"customer_phone", "start_date", "end_date", "status", "notes",
			"user_agent", "created_at", "updated_at",
		}).AddRow(
			id, "AR-1A2B3C4D", "car", int64(7), "Jane Doe", "jane@example.com",
			"+971501234567", now, now.AddDate(0, 0, 3), "pending", nil,
			"Chrome 120 on Windows 10 (desktop)", now, now,
		))

	booking, err := service.CreateBooking(validBookingRequest(), "Chrome 120 on Windows 10 (desktop)")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, "AR-1A2B3C4D", booking.Reference)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateBookingPhoneSanitized(t *testing.T) {
	service, mock := newTestBookingService(t)

	expectActiveCar(mock, 7)

	req := validBookingRequest()
	req.CustomerPhone = "+971 (50) 123-4567"

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO bookings`).
		WithArgs(
			sqlmock.AnyArg(), sqlmock.AnyArg(), "car", int64(7), "Jane Doe", "jane@example.com",
			"+971501234567", sqlmock.AnyArg(), sqlmock.AnyArg(), "pending", nil, nil,
		).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "reference", "kind", "item_id", "customer_name", "customer_email",
			"customer_phone", "start_date", "end_date", "status", "notes",
			"user_agent", "created_at", "updated_at",
		}).AddRow(
			uuid.New(), "AR-5E6F7A8B", "car", int64(7), "Jane Doe", "jane@example.com",
			"+971501234567", now, now.AddDate(0, 0, 3), "pending", nil,
			nil, now, now,
		))

	booking, err := service.CreateBooking(req, "")
	require.NoError(t, err)
	assert.Equal(t, "+971501234567", booking.CustomerPhone)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingReference(t *testing.T) {
	id := uuid.MustParse("a1b2c3d4-0000-0000-0000-000000000000")

	ref := bookingReference(id)
	assert.Equal(t, "AR-A1B2C3D4", ref)

	// References derive deterministically from the id
	assert.Equal(t, ref, bookingReference(id))
	assert.True(t, strings.HasPrefix(ref, "AR-"))
	assert.Len(t, ref, 11)
}
