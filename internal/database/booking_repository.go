package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/google/uuid"
)

// BookingRepository handles database operations for the bookings table
type BookingRepository struct {
	db DB
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

const bookingColumns = `id, reference, kind, item_id, customer_name, customer_email, customer_phone, start_date, end_date, status, notes, user_agent, created_at, updated_at`

// Create inserts a pending booking and returns it
func (r *BookingRepository) Create(booking *models.Booking) (*models.Booking, error) {
	query := `
		INSERT INTO bookings (id, reference, kind, item_id, customer_name, customer_email, customer_phone, start_date, end_date, status, notes, user_agent, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING ` + bookingColumns

	var created models.Booking
	err := r.db.Get(&created, query,
		booking.ID, booking.Reference, booking.Kind, booking.ItemID,
		booking.CustomerName, booking.CustomerEmail, booking.CustomerPhone,
		booking.StartDate, booking.EndDate, booking.Status, booking.Notes, booking.UserAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	return &created, nil
}

// GetByID retrieves a booking by id
func (r *BookingRepository) GetByID(id uuid.UUID) (*models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE id = $1
	`

	var booking models.Booking
	if err := r.db.Get(&booking, query, id); err != nil {
		return nil, err
	}

	return &booking, nil
}

// List retrieves bookings, optionally filtered by status, newest first
func (r *BookingRepository) List(status string) ([]models.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`

	bookings := []models.Booking{}
	if err := r.db.Select(&bookings, query, status); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}

// UpdateStatus sets a booking's status
func (r *BookingRepository) UpdateStatus(id uuid.UUID, status string) error {
	result, err := r.db.Exec(`UPDATE bookings SET status = $2, updated_at = NOW() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ExpirePending marks pending bookings created before cutoff as
// expired and returns how many rows changed.
func (r *BookingRepository) ExpirePending(cutoff time.Time) (int64, error) {
	query := `
		UPDATE bookings
		SET status = $1, updated_at = NOW()
		WHERE status = $2 AND created_at < $3
	`

	result, err := r.db.Exec(query, models.BookingStatusExpired, models.BookingStatusPending, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to expire pending bookings: %w", err)
	}

	return result.RowsAffected()
}
