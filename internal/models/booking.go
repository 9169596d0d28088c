package models

import (
	"time"

	"github.com/google/uuid"
)

// Booking kinds
const (
	BookingKindCar  = "car"
	BookingKindTour = "tour"
)

// Booking statuses
const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusExpired   = "expired"
)

// Booking represents a rental or tour booking request
type Booking struct {
	ID            uuid.UUID `json:"id" db:"id"`
	Reference     string    `json:"reference" db:"reference"`
	Kind          string    `json:"kind" db:"kind"` // car or tour
	ItemID        int64     `json:"item_id" db:"item_id"`
	CustomerName  string    `json:"customer_name" db:"customer_name"`
	CustomerEmail string    `json:"customer_email" db:"customer_email"`
	CustomerPhone string    `json:"customer_phone" db:"customer_phone"`
	StartDate     time.Time `json:"start_date" db:"start_date"`
	EndDate       time.Time `json:"end_date" db:"end_date"`
	Status        string    `json:"status" db:"status"`
	Notes         *string   `json:"notes,omitempty" db:"notes"`
	UserAgent     *string   `json:"user_agent,omitempty" db:"user_agent"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// CreateBookingRequest represents a public booking submission
type CreateBookingRequest struct {
	Kind          string  `json:"kind" binding:"required"`
	ItemID        int64   `json:"item_id" binding:"required"`
	CustomerName  string  `json:"customer_name" binding:"required"`
	CustomerEmail string  `json:"customer_email" binding:"required"`
	CustomerPhone string  `json:"customer_phone" binding:"required"`
	StartDate     string  `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate       string  `json:"end_date" binding:"required"`   // YYYY-MM-DD
	Notes         *string `json:"notes"`
}

// UpdateBookingStatusRequest represents an admin status change
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ValidBookingStatus reports whether s is a known booking status
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusExpired:
		return true
	}
	return false
}
