package models

import (
	"time"
)

// Tour represents a bookable guided tour
type Tour struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	DurationDays int       `json:"duration_days" db:"duration_days"`
	Price        float64   `json:"price" db:"price"`
	ImageURL     *string   `json:"image_url,omitempty" db:"image_url"`
	Description  *string   `json:"description,omitempty" db:"description"`
	Active       bool      `json:"active" db:"active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// CreateTourRequest represents the request to create a tour
type CreateTourRequest struct {
	Name         string  `json:"name" binding:"required"`
	DurationDays int     `json:"duration_days" binding:"required,gt=0"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	ImageURL     *string `json:"image_url"`
	Description  *string `json:"description"`
	Active       bool    `json:"active"`
}

// UpdateTourRequest represents the request to update a tour.
// Nil fields are left untouched.
type UpdateTourRequest struct {
	Name         *string  `json:"name"`
	DurationDays *int     `json:"duration_days"`
	Price        *float64 `json:"price"`
	ImageURL     *string  `json:"image_url"`
	Description  *string  `json:"description"`
	Active       *bool    `json:"active"`
}
