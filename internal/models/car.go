package models

import (
	"time"
)

// Car represents a rentable vehicle
type Car struct {
	ID           int64       `json:"id" db:"id"`
	Name         string      `json:"name" db:"name"`
	Category     string      `json:"category" db:"category"` // economy, suv, luxury, sports
	PricePerDay  float64     `json:"price_per_day" db:"price_per_day"`
	Seats        int         `json:"seats" db:"seats"`
	Transmission string      `json:"transmission" db:"transmission"` // automatic, manual
	Fuel         string      `json:"fuel" db:"fuel"`
	ImageURL     *string     `json:"image_url,omitempty" db:"image_url"`
	Description  *string     `json:"description,omitempty" db:"description"`
	Features     StringArray `json:"features" db:"features"`
	Active       bool        `json:"active" db:"active"`
	CreatedAt    time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at" db:"updated_at"`
}

// CreateCarRequest represents the request to create a car
type CreateCarRequest struct {
	Name         string   `json:"name" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	PricePerDay  float64  `json:"price_per_day" binding:"required,gt=0"`
	Seats        int      `json:"seats" binding:"required,gt=0"`
	Transmission string   `json:"transmission" binding:"required"`
	Fuel         string   `json:"fuel" binding:"required"`
	ImageURL     *string  `json:"image_url"`
	Description  *string  `json:"description"`
	Features     []string `json:"features"`
	Active       bool     `json:"active"`
}

// UpdateCarRequest represents the request to update a car.
// Nil fields are left untouched.
type UpdateCarRequest struct {
	Name         *string  `json:"name"`
	Category     *string  `json:"category"`
	PricePerDay  *float64 `json:"price_per_day"`
	Seats        *int     `json:"seats"`
	Transmission *string  `json:"transmission"`
	Fuel         *string  `json:"fuel"`
	ImageURL     *string  `json:"image_url"`
	Description  *string  `json:"description"`
	Features     []string `json:"features"` // nil leaves features untouched
	Active       *bool    `json:"active"`
}
