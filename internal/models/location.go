package models

// Location represents a pickup/dropoff branch
type Location struct {
	ID      int64   `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	Address string  `json:"address" db:"address"`
	MapURL  *string `json:"map_url,omitempty" db:"map_url"`
	Active  bool    `json:"active" db:"active"`
}

// CreateLocationRequest represents the request to create a location
type CreateLocationRequest struct {
	Name    string  `json:"name" binding:"required"`
	Address string  `json:"address" binding:"required"`
	MapURL  *string `json:"map_url"`
	Active  bool    `json:"active"`
}

// UpdateLocationRequest represents the request to update a location.
// Nil fields are left untouched.
type UpdateLocationRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	MapURL  *string `json:"map_url"`
	Active  *bool   `json:"active"`
}
