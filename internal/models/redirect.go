package models

import (
	"time"
)

// Redirect maps a retired site path to its replacement
type Redirect struct {
	ID        int64     `json:"id" db:"id"`
	FromPath  string    `json:"from_path" db:"from_path"`
	ToPath    string    `json:"to_path" db:"to_path"`
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// CreateRedirectRequest represents the request to create a redirect
type CreateRedirectRequest struct {
	FromPath string `json:"from_path" binding:"required"`
	ToPath   string `json:"to_path" binding:"required"`
	Active   bool   `json:"active"`
}

// UpdateRedirectRequest represents the request to update a redirect.
// Nil fields are left untouched.
type UpdateRedirectRequest struct {
	FromPath *string `json:"from_path"`
	ToPath   *string `json:"to_path"`
	Active   *bool   `json:"active"`
}

// RedirectResolution is the answer the client's route-change check
// receives for a given path.
type RedirectResolution struct {
	Redirect bool   `json:"redirect"`
	ToPath   string `json:"to_path,omitempty"`
}
