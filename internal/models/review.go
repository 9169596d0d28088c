package models

import (
	"time"
)

// Review represents a customer review. Reviews are submitted through
// the public site and held until an admin approves them.
type Review struct {
	ID         int64     `json:"id" db:"id"`
	AuthorName string    `json:"author_name" db:"author_name"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	Approved   bool      `json:"approved" db:"approved"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// CreateReviewRequest represents a public review submission
type CreateReviewRequest struct {
	AuthorName string `json:"author_name" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"required"`
}
