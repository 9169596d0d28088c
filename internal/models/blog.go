package models

import (
	"time"
)

// Blog represents a blog post on the marketing site
type Blog struct {
	ID        int64     `json:"id" db:"id"`
	Slug      string    `json:"slug" db:"slug"`
	Title     string    `json:"title" db:"title"`
	Excerpt   *string   `json:"excerpt,omitempty" db:"excerpt"`
	Content   string    `json:"content" db:"content"`
	ImageURL  *string   `json:"image_url,omitempty" db:"image_url"`
	Published bool      `json:"published" db:"published"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// CreateBlogRequest represents the request to create a blog post
type CreateBlogRequest struct {
	Slug      string  `json:"slug" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Excerpt   *string `json:"excerpt"`
	Content   string  `json:"content" binding:"required"`
	ImageURL  *string `json:"image_url"`
	Published bool    `json:"published"`
}

// UpdateBlogRequest represents the request to update a blog post.
// Nil fields are left untouched.
type UpdateBlogRequest struct {
	Slug      *string `json:"slug"`
	Title     *string `json:"title"`
	Excerpt   *string `json:"excerpt"`
	Content   *string `json:"content"`
	ImageURL  *string `json:"image_url"`
	Published *bool   `json:"published"`
}
