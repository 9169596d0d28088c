package database

import (
	"database/sql"
	"fmt"

	"github.com/atlasrides/rental-backend/internal/models"
)

// ReviewRepository handles database operations for the reviews table
type ReviewRepository struct {
	db DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const reviewColumns = `id, author_name, rating, comment, approved, created_at`

// GetApproved retrieves approved reviews, newest first
func (r *ReviewRepository) GetApproved() ([]models.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE approved = true
		ORDER BY created_at DESC
	`

	reviews := []models.Review{}
	if err := r.db.Select(&reviews, query); err != nil {
		return nil, fmt.Errorf("failed to list approved reviews: %w", err)
	}

	return reviews, nil
}

// GetAll retrieves all reviews including pending ones
func (r *ReviewRepository) GetAll() ([]models.Review, error) {
	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		ORDER BY created_at DESC
	`

	reviews := []models.Review{}
	if err := r.db.Select(&reviews, query); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// Create inserts an unapproved review and returns it
func (r *ReviewRepository) Create(req models.CreateReviewRequest) (*models.Review, error) {
	query := `
		INSERT INTO reviews (author_name, rating, comment, approved, created_at)
		VALUES ($1, $2, $3, false, NOW())
		RETURNING ` + reviewColumns

	var review models.Review
	if err := r.db.Get(&review, query, req.AuthorName, req.Rating, req.Comment); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return &review, nil
}

// SetApproved flips a review's approval flag
func (r *ReviewRepository) SetApproved(id int64, approved bool) error {
	result, err := r.db.Exec(`UPDATE reviews SET approved = $2 WHERE id = $1`, id, approved)
	if err != nil {
		return fmt.Errorf("failed to update review approval: %w", err)
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

// Delete removes a review
func (r *ReviewRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
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
