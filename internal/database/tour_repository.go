package database

import (
	"database/sql"
	"fmt"

	"github.com/atlasrides/rental-backend/internal/models"
)

// TourRepository handles database operations for the tours table
type TourRepository struct {
	db DB
}

// NewTourRepository creates a new TourRepository
func NewTourRepository(db DB) *TourRepository {
	return &TourRepository{db: db}
}

const tourColumns = `id, name, duration_days, price, image_url, description, active, created_at, updated_at`

// GetActive retrieves bookable tours
func (r *TourRepository) GetActive() ([]models.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE active = true
		ORDER BY price
	`

	tours := []models.Tour{}
	if err := r.db.Select(&tours, query); err != nil {
		return nil, fmt.Errorf("failed to list active tours: %w", err)
	}

	return tours, nil
}

// GetActiveByID retrieves a single active tour
func (r *TourRepository) GetActiveByID(id int64) (*models.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE id = $1 AND active = true
	`

	var tour models.Tour
	if err := r.db.Get(&tour, query, id); err != nil {
		return nil, err
	}

	return &tour, nil
}

// GetAll retrieves all tours including inactive ones
func (r *TourRepository) GetAll() ([]models.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		ORDER BY id
	`

	tours := []models.Tour{}
	if err := r.db.Select(&tours, query); err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}

	return tours, nil
}

// GetByID retrieves a tour by id regardless of active state
func (r *TourRepository) GetByID(id int64) (*models.Tour, error) {
	query := `
		SELECT ` + tourColumns + `
		FROM tours
		WHERE id = $1
	`

	var tour models.Tour
	if err := r.db.Get(&tour, query, id); err != nil {
		return nil, err
	}

	return &tour, nil
}

// Create inserts a new tour and returns it
func (r *TourRepository) Create(req models.CreateTourRequest) (*models.Tour, error) {
	query := `
		INSERT INTO tours (name, duration_days, price, image_url, description, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + tourColumns

	var tour models.Tour
	err := r.db.Get(&tour, query, req.Name, req.DurationDays, req.Price, req.ImageURL, req.Description, req.Active)
	if err != nil {
		return nil, fmt.Errorf("failed to create tour: %w", err)
	}

	return &tour, nil
}

// Update applies the non-nil fields of req to a tour
func (r *TourRepository) Update(id int64, req models.UpdateTourRequest) (*models.Tour, error) {
	query := `
		UPDATE tours
		SET name = COALESCE($2, name),
		    duration_days = COALESCE($3, duration_days),
		    price = COALESCE($4, price),
		    image_url = COALESCE($5, image_url),
		    description = COALESCE($6, description),
		    active = COALESCE($7, active),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + tourColumns

	var tour models.Tour
	err := r.db.Get(&tour, query, id, req.Name, req.DurationDays, req.Price, req.ImageURL, req.Description, req.Active)
	if err != nil {
		return nil, err
	}

	return &tour, nil
}

// Delete removes a tour
func (r *TourRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM tours WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete tour: %w", err)
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

// SitemapRefs projects id and update time for active tours
func (r *TourRepository) SitemapRefs() ([]models.SitemapRef, error) {
	query := `
		SELECT id::text AS ref, updated_at
		FROM tours
		WHERE active = true
		ORDER BY id
	`

	refs := []models.SitemapRef{}
	if err := r.db.Select(&refs, query); err != nil {
		return nil, fmt.Errorf("failed to project tour sitemap refs: %w", err)
	}

	return refs, nil
}
