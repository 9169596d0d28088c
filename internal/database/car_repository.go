package database

import (
	"database/sql"
	"fmt"

	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/lib/pq"
)

// CarRepository handles database operations for the cars table
type CarRepository struct {
	db DB
}

// NewCarRepository creates a new CarRepository
func NewCarRepository(db DB) *CarRepository {
	return &CarRepository{db: db}
}

const carColumns = `id, name, category, price_per_day, seats, transmission, fuel, image_url, description, features, active, created_at, updated_at`

// GetActive retrieves cars available for rent
func (r *CarRepository) GetActive() ([]models.Car, error) {
	query := `
		SELECT ` + carColumns + `
		FROM cars
		WHERE active = true
		ORDER BY price_per_day
	`

	cars := []models.Car{}
	if err := r.db.Select(&cars, query); err != nil {
		return nil, fmt.Errorf("failed to list active cars: %w", err)
	}

	return cars, nil
}

// GetActiveByID retrieves a single active car
func (r *CarRepository) GetActiveByID(id int64) (*models.Car, error) {
	query := `
		SELECT ` + carColumns + `
		FROM cars
		WHERE id = $1 AND active = true
	`

	var car models.Car
	if err := r.db.Get(&car, query, id); err != nil {
		return nil, err
	}

	return &car, nil
}

// GetAll retrieves all cars including inactive ones
func (r *CarRepository) GetAll() ([]models.Car, error) {
	query := `
		SELECT ` + carColumns + `
		FROM cars
		ORDER BY id
	`

	cars := []models.Car{}
	if err := r.db.Select(&cars, query); err != nil {
		return nil, fmt.Errorf("failed to list cars: %w", err)
	}

	return cars, nil
}

// GetByID retrieves a car by id regardless of active state
func (r *CarRepository) GetByID(id int64) (*models.Car, error) {
	query := `
		SELECT ` + carColumns + `
		FROM cars
		WHERE id = $1
	`

	var car models.Car
	if err := r.db.Get(&car, query, id); err != nil {
		return nil, err
	}

	return &car, nil
}

// Create inserts a new car and returns it
func (r *CarRepository) Create(req models.CreateCarRequest) (*models.Car, error) {
	query := `
		INSERT INTO cars (name, category, price_per_day, seats, transmission, fuel, image_url, description, features, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING ` + carColumns

	var car models.Car
	err := r.db.Get(&car, query,
		req.Name, req.Category, req.PricePerDay, req.Seats, req.Transmission,
		req.Fuel, req.ImageURL, req.Description, pq.Array(req.Features), req.Active)
	if err != nil {
		return nil, fmt.Errorf("failed to create car: %w", err)
	}

	return &car, nil
}

// Update applies the non-nil fields of req to a car
func (r *CarRepository) Update(id int64, req models.UpdateCarRequest) (*models.Car, error) {
	var features interface{}
	if req.Features != nil {
		features = pq.Array(req.Features)
	}

	query := `
		UPDATE cars
		SET name = COALESCE($2, name),
		    category = COALESCE($3, category),
		    price_per_day = COALESCE($4, price_per_day),
		    seats = COALESCE($5, seats),
		    transmission = COALESCE($6, transmission),
		    fuel = COALESCE($7, fuel),
		    image_url = COALESCE($8, image_url),
		    description = COALESCE($9, description),
		    features = COALESCE($10, features),
		    active = COALESCE($11, active),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + carColumns

	var car models.Car
	err := r.db.Get(&car, query, id,
		req.Name, req.Category, req.PricePerDay, req.Seats, req.Transmission,
		req.Fuel, req.ImageURL, req.Description, features, req.Active)
	if err != nil {
		return nil, err
	}

	return &car, nil
}

// Delete removes a car
func (r *CarRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete car: %w", err)
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

// SitemapRefs projects id and update time for active cars
func (r *CarRepository) SitemapRefs() ([]models.SitemapRef, error) {
	query := `
		SELECT id::text AS ref, updated_at
		FROM cars
		WHERE active = true
		ORDER BY id
	`

	refs := []models.SitemapRef{}
	if err := r.db.Select(&refs, query); err != nil {
		return nil, fmt.Errorf("failed to project car sitemap refs: %w", err)
	}

	return refs, nil
}
