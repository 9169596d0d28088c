package database

import (
	"database/sql"
	"fmt"

	"github.com/atlasrides/rental-backend/internal/models"
)

// LocationRepository handles database operations for the locations table
type LocationRepository struct {
	db DB
}

// NewLocationRepository creates a new LocationRepository
func NewLocationRepository(db DB) *LocationRepository {
	return &LocationRepository{db: db}
}

const locationColumns = `id, name, address, map_url, active`

// GetActive retrieves open branches
func (r *LocationRepository) GetActive() ([]models.Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE active = true
		ORDER BY name
	`

	locations := []models.Location{}
	if err := r.db.Select(&locations, query); err != nil {
		return nil, fmt.Errorf("failed to list active locations: %w", err)
	}

	return locations, nil
}

// GetAll retrieves all branches
func (r *LocationRepository) GetAll() ([]models.Location, error) {
	query := `
		SELECT ` + locationColumns + `
		FROM locations
		ORDER BY name
	`

	locations := []models.Location{}
	if err := r.db.Select(&locations, query); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	return locations, nil
}

// Create inserts a new branch and returns it
func (r *LocationRepository) Create(req models.CreateLocationRequest) (*models.Location, error) {
	query := `
		INSERT INTO locations (name, address, map_url, active)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + locationColumns

	var location models.Location
	if err := r.db.Get(&location, query, req.Name, req.Address, req.MapURL, req.Active); err != nil {
		return nil, fmt.Errorf("failed to create location: %w", err)
	}

	return &location, nil
}

// Update applies the non-nil fields of req to a branch
func (r *LocationRepository) Update(id int64, req models.UpdateLocationRequest) (*models.Location, error) {
	query := `
		UPDATE locations
		SET name = COALESCE($2, name),
		    address = COALESCE($3, address),
		    map_url = COALESCE($4, map_url),
		    active = COALESCE($5, active)
		WHERE id = $1
		RETURNING ` + locationColumns

	var location models.Location
	if err := r.db.Get(&location, query, id, req.Name, req.Address, req.MapURL, req.Active); err != nil {
		return nil, err
	}

	return &location, nil
}

// Delete removes a branch
func (r *LocationRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM locations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete location: %w", err)
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
