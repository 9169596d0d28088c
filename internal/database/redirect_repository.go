package database

import (
	"database/sql"
	"fmt"

	"github.com/atlasrides/rental-backend/internal/models"
)

// RedirectRepository handles database operations for the redirects table
type RedirectRepository struct {
	db DB
}

// NewRedirectRepository creates a new RedirectRepository
func NewRedirectRepository(db DB) *RedirectRepository {
	return &RedirectRepository{db: db}
}

const redirectColumns = `id, from_path, to_path, active, created_at`

// FindActiveByPath retrieves the active redirect for an exact source
// path. The schema does not enforce uniqueness of active rows per
// path; the oldest row wins. Returns sql.ErrNoRows when no active
// mapping exists.
func (r *RedirectRepository) FindActiveByPath(path string) (*models.Redirect, error) {
	query := `
		SELECT ` + redirectColumns + `
		FROM redirects
		WHERE from_path = $1 AND active = true
		ORDER BY id
		LIMIT 1
	`

	var redirect models.Redirect
	if err := r.db.Get(&redirect, query, path); err != nil {
		return nil, err
	}

	return &redirect, nil
}

// GetAll retrieves all redirects
func (r *RedirectRepository) GetAll() ([]models.Redirect, error) {
	query := `
		SELECT ` + redirectColumns + `
		FROM redirects
		ORDER BY id
	`

	redirects := []models.Redirect{}
	if err := r.db.Select(&redirects, query); err != nil {
		return nil, fmt.Errorf("failed to list redirects: %w", err)
	}

	return redirects, nil
}

// Create inserts a new redirect and returns it
func (r *RedirectRepository) Create(req models.CreateRedirectRequest) (*models.Redirect, error) {
	query := `
		INSERT INTO redirects (from_path, to_path, active, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING ` + redirectColumns

	var redirect models.Redirect
	if err := r.db.Get(&redirect, query, req.FromPath, req.ToPath, req.Active); err != nil {
		return nil, fmt.Errorf("failed to create redirect: %w", err)
	}

	return &redirect, nil
}

// Update applies the non-nil fields of req to a redirect
func (r *RedirectRepository) Update(id int64, req models.UpdateRedirectRequest) (*models.Redirect, error) {
	query := `
		UPDATE redirects
		SET from_path = COALESCE($2, from_path),
		    to_path = COALESCE($3, to_path),
		    active = COALESCE($4, active)
		WHERE id = $1
		RETURNING ` + redirectColumns

	var redirect models.Redirect
	if err := r.db.Get(&redirect, query, id, req.FromPath, req.ToPath, req.Active); err != nil {
		return nil, err
	}

	return &redirect, nil
}

// Delete removes a redirect
func (r *RedirectRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM redirects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete redirect: %w", err)
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
