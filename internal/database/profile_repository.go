package database

import (
	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/google/uuid"
)

// ProfileRepository handles database operations for the profiles table
type ProfileRepository struct {
	db DB
}

// NewProfileRepository creates a new ProfileRepository
func NewProfileRepository(db DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

const profileColumns = `id, email, password_hash, display_name, role, created_at`

// GetByEmail retrieves a back-office account by email. Returns
// sql.ErrNoRows for unknown accounts.
func (r *ProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE lower(email) = lower($1)
	`

	var profile models.Profile
	if err := r.db.Get(&profile, query, email); err != nil {
		return nil, err
	}

	return &profile, nil
}

// GetByID retrieves a back-office account by id
func (r *ProfileRepository) GetByID(id uuid.UUID) (*models.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE id = $1
	`

	var profile models.Profile
	if err := r.db.Get(&profile, query, id); err != nil {
		return nil, err
	}

	return &profile, nil
}
