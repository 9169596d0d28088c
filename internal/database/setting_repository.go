package database

import (
	"fmt"

	"github.com/atlasrides/rental-backend/internal/models"
)

// SettingRepository handles database operations for the settings table
type SettingRepository struct {
	db DB
}

// NewSettingRepository creates a new SettingRepository
func NewSettingRepository(db DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetAll retrieves all settings ordered by key
func (r *SettingRepository) GetAll() ([]models.Setting, error) {
	query := `
		SELECT id, key, value, updated_at
		FROM settings
		ORDER BY key
	`

	settings := []models.Setting{}
	if err := r.db.Select(&settings, query); err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	return settings, nil
}

// GetByKey retrieves a setting by its key. Returns sql.ErrNoRows when
// the key has no row.
func (r *SettingRepository) GetByKey(key string) (*models.Setting, error) {
	query := `
		SELECT id, key, value, updated_at
		FROM settings
		WHERE key = $1
	`

	var setting models.Setting
	if err := r.db.Get(&setting, query, key); err != nil {
		return nil, err
	}

	return &setting, nil
}

// Upsert creates or replaces the value for a key
func (r *SettingRepository) Upsert(key string, value string) error {
	query := `
		INSERT INTO settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := r.db.Exec(query, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, err)
	}

	return nil
}
