package services

import (
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/atlasrides/rental-backend/internal/database"
)

// SettingsService reads admin-editable configuration values from the
// settings table.
type SettingsService struct {
	repo *database.SettingRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo *database.SettingRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the unwrapped value for a key. ok is false when the key
// has no row; err is non-nil only for transport failures, which the
// caller decides to default on or surface.
func (s *SettingsService) Get(key string) (value string, ok bool, err error) {
	setting, err := s.repo.GetByKey(key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}

	return UnwrapSettingValue(setting.Value), true, nil
}

// GetOrDefault returns the unwrapped value for a key, or def when the
// key is absent or the read fails.
func (s *SettingsService) GetOrDefault(key, def string) string {
	value, ok, err := s.Get(key)
	if err != nil || !ok {
		return def
	}
	return value
}

// UnwrapSettingValue normalizes historically double-encoded setting
// values. Some writers stored `"foo"` (a JSON string) and others `foo`
// (bare text); both must read back as `foo`. The unwrap is asymmetric:
// only applied when the stored text parses as a JSON string. This is a
// compatibility shim, not a contract; retire it once storage is
// normalized.
func UnwrapSettingValue(raw string) string {
	var unquoted string
	if err := json.Unmarshal([]byte(raw), &unquoted); err == nil {
		return unquoted
	}
	return raw
}
