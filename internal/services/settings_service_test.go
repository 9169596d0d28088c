package services

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapSettingValue(t *testing.T) {
	tests := []struct {
		name   string
		stored string
		want   string
	}{
		{
			name:   "Double Encoded String",
			stored: `"User-agent: *"`,
			want:   "User-agent: *",
		},
		{
			name:   "Bare Text",
			stored: "User-agent: *",
			want:   "User-agent: *",
		},
		{
			name:   "JSON Object Left Intact",
			stored: `{"gps": 5, "child_seat": 3}`,
			want:   `{"gps": 5, "child_seat": 3}`,
		},
		{
			name:   "JSON Array Left Intact",
			stored: `["a", "b"]`,
			want:   `["a", "b"]`,
		},
		{
			name:   "Encoded Empty String",
			stored: `""`,
			want:   "",
		},
		{
			name:   "Empty Input",
			stored: "",
			want:   "",
		},
		{
			name:   "Escaped Newlines Stay Literal Without Quotes",
			stored: `line1\nline2`,
			want:   `line1\nline2`,
		},
		{
			name:   "Quoted Value Unescapes Newlines",
			stored: `"line1\nline2"`,
			want:   "line1\nline2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UnwrapSettingValue(tt.stored))
		})
	}
}

// The unwrap must be idempotent: a value that already reads as plain
// text comes back unchanged on a second pass.
func TestUnwrapSettingValueIdempotent(t *testing.T) {
	for _, stored := range []string{`"wrapped"`, "bare", `{"k": 1}`} {
		once := UnwrapSettingValue(stored)
		assert.Equal(t, once, UnwrapSettingValue(once), "input %q", stored)
	}
}

func TestSettingsServiceGet(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewSettingsService(database.NewSettingRepository(db))

	t.Run("Present Key Unwraps", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM settings WHERE key`).
			WithArgs("robots_txt").
			WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value", "updated_at"}).
				AddRow(1, "robots_txt", `"Disallow: /admin"`, time.Now()))

		value, ok, err := service.Get("robots_txt")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "Disallow: /admin", value)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Key Is Not An Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM settings WHERE key`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		value, ok, err := service.Get("missing")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Transport Failure Surfaces", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM settings WHERE key`).
			WithArgs("robots_txt").
			WillReturnError(fmt.Errorf("connection reset"))

		_, ok, err := service.Get("robots_txt")
		assert.Error(t, err)
		assert.False(t, ok)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSettingsServiceGetOrDefault(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewSettingsService(database.NewSettingRepository(db))

	t.Run("Falls Back On Missing Key", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM settings WHERE key`).
			WithArgs("head_scripts").
			WillReturnError(sql.ErrNoRows)

		assert.Equal(t, "default", service.GetOrDefault("head_scripts", "default"))
	})

	t.Run("Falls Back On Transport Failure", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM settings WHERE key`).
			WithArgs("head_scripts").
			WillReturnError(fmt.Errorf("connection reset"))

		assert.Equal(t, "default", service.GetOrDefault("head_scripts", "default"))
	})
}
