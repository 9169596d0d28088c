package database

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSettingByKey(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSettingRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM settings WHERE key`).
			WithArgs("robots_txt").
			WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value", "updated_at"}).
				AddRow(1, "robots_txt", `"User-agent: *\nAllow: /"`, now))

		setting, err := repo.GetByKey("robots_txt")
		require.NoError(t, err)
		assert.Equal(t, "robots_txt", setting.Key)
		assert.Equal(t, `"User-agent: *\nAllow: /"`, setting.Value)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Key", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM settings WHERE key`).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		setting, err := repo.GetByKey("missing")
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, setting)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetAllSettings(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSettingRepository(db)

	t.Run("Success", func(t *testing.T) {
		now := time.Now()

		mock.ExpectQuery(`SELECT (.+) FROM settings`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "key", "value", "updated_at"}).
				AddRow(1, "addon_prices", `{"gps": 5}`, now).
				AddRow(2, "robots_txt", "User-agent: *", now))

		settings, err := repo.GetAll()
		require.NoError(t, err)
		require.Len(t, settings, 2)
		assert.Equal(t, "addon_prices", settings[0].Key)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM settings`).
			WillReturnError(fmt.Errorf("database error"))

		settings, err := repo.GetAll()
		assert.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "failed to list settings")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpsertSetting(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewSettingRepository(db)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO settings`).
			WithArgs("robots_txt", "User-agent: *").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Upsert("robots_txt", "User-agent: *")
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectExec(`INSERT INTO settings`).
			WithArgs("robots_txt", "x").
			WillReturnError(fmt.Errorf("database error"))

		err := repo.Upsert("robots_txt", "x")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to upsert setting")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
