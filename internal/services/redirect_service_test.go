package services

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/stretchr/testify/assert"
)

func TestRedirectResolve(t *testing.T) {
	db, mock := newTestDB(t)
	service := NewRedirectService(database.NewRedirectRepository(db), testLogger())

	t.Run("Active Redirect Resolves", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM redirects WHERE from_path = \$1 AND active = true ORDER BY id LIMIT 1`).
			WithArgs("/old-fleet").
			WillReturnRows(sqlmock.NewRows([]string{"id", "from_path", "to_path", "active", "created_at"}).
				AddRow(1, "/old-fleet", "/cars", true, time.Now()))

		resolution := service.Resolve("/old-fleet")
		assert.True(t, resolution.Redirect)
		assert.Equal(t, "/cars", resolution.ToPath)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Mapping Means No Redirect", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM redirects WHERE from_path = \$1 AND active = true ORDER BY id LIMIT 1`).
			WithArgs("/current-page").
			WillReturnError(sql.ErrNoRows)

		resolution := service.Resolve("/current-page")
		assert.False(t, resolution.Redirect)
		assert.Empty(t, resolution.ToPath)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lookup Failure Degrades To No Redirect", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM redirects WHERE from_path = \$1 AND active = true ORDER BY id LIMIT 1`).
			WithArgs("/old-fleet").
			WillReturnError(fmt.Errorf("connection reset"))

		resolution := service.Resolve("/old-fleet")
		assert.False(t, resolution.Redirect)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
