package database

import (
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookingRows(id uuid.UUID, reference, status string, created time.Time) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "reference", "kind", "item_id", "customer_name", "customer_email",
		"customer_phone", "start_date", "end_date", "status", "notes",
		"user_agent", "created_at", "updated_at",
	}).AddRow(
		id, reference, "car", int64(7), "Jane Doe", "jane@example.com",
		"+971501234567", created, created.AddDate(0, 0, 3), status, nil,
		nil, created, created,
	)
}

func TestCreateBooking(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepository(db)

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		now := time.Now()
		booking := &models.Booking{
			ID:            id,
			Reference:     "AR-1A2B3C4D",
			Kind:          "car",
			ItemID:        7,
			CustomerName:  "Jane Doe",
			CustomerEmail: "jane@example.com",
			CustomerPhone: "+971501234567",
			StartDate:     now,
			EndDate:       now.AddDate(0, 0, 3),
			Status:        models.BookingStatusPending,
		}

		mock.ExpectQuery(`INSERT INTO bookings`).
			WillReturnRows(bookingRows(id, "AR-1A2B3C4D", "pending", now))

		created, err := repo.Create(booking)
		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
		assert.Equal(t, "AR-1A2B3C4D", created.Reference)
		assert.Equal(t, models.BookingStatusPending, created.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO bookings`).
			WillReturnError(fmt.Errorf("database error"))

		created, err := repo.Create(&models.Booking{ID: uuid.New()})
		assert.Error(t, err)
		assert.Nil(t, created)
		assert.Contains(t, err.Error(), "failed to create booking")

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListBookings(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepository(db)

	t.Run("Filtered By Status", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM bookings`).
			WithArgs("pending").
			WillReturnRows(bookingRows(uuid.New(), "AR-1A2B3C4D", "pending", time.Now()))

		bookings, err := repo.List("pending")
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, "pending", bookings[0].Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Result", func(t *testing.T) {
		mock.ExpectQuery(`SELECT (.+) FROM bookings`).
			WithArgs("").
			WillReturnRows(sqlmock.NewRows([]string{
				"id", "reference", "kind", "item_id", "customer_name", "customer_email",
				"customer_phone", "start_date", "end_date", "status", "notes",
				"user_agent", "created_at", "updated_at",
			}))

		bookings, err := repo.List("")
		require.NoError(t, err)
		assert.Empty(t, bookings)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateBookingStatus(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepository(db)

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectExec(`UPDATE bookings SET status`).
			WithArgs(id, "confirmed").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(id, "confirmed")
		require.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Missing Booking", func(t *testing.T) {
		id := uuid.New()

		mock.ExpectExec(`UPDATE bookings SET status`).
			WithArgs(id, "confirmed").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(id, "confirmed")
		assert.ErrorIs(t, err, sql.ErrNoRows)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestExpirePending(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewBookingRepository(db)

	t.Run("Expires Stale Rows", func(t *testing.T) {
		cutoff := time.Now().Add(-48 * time.Hour)

		mock.ExpectExec(`UPDATE bookings`).
			WithArgs(models.BookingStatusExpired, models.BookingStatusPending, cutoff).
			WillReturnResult(sqlmock.NewResult(0, 3))

		expired, err := repo.ExpirePending(cutoff)
		require.NoError(t, err)
		assert.Equal(t, int64(3), expired)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		cutoff := time.Now()

		mock.ExpectExec(`UPDATE bookings`).
			WillReturnError(fmt.Errorf("database error"))

		expired, err := repo.ExpirePending(cutoff)
		assert.Error(t, err)
		assert.Equal(t, int64(0), expired)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
