package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/atlasrides/rental-backend/internal/services"
	"github.com/atlasrides/rental-backend/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// BookingHandler accepts public booking requests and exposes the admin
// booking queue.
type BookingHandler struct {
	service *services.BookingService
	repo    *database.BookingRepository
	logger  *logrus.Logger
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(service *services.BookingService, repo *database.BookingRepository, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{service: service, repo: repo, logger: logger}
}

// CreateBooking accepts a public booking request
// POST /api/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	booking, err := h.service.CreateBooking(req, utils.SummarizeUserAgent(c.Request.UserAgent()))
	if err != nil {
		var validationErr *services.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		case errors.Is(err, services.ErrItemUnavailable):
			c.JSON(http.StatusNotFound, gin.H{"error": "The requested car or tour is not available"})
		default:
			h.logger.WithError(err).Error("booking creation failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookings retrieves bookings, optionally filtered by status
// GET /api/admin/bookings?status=pending
func (h *BookingHandler) ListBookings(c *gin.Context) {
	status := c.Query("status")
	if status != "" && !models.ValidBookingStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
		return
	}

	bookings, err := h.repo.List(status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// GetBooking retrieves a single booking
// GET /api/admin/bookings/:id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	booking, err := h.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch booking"})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBookingStatus changes a booking's status
// PUT /api/admin/bookings/:id/status
func (h *BookingHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return
	}

	var req models.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if !models.ValidBookingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking status"})
		return
	}

	if err := h.repo.UpdateStatus(id, req.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking updated"})
}
