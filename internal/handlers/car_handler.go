package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/gin-gonic/gin"
)

// CarHandler serves the public fleet listing and the admin CRUD
type CarHandler struct {
	repo *database.CarRepository
}

// NewCarHandler creates a new CarHandler
func NewCarHandler(repo *database.CarRepository) *CarHandler {
	return &CarHandler{repo: repo}
}

// ListActive retrieves active cars for the public site
// GET /api/cars
func (h *CarHandler) ListActive(c *gin.Context) {
	cars, err := h.repo.GetActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cars"})
		return
	}

	c.JSON(http.StatusOK, cars)
}

// GetActiveByID retrieves a single active car
// GET /api/cars/:id
func (h *CarHandler) GetActiveByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car id"})
		return
	}

	car, err := h.repo.GetActiveByID(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch car"})
		return
	}

	c.JSON(http.StatusOK, car)
}

// ListAll retrieves every car including inactive ones
// GET /api/admin/cars
func (h *CarHandler) ListAll(c *gin.Context) {
	cars, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cars"})
		return
	}

	c.JSON(http.StatusOK, cars)
}

// CreateCar creates a car
// POST /api/admin/cars
func (h *CarHandler) CreateCar(c *gin.Context) {
	var req models.CreateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	car, err := h.repo.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create car"})
		return
	}

	c.JSON(http.StatusCreated, car)
}

// UpdateCar applies a partial update to a car
// PUT /api/admin/cars/:id
func (h *CarHandler) UpdateCar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car id"})
		return
	}

	var req models.UpdateCarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	car, err := h.repo.Update(id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update car"})
		return
	}

	c.JSON(http.StatusOK, car)
}

// DeleteCar removes a car
// DELETE /api/admin/cars/:id
func (h *CarHandler) DeleteCar(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid car id"})
		return
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Car not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete car"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car deleted"})
}
