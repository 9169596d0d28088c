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

// FAQHandler serves the public FAQ list and the admin CRUD
type FAQHandler struct {
	repo *database.FAQRepository
}

// NewFAQHandler creates a new FAQHandler
func NewFAQHandler(repo *database.FAQRepository) *FAQHandler {
	return &FAQHandler{repo: repo}
}

// ListActive retrieves active FAQs in sort order
// GET /api/faqs
func (h *FAQHandler) ListActive(c *gin.Context) {
	faqs, err := h.repo.GetActive()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch FAQs"})
		return
	}

	c.JSON(http.StatusOK, faqs)
}

// ListAll retrieves every FAQ including inactive ones
// GET /api/admin/faqs
func (h *FAQHandler) ListAll(c *gin.Context) {
	faqs, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch FAQs"})
		return
	}

	c.JSON(http.StatusOK, faqs)
}

// CreateFAQ creates an FAQ
// POST /api/admin/faqs
func (h *FAQHandler) CreateFAQ(c *gin.Context) {
	var req models.CreateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	faq, err := h.repo.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create FAQ"})
		return
	}

	c.JSON(http.StatusCreated, faq)
}

// UpdateFAQ applies a partial update to an FAQ
// PUT /api/admin/faqs/:id
func (h *FAQHandler) UpdateFAQ(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid FAQ id"})
		return
	}

	var req models.UpdateFAQRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	faq, err := h.repo.Update(id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update FAQ"})
		return
	}

	c.JSON(http.StatusOK, faq)
}

// DeleteFAQ removes an FAQ
// DELETE /api/admin/faqs/:id
func (h *FAQHandler) DeleteFAQ(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid FAQ id"})
		return
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "FAQ not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete FAQ"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "FAQ deleted"})
}
