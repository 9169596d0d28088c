package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/atlasrides/rental-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// RedirectHandler serves the client's route-change redirect check and
// the admin CRUD over the redirects table.
type RedirectHandler struct {
	resolver *services.RedirectService
	repo     *database.RedirectRepository
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(resolver *services.RedirectService, repo *database.RedirectRepository) *RedirectHandler {
	return &RedirectHandler{resolver: resolver, repo: repo}
}

// Resolve answers whether a path has an active redirect
// GET /api/redirects/resolve?path=/old
func (h *RedirectHandler) Resolve(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path query parameter is required"})
		return
	}

	c.JSON(http.StatusOK, h.resolver.Resolve(path))
}

// ListRedirects retrieves all redirects
// GET /api/admin/redirects
func (h *RedirectHandler) ListRedirects(c *gin.Context) {
	redirects, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch redirects"})
		return
	}

	c.JSON(http.StatusOK, redirects)
}

// CreateRedirect creates a redirect
// POST /api/admin/redirects
func (h *RedirectHandler) CreateRedirect(c *gin.Context) {
	var req models.CreateRedirectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if req.FromPath == req.ToPath {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from_path and to_path must differ"})
		return
	}

	redirect, err := h.repo.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create redirect"})
		return
	}

	c.JSON(http.StatusCreated, redirect)
}

// UpdateRedirect updates a redirect
// PUT /api/admin/redirects/:id
func (h *RedirectHandler) UpdateRedirect(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid redirect id"})
		return
	}

	var req models.UpdateRedirectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	redirect, err := h.repo.Update(id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Redirect not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update redirect"})
		return
	}

	c.JSON(http.StatusOK, redirect)
}

// DeleteRedirect removes a redirect
// DELETE /api/admin/redirects/:id
func (h *RedirectHandler) DeleteRedirect(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid redirect id"})
		return
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Redirect not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete redirect"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Redirect deleted"})
}
