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

// BlogHandler serves the public blog listing and the admin CRUD
type BlogHandler struct {
	repo *database.BlogRepository
}

// NewBlogHandler creates a new BlogHandler
func NewBlogHandler(repo *database.BlogRepository) *BlogHandler {
	return &BlogHandler{repo: repo}
}

// ListPublished retrieves published posts for the public site
// GET /api/blogs
func (h *BlogHandler) ListPublished(c *gin.Context) {
	blogs, err := h.repo.GetPublished()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// GetBySlug retrieves a single published post by slug
// GET /api/blogs/:slug
func (h *BlogHandler) GetBySlug(c *gin.Context) {
	blog, err := h.repo.GetPublishedBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog post"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// ListAll retrieves every post including drafts
// GET /api/admin/blogs
func (h *BlogHandler) ListAll(c *gin.Context) {
	blogs, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch blog posts"})
		return
	}

	c.JSON(http.StatusOK, blogs)
}

// CreateBlog creates a post
// POST /api/admin/blogs
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req models.CreateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	blog, err := h.repo.Create(req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create blog post"})
		return
	}

	c.JSON(http.StatusCreated, blog)
}

// UpdateBlog applies a partial update to a post
// PUT /api/admin/blogs/:id
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog id"})
		return
	}

	var req models.UpdateBlogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	blog, err := h.repo.Update(id, req)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update blog post"})
		return
	}

	c.JSON(http.StatusOK, blog)
}

// DeleteBlog removes a post
// DELETE /api/admin/blogs/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid blog id"})
		return
	}

	if err := h.repo.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Blog post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete blog post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Blog post deleted"})
}
