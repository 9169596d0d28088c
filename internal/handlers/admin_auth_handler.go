package handlers

import (
	"errors"
	"net/http"

	"github.com/atlasrides/rental-backend/internal/middleware"
	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/atlasrides/rental-backend/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AdminAuthHandler serves back-office login and token refresh
type AdminAuthHandler struct {
	service *services.AdminAuthService
	logger  *logrus.Logger
}

// NewAdminAuthHandler creates a new AdminAuthHandler
func NewAdminAuthHandler(service *services.AdminAuthService, logger *logrus.Logger) *AdminAuthHandler {
	return &AdminAuthHandler{service: service, logger: logger}
}

// Login authenticates an admin and returns a token pair
// POST /api/admin/auth/login
func (h *AdminAuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	tokens, profile, err := h.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		h.logger.WithError(err).Error("admin login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tokens":  tokens,
		"profile": profile,
	})
}

// Refresh exchanges a refresh token for a new token pair
// POST /api/admin/auth/refresh
func (h *AdminAuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	tokens, err := h.service.Refresh(req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidRefreshToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
			return
		}
		h.logger.WithError(err).Error("token refresh failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Refresh failed"})
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Me returns the authenticated admin's identity
// GET /api/admin/auth/me
func (h *AdminAuthHandler) Me(c *gin.Context) {
	admin, ok := middleware.GetAdmin(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, admin)
}
