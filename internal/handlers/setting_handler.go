package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/atlasrides/rental-backend/internal/models"
	"github.com/atlasrides/rental-backend/internal/services"
	"github.com/gin-gonic/gin"
)

// SettingHandler exposes the admin settings store and the public
// read-only endpoints the site shell needs (head scripts, addon prices).
type SettingHandler struct {
	repo     *database.SettingRepository
	settings *services.SettingsService
}

// NewSettingHandler creates a new SettingHandler
func NewSettingHandler(repo *database.SettingRepository, settings *services.SettingsService) *SettingHandler {
	return &SettingHandler{repo: repo, settings: settings}
}

// GetPublicSetting serves one of the whitelisted public settings,
// unwrapped. Keys outside the whitelist read as 404 so the settings
// table never leaks through this endpoint.
// GET /api/settings/:key
func (h *SettingHandler) GetPublicSetting(c *gin.Context) {
	key := c.Param("key")
	switch key {
	case models.SettingHeadScripts, models.SettingAddonPrices:
	default:
		c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
		return
	}

	value, ok, err := h.settings.Get(key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch setting"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "value": value})
}

// ListSettings retrieves all settings with raw stored values
// GET /api/admin/settings
func (h *SettingHandler) ListSettings(c *gin.Context) {
	settings, err := h.repo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// GetSetting retrieves a single setting by key, both the raw stored
// value and the unwrapped one.
// GET /api/admin/settings/:key
func (h *SettingHandler) GetSetting(c *gin.Context) {
	setting, err := h.repo.GetByKey(c.Param("key"))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Setting not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch setting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"setting": setting,
		"value":   services.UnwrapSettingValue(setting.Value),
	})
}

// UpsertSetting creates or replaces a setting value
// PUT /api/admin/settings/:key
func (h *SettingHandler) UpsertSetting(c *gin.Context) {
	key := c.Param("key")

	var req models.UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if err := h.repo.Upsert(key, req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"key": key, "value": services.UnwrapSettingValue(req.Value)})
}
