package models

import (
	"time"
)

// Setting represents an admin-editable site configuration value.
// Values are stored as text and may carry one level of historical
// JSON double-encoding (see services.UnwrapSettingValue).
type Setting struct {
	ID        int64     `json:"id" db:"id"`
	Key       string    `json:"key" db:"key"`
	Value     string    `json:"value" db:"value"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// UpsertSettingRequest represents the request to create or update a setting
type UpsertSettingRequest struct {
	Value string `json:"value" binding:"required"`
}

// Well-known setting keys
const (
	SettingRobotsTxt   = "robots_txt"
	SettingHeadScripts = "head_scripts"
	SettingAddonPrices = "addon_prices"
)
