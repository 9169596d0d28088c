package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Server ServerConfig

	// Database configuration
	Database DatabaseConfig

	// JWT configuration
	JWT JWTConfig

	// Email gateway configuration
	Email EmailConfig

	// Site-wide defaults surfaced to the marketing frontend
	Site SiteConfig

	// Booking lifecycle configuration
	Booking BookingConfig

	// Contact form rate limiting configuration
	RateLimit RateLimitConfig

	// CORS configuration
	CORS CORSConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port        string
	Environment string // development, staging, production
	LogLevel    string // debug, info, warn, error
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	URL                string
	MaxConnections     int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration
}

// JWTConfig holds JWT-related configuration
type JWTConfig struct {
	Secret             string
	RefreshSecret      string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

// EmailConfig holds transactional email gateway configuration
type EmailConfig struct {
	APIURL    string
	APIKey    string
	FromEmail string // verified sender address
	ToEmail   string // contact-notification recipient
}

// SiteConfig holds site-wide defaults. Admin-editable settings in the
// database override these at request time.
type SiteConfig struct {
	BaseURL        string
	Phone          string
	WhatsApp       string
	MapEmbedURL    string
	FacebookURL    string
	InstagramURL   string
}

// BookingConfig holds booking lifecycle configuration
type BookingConfig struct {
	PendingTTL    time.Duration // pending bookings older than this are expired
	SweepInterval time.Duration
}

// RateLimitConfig holds contact form rate limiting configuration
type RateLimitConfig struct {
	Requests      int
	WindowMinutes int
}

// CORSConfig holds CORS-related configuration
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			Environment: getEnv("ENVIRONMENT", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Database: DatabaseConfig{
			URL:                getEnv("DATABASE_URL", ""),
			MaxConnections:     getEnvAsInt("DATABASE_MAX_CONNECTIONS", 10),
			MaxIdleConnections: getEnvAsInt("DATABASE_MAX_IDLE_CONNECTIONS", 5),
			ConnMaxLifetime:    time.Duration(getEnvAsInt("DATABASE_CONN_MAX_LIFETIME", 300)) * time.Second,
		},
		JWT: JWTConfig{
			Secret:             getEnv("JWT_SECRET", ""),
			RefreshSecret:      getEnv("JWT_REFRESH_SECRET", ""),
			AccessTokenExpiry:  time.Duration(getEnvAsInt("JWT_ACCESS_TOKEN_EXPIRY", 3600)) * time.Second,
			RefreshTokenExpiry: time.Duration(getEnvAsInt("JWT_REFRESH_TOKEN_EXPIRY", 604800)) * time.Second,
		},
		Email: EmailConfig{
			APIURL:    getEnv("EMAIL_API_URL", "https://api.resend.com"),
			APIKey:    getEnv("EMAIL_API_KEY", ""),
			FromEmail: getEnv("EMAIL_FROM_ADDRESS", ""),
			ToEmail:   getEnv("CONTACT_TO_ADDRESS", ""),
		},
		Site: SiteConfig{
			BaseURL:      strings.TrimRight(getEnv("SITE_BASE_URL", "https://www.atlasrides.com"), "/"),
			Phone:        getEnv("SITE_PHONE", "+971 50 123 4567"),
			WhatsApp:     getEnv("SITE_WHATSAPP", "+971501234567"),
			MapEmbedURL:  getEnv("SITE_MAP_EMBED_URL", ""),
			FacebookURL:  getEnv("SITE_FACEBOOK_URL", "https://facebook.com/atlasrides"),
			InstagramURL: getEnv("SITE_INSTAGRAM_URL", "https://instagram.com/atlasrides"),
		},
		Booking: BookingConfig{
			PendingTTL:    time.Duration(getEnvAsInt("BOOKING_PENDING_TTL_HOURS", 48)) * time.Hour,
			SweepInterval: time.Duration(getEnvAsInt("BOOKING_SWEEP_INTERVAL_MINUTES", 30)) * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Requests:      getEnvAsInt("CONTACT_RATE_LIMIT", 5),
			WindowMinutes: getEnvAsInt("CONTACT_RATE_WINDOW_MINUTES", 10),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
			AllowedMethods: getEnvAsSlice("CORS_ALLOWED_METHODS", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}),
			AllowedHeaders: getEnvAsSlice("CORS_ALLOWED_HEADERS", []string{"Content-Type", "Authorization"}),
		},
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}

	if c.JWT.RefreshSecret == "" {
		return fmt.Errorf("JWT_REFRESH_SECRET is required")
	}

	// Email delivery is optional at boot; the contact relay reports a
	// distinct configuration error at request time when unset.
	return nil
}

// EmailConfigured reports whether the contact relay has everything it
// needs to actually deliver mail.
func (c *Config) EmailConfigured() bool {
	return c.Email.APIKey != "" && c.Email.FromEmail != "" && c.Email.ToEmail != ""
}

// Helper functions to get environment variables

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var result []string
	for _, v := range strings.Split(valueStr, ",") {
		trimmed := strings.TrimSpace(v)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	if len(result) == 0 {
		return defaultValue
	}
	return result
}
