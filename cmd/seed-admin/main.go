package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atlasrides/rental-backend/internal/config"
	"github.com/atlasrides/rental-backend/internal/database"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// Creates or updates a back-office admin account. Passwords are read
// from a flag rather than stdin so the command works in CI seeds.
func main() {
	var (
		email       string
		password    string
		displayName string
	)
	flag.StringVar(&email, "email", "", "admin email address")
	flag.StringVar(&password, "password", "", "admin password")
	flag.StringVar(&displayName, "name", "Site Admin", "display name")
	flag.Parse()

	_ = godotenv.Load()

	if email == "" || password == "" {
		log.Fatal("-email and -password are required")
	}
	if !strings.Contains(email, "@") {
		log.Fatal("email must be a valid address")
	}
	if len(password) < 12 {
		log.Fatal("password must be at least 12 characters")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := database.NewConnection(config.DatabaseConfig{
		URL:                dbURL,
		MaxConnections:     2,
		MaxIdleConnections: 1,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	query := `
		INSERT INTO profiles (id, email, password_hash, display_name, role, created_at)
		VALUES ($1, lower($2), $3, $4, 'admin', NOW())
		ON CONFLICT (email)
		DO UPDATE SET password_hash = EXCLUDED.password_hash, display_name = EXCLUDED.display_name
	`

	if _, err := db.Exec(query, uuid.New(), email, string(hash), displayName); err != nil {
		log.Fatalf("failed to upsert admin profile: %v", err)
	}

	fmt.Printf("Admin account ready: %s\n", strings.ToLower(email))
}
