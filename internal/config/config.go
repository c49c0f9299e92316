package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the service reads from the environment.
type Config struct {
	ListenAddr string
	DSN        string

	// Timezone used when a location report arrives without a recorded_at
	// value (and to interpret zone-less caller timestamps).
	Timezone *time.Location

	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from environment variables, with .env as a
// convenience overlay for local development.
func Load() (Config, error) {
	// Load .env (if present)
	_ = godotenv.Load()

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "bustracker")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, dbname, port, sslmode,
	)

	tzName := getEnv("SERVICE_TIMEZONE", "UTC")
	tz, err := time.LoadLocation(tzName)
	if err != nil {
		return Config{}, fmt.Errorf("invalid SERVICE_TIMEZONE %q: %w", tzName, err)
	}

	return Config{
		ListenAddr: "0.0.0.0:" + getEnv("PORT", "8080"),
		DSN:        dsn,
		Timezone:   tz,
		JWTSecret:  getEnv("JWT_SECRET", "supersecret"),
		TokenTTL:   72 * time.Hour,
	}, nil
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
