package config

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"bus_tracker/internal/models"
)

// InitDB opens the Postgres connection and runs migrations. The handle is
// returned to the caller instead of stashed in a package global so tests can
// substitute their own store.
func InitDB(cfg Config) (*gorm.DB, error) {
	db, err := connectWithRetry(cfg.DSN, 10, 2*time.Second)
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.User{}, &models.Bus{}, &models.LocationRecord{}); err != nil {
		return nil, fmt.Errorf("auto-migration failed: %w", err)
	}

	return db, nil
}

func connectWithRetry(dsn string, attempts int, delay time.Duration) (*gorm.DB, error) {
	var lastErr error
	for i := 1; i <= attempts; i++ {
		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			return db, nil
		}

		lastErr = err
		time.Sleep(delay)
	}

	return nil, fmt.Errorf("db connect failed after %d attempts: %w", attempts, lastErr)
}
