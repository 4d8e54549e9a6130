package database

import (
	"fmt"

	"estate-backend/internal/config"
	"estate-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and migrates the schema. The returned handle is
// safe for concurrent use and is passed into handler constructors; it is
// opened once at startup and closed once at shutdown.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the table for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Property{},
		&models.Customer{},
		&models.Sale{},
		&models.Lease{},
		&models.FinanceRecord{},
	)
}
