package database

import (
	"fmt"

	"gorm.io/gorm"

	"skill-match-api/internal/domain"
)

// AutoMigrate runs schema migration for all models
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Student{},
		&domain.Startup{},
		&domain.Application{},
		&domain.Message{},
		&domain.Event{},
		&domain.Review{},
	); err != nil {
		return fmt.Errorf("failed to run auto migration: %w", err)
	}

	return nil
}
