package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"skill-match-api/internal/domain"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Student{},
		&domain.Startup{},
		&domain.Application{},
		&domain.Message{},
		&domain.Event{},
		&domain.Review{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	return db
}
