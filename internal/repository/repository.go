package repository

import (
	"gorm.io/gorm"

	"skill-match-api/internal/database"
)

// conn resolves the gorm handle on every call. When the process starts with
// the database unreachable the repositories are wired with a nil handle and
// the live connection arrives later through database.SetDB, so the handle
// must not be captured at construction time.
type conn struct {
	injected *gorm.DB
}

func (c conn) get() (*gorm.DB, error) {
	if c.injected != nil {
		return c.injected, nil
	}
	if db := database.GetDB(); db != nil {
		return db, nil
	}
	return nil, database.ErrNotConnected
}
