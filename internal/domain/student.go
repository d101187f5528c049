package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Student is a student profile. The owning account is optional: profiles
// created before sign-up completes carry no user reference.
type Student struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       *uuid.UUID                  `gorm:"type:uuid;index" json:"user,omitempty"`
	University   string                      `gorm:"not null" json:"university"`
	Year         string                      `gorm:"not null" json:"year"`
	Skills       datatypes.JSONSlice[string] `json:"skills"`
	Interests    datatypes.JSONSlice[string] `json:"interests"`
	Availability string                      `gorm:"not null" json:"availability"`
	Experience   string                      `json:"experience,omitempty"`
	Portfolio    string                      `json:"portfolio,omitempty"`
	Location     string                      `json:"location,omitempty"`
	CreatedAt    time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for Student
func (Student) TableName() string {
	return "students"
}
