package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Startup is a startup profile owned by a startup-role account.
type Startup struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user"`
	Name            string                      `gorm:"not null" json:"name"`
	Description     string                      `gorm:"type:text" json:"description,omitempty"`
	Industry        string                      `json:"industry,omitempty"`
	Location        string                      `json:"location,omitempty"`
	LookingFor      datatypes.JSONSlice[string] `json:"lookingFor"`
	OpportunityType string                      `json:"opportunityType,omitempty"`
	Duration        string                      `json:"duration,omitempty"`
	Stipend         string                      `json:"stipend,omitempty"`
	Requirements    string                      `gorm:"type:text" json:"requirements,omitempty"`
	ContactEmail    string                      `json:"contactEmail,omitempty"`
	Website         string                      `json:"website,omitempty"`
	TeamSize        string                      `json:"teamSize,omitempty"`
	Funding         string                      `json:"funding,omitempty"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for Startup
func (Startup) TableName() string {
	return "startups"
}
