package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Event is a community event. Participants is an ordered list of user ids;
// the same user may appear more than once (join is not deduplicated).
type Event struct {
	ID           uuid.UUID                      `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string                         `gorm:"not null" json:"title"`
	Description  string                         `gorm:"type:text" json:"description,omitempty"`
	Type         string                         `json:"type,omitempty"`
	Date         *time.Time                     `json:"date,omitempty"`
	Location     string                         `json:"location,omitempty"`
	CreatedByID  uuid.UUID                      `gorm:"type:uuid;index" json:"createdBy"`
	Participants datatypes.JSONSlice[uuid.UUID] `json:"participants"`
	CreatedAt    time.Time                      `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for Event
func (Event) TableName() string {
	return "events"
}
