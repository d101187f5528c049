package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ApplicationStatus is the review state of an application.
type ApplicationStatus string

const (
	StatusPending   ApplicationStatus = "Pending"
	StatusAccepted  ApplicationStatus = "Accepted"
	StatusRejected  ApplicationStatus = "Rejected"
	StatusInterview ApplicationStatus = "Interview"
)

// ValidApplicationStatus reports whether s is one of the four known states.
func ValidApplicationStatus(s ApplicationStatus) bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusInterview:
		return true
	}
	return false
}

// Application links a student to a startup opportunity. Duplicate
// (student, startup) pairs are allowed; a student may re-apply.
// Referenced rows are checked at create time only — deleting a student
// later leaves the stored id dangling on purpose.
type Application struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	StudentID       uuid.UUID                   `gorm:"type:uuid;not null;index" json:"student"`
	StartupID       uuid.UUID                   `gorm:"type:uuid;not null;index" json:"startup"`
	OpportunityType string                      `json:"opportunityType,omitempty"`
	Status          ApplicationStatus           `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	MatchedSkills   datatypes.JSONSlice[string] `json:"matchedSkills"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for Application
func (Application) TableName() string {
	return "applications"
}
