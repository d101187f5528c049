package dto

import (
	"github.com/google/uuid"

	"skill-match-api/internal/domain"
)

// CreateApplicationRequest represents the request to submit an application
type CreateApplicationRequest struct {
	Student         uuid.UUID                `json:"student" binding:"required"`
	Startup         uuid.UUID                `json:"startup" binding:"required"`
	OpportunityType string                   `json:"opportunityType,omitempty"`
	Status          domain.ApplicationStatus `json:"status,omitempty"`
	MatchedSkills   []string                 `json:"matchedSkills,omitempty"`
}

// UpdateApplicationRequest represents the request to update an application,
// typically a status change.
type UpdateApplicationRequest struct {
	OpportunityType *string                   `json:"opportunityType,omitempty"`
	Status          *domain.ApplicationStatus `json:"status,omitempty"`
	MatchedSkills   *[]string                 `json:"matchedSkills,omitempty"`
}
