package dto

import "github.com/google/uuid"

// CreateStartupRequest represents the request to create a startup profile
type CreateStartupRequest struct {
	User            uuid.UUID `json:"user" binding:"required"`
	Name            string    `json:"name" binding:"required"`
	Description     string    `json:"description,omitempty"`
	Industry        string    `json:"industry,omitempty"`
	Location        string    `json:"location,omitempty"`
	LookingFor      []string  `json:"lookingFor,omitempty"`
	OpportunityType string    `json:"opportunityType,omitempty"`
	Duration        string    `json:"duration,omitempty"`
	Stipend         string    `json:"stipend,omitempty"`
	Requirements    string    `json:"requirements,omitempty"`
	ContactEmail    string    `json:"contactEmail,omitempty"`
	Website         string    `json:"website,omitempty"`
	TeamSize        string    `json:"teamSize,omitempty"`
	Funding         string    `json:"funding,omitempty"`
}

// UpdateStartupRequest represents the request to update a startup profile.
// Only provided fields are replaced.
type UpdateStartupRequest struct {
	Name            *string   `json:"name,omitempty"`
	Description     *string   `json:"description,omitempty"`
	Industry        *string   `json:"industry,omitempty"`
	Location        *string   `json:"location,omitempty"`
	LookingFor      *[]string `json:"lookingFor,omitempty"`
	OpportunityType *string   `json:"opportunityType,omitempty"`
	Duration        *string   `json:"duration,omitempty"`
	Stipend         *string   `json:"stipend,omitempty"`
	Requirements    *string   `json:"requirements,omitempty"`
	ContactEmail    *string   `json:"contactEmail,omitempty"`
	Website         *string   `json:"website,omitempty"`
	TeamSize        *string   `json:"teamSize,omitempty"`
	Funding         *string   `json:"funding,omitempty"`
}
