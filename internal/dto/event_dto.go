package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateEventRequest represents the request to create an event. CreatedBy
// is stamped from the authenticated session, not the payload.
type CreateEventRequest struct {
	Title        string      `json:"title" binding:"required"`
	Description  string      `json:"description,omitempty"`
	Type         string      `json:"type,omitempty"`
	Date         *time.Time  `json:"date,omitempty"`
	Location     string      `json:"location,omitempty"`
	Participants []uuid.UUID `json:"participants,omitempty"`
}

// UpdateEventRequest represents the request to update an event.
// Only provided fields are replaced.
type UpdateEventRequest struct {
	Title        *string      `json:"title,omitempty"`
	Description  *string      `json:"description,omitempty"`
	Type         *string      `json:"type,omitempty"`
	Date         *time.Time   `json:"date,omitempty"`
	Location     *string      `json:"location,omitempty"`
	Participants *[]uuid.UUID `json:"participants,omitempty"`
}
