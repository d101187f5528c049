package dto

import "github.com/google/uuid"

// CreateStudentRequest represents the request to create a student profile.
// The schema intentionally has no name field: display names come from the
// linked account.
type CreateStudentRequest struct {
	User         *uuid.UUID `json:"user,omitempty"`
	University   string     `json:"university" binding:"required"`
	Year         string     `json:"year" binding:"required"`
	Skills       []string   `json:"skills,omitempty"`
	Interests    []string   `json:"interests,omitempty"`
	Availability string     `json:"availability" binding:"required"`
	Experience   string     `json:"experience,omitempty"`
	Portfolio    string     `json:"portfolio,omitempty"`
	Location     string     `json:"location,omitempty"`
}

// UpdateStudentRequest represents the request to update a student profile.
// Only provided fields are replaced.
type UpdateStudentRequest struct {
	University   *string   `json:"university,omitempty"`
	Year         *string   `json:"year,omitempty"`
	Skills       *[]string `json:"skills,omitempty"`
	Interests    *[]string `json:"interests,omitempty"`
	Availability *string   `json:"availability,omitempty"`
	Experience   *string   `json:"experience,omitempty"`
	Portfolio    *string   `json:"portfolio,omitempty"`
	Location     *string   `json:"location,omitempty"`
}
