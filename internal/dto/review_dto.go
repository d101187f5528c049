package dto

import "github.com/google/uuid"

// CreateReviewRequest represents the request to leave a review. Rating is
// a closed 1-5 range.
type CreateReviewRequest struct {
	Reviewer uuid.UUID `json:"reviewer" binding:"required"`
	Reviewee uuid.UUID `json:"reviewee" binding:"required"`
	Rating   int       `json:"rating" binding:"required,min=1,max=5"`
	Comment  string    `json:"comment,omitempty"`
}

// UpdateReviewRequest represents the request to update a review.
// Only provided fields are replaced.
type UpdateReviewRequest struct {
	Rating  *int    `json:"rating,omitempty"`
	Comment *string `json:"comment,omitempty"`
}
