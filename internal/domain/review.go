package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Review is a peer review from one account about another.
type Review struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ReviewerID uuid.UUID `gorm:"type:uuid;not null;index" json:"reviewer"`
	RevieweeID uuid.UUID `gorm:"type:uuid;not null;index" json:"reviewee"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for Review
func (Review) TableName() string {
	return "reviews"
}
