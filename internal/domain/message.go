package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message is a direct message between two accounts. There is no delivery
// or read-state tracking.
type Message struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FromID    uuid.UUID `gorm:"type:uuid;not null;index:idx_from_created" json:"from"`
	ToID      uuid.UUID `gorm:"type:uuid;not null;index" json:"to"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for Message
func (Message) TableName() string {
	return "messages"
}
