package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role determines which side of the marketplace an account belongs to.
type Role string

const (
	RoleStudent Role = "student"
	RoleStartup Role = "startup"
	RoleAdmin   Role = "admin"
)

// ValidRole reports whether r is one of the known account roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleStartup, RoleAdmin:
		return true
	}
	return false
}

// User represents an account in the system
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      Role      `gorm:"type:varchar(20);not null;default:'student'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
