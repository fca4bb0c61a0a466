// Package userdir implements the user directory port against the ERP user
// tables. The workflow only reads these tables; user management lives in the
// wider system.
package userdir

import (
	"github.com/google/uuid"
)

// UserDTO represents an ERP user row.
type UserDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name   string
	Email  string `gorm:"uniqueIndex;not null"`
	Active bool
}

// TableName specifies the database table name for users.
func (UserDTO) TableName() string {
	return "users"
}

// MenuAccessDTO represents one menu capability granted to a user.
type MenuAccessDTO struct {
	UserID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	MenuCode string    `gorm:"primaryKey"`
}

// TableName specifies the database table name for menu grants.
func (MenuAccessDTO) TableName() string {
	return "user_menu_access"
}
