package models

import "time"

// Roles a user account can hold. The role is set at registration
// (default USER) and only changed out-of-band; no API mutates it.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is a registered identity. Users are never deleted by any
// in-scope operation, so there is no soft-delete column.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Role      string    `gorm:"size:50;not null;default:USER" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
