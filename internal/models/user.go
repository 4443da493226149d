package models

import "time"

type Role string

const (
	RoleNormal Role = "normal"
	RoleAdmin  Role = "admin"
)

// ValidRole reports whether value names one of the two platform roles.
func ValidRole(value string) bool {
	return Role(value) == RoleNormal || Role(value) == RoleAdmin
}

type User struct {
	ID           string    `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	Role         Role      `gorm:"type:text;not null;default:normal" json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
