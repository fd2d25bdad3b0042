package models

import "gorm.io/gorm"

// User is an authenticated operator of the compliance console.
// Passwords are stored as bcrypt hashes, never in plain text.
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex;not null"`
	Password string `json:"-" gorm:"not null"`
	Name     string `json:"name"`
	Role     string `json:"role" gorm:"default:'analyst'"`
}
