package models

import (
	"gorm.io/gorm"
)

// Host is an account that can create sessions and drive phase transitions.
type Host struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"` // bcrypt hash, never serialized
}
