package models

import (
	"time"

	"gorm.io/gorm"
)

// Player is a participant in a session. Players are never deleted while the
// session is active; disconnects only flip the Connected flag so scoring and
// audit keep their history.
type Player struct {
	gorm.Model
	SessionID uint      `gorm:"index;not null" json:"session_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"` // opaque identity handed out on join
	Name      string    `gorm:"not null" json:"name"`
	TeamID    *uint     `gorm:"index" json:"team_id,omitempty"`
	Connected bool      `json:"connected"`
	JoinedAt  time.Time `json:"joined_at"`
}
