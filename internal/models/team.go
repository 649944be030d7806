package models

import (
	"time"

	"gorm.io/gorm"
)

// Team tracks one team's progress through the active puzzle. Cursor is the
// team's index into the word chain and is only ever mutated under the team's
// lock, so it stays inside the chain's bounds.
type Team struct {
	gorm.Model
	SessionID   uint       `gorm:"index;not null" json:"session_id"`
	Name        string     `json:"name"`
	Cursor      int        `json:"cursor"`
	HintsUsed   int        `json:"hints_used"`
	Score       int        `json:"score"`
	Moves       int        `json:"moves"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Completed reports whether the team reached either end of the chain.
func (t *Team) Completed() bool {
	return t.CompletedAt != nil
}
