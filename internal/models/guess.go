package models

import (
	"time"

	"gorm.io/gorm"
)

// GuessDirection is which way along the chain a guess moves.
type GuessDirection string

const (
	DirectionForward  GuessDirection = "forward"
	DirectionBackward GuessDirection = "backward"
)

// Valid reports whether d is a known direction.
func (d GuessDirection) Valid() bool {
	return d == DirectionForward || d == DirectionBackward
}

// Guess is an append-only record of one attempted move, correct or not.
// Rows are never mutated after creation.
type Guess struct {
	gorm.Model
	SessionID   uint           `gorm:"index;not null" json:"session_id"`
	TeamID      uint           `gorm:"index;not null" json:"team_id"`
	PlayerID    uint           `gorm:"index;not null" json:"player_id"`
	Position    int            `json:"position"`
	Word        string         `json:"word"`
	Direction   GuessDirection `gorm:"type:varchar(10)" json:"direction"`
	Correct     bool           `json:"correct"`
	SubmittedAt time.Time      `json:"submitted_at"`
}
