package models

import (
	"time"

	"gorm.io/gorm"
)

// Vote is a ballot in the superlatives game mode. The unique index enforces
// at most one original vote and at most one tie-break revote per
// (question, voter) pair.
type Vote struct {
	gorm.Model
	QuestionID uint      `gorm:"uniqueIndex:uq_vote_question_voter_revote;not null" json:"question_id"`
	VoterID    uint      `gorm:"uniqueIndex:uq_vote_question_voter_revote;not null" json:"voter_id"`
	Choice     string    `gorm:"not null" json:"choice"`
	Revote     bool      `gorm:"uniqueIndex:uq_vote_question_voter_revote" json:"revote"`
	CastAt     time.Time `json:"cast_at"`
}
