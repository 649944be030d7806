package models

import (
	"time"

	"gorm.io/gorm"
)

// Session is one game gathering players into teams. It moves through the
// phases below in order and never regresses.
type Session struct {
	gorm.Model
	Code       string       `gorm:"uniqueIndex;not null" json:"code"`
	Name       string       `json:"name"`
	Phase      SessionPhase `gorm:"type:varchar(20);not null" json:"phase"`
	NumTeams   int          `json:"num_teams"`
	PuzzleName string       `json:"puzzle_name,omitempty"`
	StartedAt  *time.Time   `json:"started_at,omitempty"`
	EndedAt    *time.Time   `json:"ended_at,omitempty"`
}

// SessionPhase is the lifecycle state of a session.
type SessionPhase string

const (
	PhaseAssembly      SessionPhase = "assembly"
	PhaseTeamFormation SessionPhase = "team_formation"
	PhaseTeamNaming    SessionPhase = "team_naming"
	PhaseActive        SessionPhase = "active"
	PhaseFinished      SessionPhase = "finished"
)
