package service

import "errors"

var (
	// ErrIllegalTransition is returned when a phase transition is attempted
	// out of order. The session is left unchanged.
	ErrIllegalTransition = errors.New("illegal phase transition")

	// ErrInsufficientPlayers is returned when team formation is attempted
	// with no connected players.
	ErrInsufficientPlayers = errors.New("not enough connected players")

	// ErrEmptyTeam is returned when a transition requires every team to have
	// at least one player and one does not.
	ErrEmptyTeam = errors.New("team has no players")

	// ErrUnnamedTeam is returned when the game is started before every team
	// has a non-empty name.
	ErrUnnamedTeam = errors.New("team has no name")

	// ErrStalePosition is returned when a guess targets a position that is
	// no longer the team's cursor. The client should resync and retry.
	ErrStalePosition = errors.New("stale cursor position")

	// ErrTeamAlreadyFinished is returned for guesses submitted after the
	// team completed the chain.
	ErrTeamAlreadyFinished = errors.New("team already finished")

	// ErrNoTeams is returned when scoring is attempted on a session with no
	// teams.
	ErrNoTeams = errors.New("session has no teams")

	// ErrSessionNotFinished is returned when scoring is attempted before the
	// session reached the finished phase.
	ErrSessionNotFinished = errors.New("session not finished")

	// ErrDuplicateVote is returned when a voter already cast a ballot of the
	// same kind for the question.
	ErrDuplicateVote = errors.New("duplicate vote")

	// ErrCodeCollision is returned when a generated session code already
	// exists. Callers may retry with a fresh code.
	ErrCodeCollision = errors.New("session code collision")

	ErrSessionNotFound  = errors.New("session not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrInvalidDirection = errors.New("invalid guess direction")
)
