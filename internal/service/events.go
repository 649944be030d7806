package service

// Event is the typed message fanned out over websocket connections: an event
// name plus an opaque payload.
type Event struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Event names delivered to clients.
const (
	EventSessionCreated     = "session_created"
	EventSessionEnded       = "session_ended"
	EventPlayerJoined       = "player_joined"
	EventPlayerDisconnected = "player_disconnected"
	EventPlayerReconnected  = "player_reconnected"
	EventTeamAssigned       = "team_assigned"
	EventTeamNamed          = "team_named"
	EventPhaseChanged       = "phase_changed"
	EventGameStarted        = "game_started"
	EventGuessSubmitted     = "guess_submitted"
	EventWordSolved         = "word_solved"
	EventHintUsed           = "hint_used"
	EventTeamCompleted      = "team_completed"
	EventScoresFinal        = "scores_final"
	EventPlayerAwards       = "player_awards"
	EventStateSync          = "state_sync"
	EventVoteRecorded       = "vote_recorded"
	EventVoteResults        = "vote_results"
)
