package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/repository"
)

// GuessResult is the outcome of a guess. An incorrect guess is a normal
// negative outcome, not an error.
type GuessResult struct {
	Correct   bool `json:"correct"`
	Cursor    int  `json:"cursor"`
	Completed bool `json:"completed"`
}

// TeamClues is the directional clue pair visible from a team's cursor, sent
// on resync and after every advance.
type TeamClues struct {
	Cursor         int    `json:"cursor"`
	CurrentWord    string `json:"current_word"`
	ForwardClue    string `json:"forward_clue,omitempty"`
	BackwardClue   string `json:"backward_clue,omitempty"`
	ForwardLength  int    `json:"forward_length,omitempty"`
	BackwardLength int    `json:"backward_length,omitempty"`
}

// ProgressionEngine validates guesses against the word chain and advances
// team cursors. All cursor mutations for a team serialize on the team's
// lock; a concurrent teammate guessing the same position loses with
// ErrStalePosition instead of silently merging.
type ProgressionEngine struct {
	sessionRepo repository.SessionRepository
	teamRepo    repository.TeamRepository
	guessRepo   repository.GuessRepository
	directory   *ConnectionDirectory
	content     ContentStore
	game        *GameService

	teamLocks *lockTable
}

func NewProgressionEngine(
	sessionRepo repository.SessionRepository,
	teamRepo repository.TeamRepository,
	guessRepo repository.GuessRepository,
	directory *ConnectionDirectory,
	content ContentStore,
	game *GameService,
) *ProgressionEngine {
	return &ProgressionEngine{
		sessionRepo: sessionRepo,
		teamRepo:    teamRepo,
		guessRepo:   guessRepo,
		directory:   directory,
		content:     content,
		game:        game,
		teamLocks:   newLockTable(),
	}
}

// SubmitGuess validates and applies one guess for the player's team. The
// guess is recorded win or lose so partial attempts stay auditable, and the
// updated cursor is broadcast to the whole team either way.
func (e *ProgressionEngine) SubmitGuess(player *models.Player, position int, text string, direction models.GuessDirection) (*GuessResult, error) {
	if !direction.Valid() {
		return nil, ErrInvalidDirection
	}
	if player.TeamID == nil {
		return nil, ErrTeamNotFound
	}

	session, err := e.sessionRepo.FindByID(player.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if session.Phase != models.PhaseActive {
		return nil, fmt.Errorf("%w: guesses only accepted while active", ErrIllegalTransition)
	}

	p, err := e.content.Load(session.PuzzleName)
	if err != nil {
		return nil, err
	}

	teamID := *player.TeamID
	lock := e.teamLocks.get(teamID)
	lock.Lock()

	team, err := e.teamRepo.FindByID(teamID)
	if err != nil {
		lock.Unlock()
		return nil, ErrTeamNotFound
	}
	if team.Completed() {
		lock.Unlock()
		return nil, ErrTeamAlreadyFinished
	}
	if position != team.Cursor {
		lock.Unlock()
		return nil, fmt.Errorf("%w: got %d, cursor is %d", ErrStalePosition, position, team.Cursor)
	}

	forward := direction == models.DirectionForward
	expected, inBounds := p.ExpectedWord(position, forward)
	correct := inBounds && wordsMatch(text, expected)

	guess := &models.Guess{
		SessionID:   session.ID,
		TeamID:      teamID,
		PlayerID:    player.ID,
		Position:    position,
		Word:        text,
		Direction:   direction,
		Correct:     correct,
		SubmittedAt: time.Now().UTC(),
	}
	if err := e.guessRepo.Create(guess); err != nil {
		lock.Unlock()
		return nil, err
	}

	result := &GuessResult{Correct: correct, Cursor: team.Cursor}
	if correct {
		team.Cursor = clamp(advance(position, forward), 0, p.Length()-1)
		team.Moves++
		if p.IsTerminal(team.Cursor) {
			now := time.Now().UTC()
			team.CompletedAt = &now
		}
		if err := e.teamRepo.Update(team); err != nil {
			lock.Unlock()
			return nil, err
		}
		result.Cursor = team.Cursor
		result.Completed = team.Completed()
	}
	lock.Unlock()

	event := EventGuessSubmitted
	if correct {
		event = EventWordSolved
	}
	e.directory.BroadcastToTeam(teamID, Event{Type: event, Data: map[string]any{
		"player_id": player.ID,
		"position":  position,
		"correct":   correct,
		"cursor":    result.Cursor,
		"direction": direction,
	}})

	if result.Completed {
		log.Info().Uint("team_id", teamID).Str("session", session.Code).Msg("team completed chain")
		e.directory.Broadcast(Event{Type: EventTeamCompleted, Data: team})
		if err := e.maybeFinish(session.Code, session.ID); err != nil {
			log.Error().Err(err).Str("session", session.Code).Msg("auto finish")
		}
	}
	return result, nil
}

// UseHint bumps the team's hint counter without moving the cursor. The
// scoring policy for hints lives outside this engine; it only keeps count.
func (e *ProgressionEngine) UseHint(player *models.Player) (*models.Team, error) {
	if player.TeamID == nil {
		return nil, ErrTeamNotFound
	}

	session, err := e.sessionRepo.FindByID(player.SessionID)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if session.Phase != models.PhaseActive {
		return nil, fmt.Errorf("%w: hints only available while active", ErrIllegalTransition)
	}

	teamID := *player.TeamID
	lock := e.teamLocks.get(teamID)
	lock.Lock()
	defer lock.Unlock()

	team, err := e.teamRepo.FindByID(teamID)
	if err != nil {
		return nil, ErrTeamNotFound
	}
	team.HintsUsed++
	if err := e.teamRepo.Update(team); err != nil {
		return nil, err
	}

	e.directory.BroadcastToTeam(teamID, Event{Type: EventHintUsed, Data: map[string]any{
		"team_id":    teamID,
		"hints_used": team.HintsUsed,
	}})
	return team, nil
}

// CurrentClues returns what a client needs to render the team's position:
// the cursor, word, and the clue pair pointing out from it.
func (e *ProgressionEngine) CurrentClues(session *models.Session, team *models.Team) (*TeamClues, error) {
	p, err := e.content.Load(session.PuzzleName)
	if err != nil {
		return nil, err
	}

	clues := &TeamClues{
		Cursor:      team.Cursor,
		CurrentWord: p.WordAt(team.Cursor),
	}
	if clue, ok := p.ClueFor(team.Cursor, true); ok {
		clues.ForwardClue = clue
		if next, ok := p.ExpectedWord(team.Cursor, true); ok {
			clues.ForwardLength = len(next)
		}
	}
	if clue, ok := p.ClueFor(team.Cursor, false); ok {
		clues.BackwardClue = clue
		if prev, ok := p.ExpectedWord(team.Cursor, false); ok {
			clues.BackwardLength = len(prev)
		}
	}
	return clues, nil
}

// maybeFinish ends the session once every team has completed the chain.
func (e *ProgressionEngine) maybeFinish(code string, sessionID uint) error {
	teams, err := e.teamRepo.FindBySession(sessionID)
	if err != nil {
		return err
	}
	for _, team := range teams {
		if !team.Completed() {
			return nil
		}
	}
	return e.game.FinishGame(code)
}

// wordsMatch compares a submitted guess against the expected word, ignoring
// case and collapsing whitespace.
func wordsMatch(guess, expected string) bool {
	return strings.EqualFold(normalize(guess), normalize(expected))
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func advance(position int, forward bool) int {
	if forward {
		return position + 1
	}
	return position - 1
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
