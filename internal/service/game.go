package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/puzzle"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/repository"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/utils"
)

// ContentStore supplies immutable puzzles by name. The game treats loaded
// puzzles as read-only.
type ContentStore interface {
	Load(name string) (*puzzle.Puzzle, error)
}

// GameService drives sessions through their phases:
//
//	assembly -> team_formation -> team_naming -> active -> finished
//
// Transitions are host- or system-triggered and serialize per session; an
// out-of-order attempt fails with ErrIllegalTransition and changes nothing.
type GameService struct {
	sessionRepo repository.SessionRepository
	playerRepo  repository.PlayerRepository
	teamRepo    repository.TeamRepository
	directory   *ConnectionDirectory
	content     ContentStore
	scoring     *ScoringEngine

	sessionLocks *lockTable
}

func NewGameService(
	sessionRepo repository.SessionRepository,
	playerRepo repository.PlayerRepository,
	teamRepo repository.TeamRepository,
	directory *ConnectionDirectory,
	content ContentStore,
	scoring *ScoringEngine,
) *GameService {
	return &GameService{
		sessionRepo:  sessionRepo,
		playerRepo:   playerRepo,
		teamRepo:     teamRepo,
		directory:    directory,
		content:      content,
		scoring:      scoring,
		sessionLocks: newLockTable(),
	}
}

// FormTeams moves a session from assembly to team formation, partitioning
// the connected players into the session's team count round-robin in join
// order.
func (s *GameService) FormTeams(code string) error {
	session, err := s.lockSession(code)
	if err != nil {
		return err
	}
	defer s.sessionLocks.get(session.ID).Unlock()

	if session.Phase != models.PhaseAssembly {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, session.Phase, models.PhaseTeamFormation)
	}

	roster, err := s.playerRepo.FindBySession(session.ID)
	if err != nil {
		return err
	}
	var connected []models.Player
	for _, p := range roster {
		if s.directory.IsConnected(p.ID) {
			connected = append(connected, p)
		}
	}
	if len(connected) == 0 {
		return ErrInsufficientPlayers
	}

	names := utils.TeamNames(session.NumTeams)
	teams := make([]*models.Team, session.NumTeams)
	for i := range teams {
		teams[i] = &models.Team{
			SessionID: session.ID,
			Name:      names[i],
		}
		if err := s.teamRepo.Create(teams[i]); err != nil {
			return err
		}
	}

	for i := range connected {
		team := teams[i%len(teams)]
		connected[i].TeamID = &team.ID
		if err := s.playerRepo.Update(&connected[i]); err != nil {
			return err
		}
		s.directory.AssignTeam(connected[i].ID, team.ID)
	}

	session.Phase = models.PhaseTeamFormation
	if err := s.sessionRepo.Update(session); err != nil {
		return err
	}

	log.Info().Str("code", code).Int("players", len(connected)).Int("teams", len(teams)).Msg("teams formed")
	s.directory.Broadcast(Event{Type: EventPhaseChanged, Data: session})
	for _, team := range teams {
		s.directory.BroadcastToTeam(team.ID, Event{Type: EventTeamAssigned, Data: team})
	}
	return nil
}

// BeginNaming moves a session into the naming phase once every team has at
// least one player.
func (s *GameService) BeginNaming(code string) error {
	session, err := s.lockSession(code)
	if err != nil {
		return err
	}
	defer s.sessionLocks.get(session.ID).Unlock()

	if session.Phase != models.PhaseTeamFormation {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, session.Phase, models.PhaseTeamNaming)
	}

	teams, err := s.teamRepo.FindBySession(session.ID)
	if err != nil {
		return err
	}
	for _, team := range teams {
		members, err := s.playerRepo.FindByTeam(team.ID)
		if err != nil {
			return err
		}
		if len(members) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyTeam, team.Name)
		}
	}

	session.Phase = models.PhaseTeamNaming
	if err := s.sessionRepo.Update(session); err != nil {
		return err
	}
	s.directory.Broadcast(Event{Type: EventPhaseChanged, Data: session})
	return nil
}

// NameTeam sets a team's name during the naming phase.
func (s *GameService) NameTeam(code string, teamID uint, name string) error {
	session, err := s.sessionRepo.FindByCode(code)
	if err != nil {
		return ErrSessionNotFound
	}
	if session.Phase != models.PhaseTeamNaming {
		return fmt.Errorf("%w: naming only allowed during %s", ErrIllegalTransition, models.PhaseTeamNaming)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrUnnamedTeam
	}

	team, err := s.teamRepo.FindByID(teamID)
	if err != nil || team.SessionID != session.ID {
		return ErrTeamNotFound
	}

	team.Name = name
	if err := s.teamRepo.Update(team); err != nil {
		return err
	}
	s.directory.Broadcast(Event{Type: EventTeamNamed, Data: team})
	return nil
}

// StartGame binds the puzzle, points every team's cursor at the chain's
// midpoint anchor and moves the session to active play.
func (s *GameService) StartGame(code, puzzleName string) error {
	session, err := s.lockSession(code)
	if err != nil {
		return err
	}
	defer s.sessionLocks.get(session.ID).Unlock()

	if session.Phase != models.PhaseTeamNaming {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, session.Phase, models.PhaseActive)
	}

	teams, err := s.teamRepo.FindBySession(session.ID)
	if err != nil {
		return err
	}
	for _, team := range teams {
		if strings.TrimSpace(team.Name) == "" {
			return ErrUnnamedTeam
		}
	}

	p, err := s.content.Load(puzzleName)
	if err != nil {
		return err
	}

	start := p.StartPosition()
	for i := range teams {
		teams[i].Cursor = start
		if err := s.teamRepo.Update(&teams[i]); err != nil {
			return err
		}
	}

	now := time.Now().UTC()
	session.PuzzleName = puzzleName
	session.StartedAt = &now
	session.Phase = models.PhaseActive
	if err := s.sessionRepo.Update(session); err != nil {
		return err
	}

	log.Info().Str("code", code).Str("puzzle", puzzleName).Msg("game started")
	s.directory.Broadcast(Event{Type: EventGameStarted, Data: map[string]any{
		"session":  session,
		"puzzle":   puzzleName,
		"cursor":   start,
		"chainLen": p.Length(),
	}})
	return nil
}

// FinishGame ends active play, either because every team completed the chain
// or by host termination, and runs the scoring finalization pass.
func (s *GameService) FinishGame(code string) error {
	session, err := s.lockSession(code)
	if err != nil {
		return err
	}
	defer s.sessionLocks.get(session.ID).Unlock()

	if session.Phase != models.PhaseActive {
		return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, session.Phase, models.PhaseFinished)
	}

	now := time.Now().UTC()
	session.EndedAt = &now
	session.Phase = models.PhaseFinished
	if err := s.sessionRepo.Update(session); err != nil {
		return err
	}

	log.Info().Str("code", code).Msg("game finished")
	s.directory.Broadcast(Event{Type: EventPhaseChanged, Data: session})

	return s.scoring.Finalize(session)
}

// lockSession looks the session up and takes its transition lock. The caller
// must unlock it.
func (s *GameService) lockSession(code string) (*models.Session, error) {
	session, err := s.sessionRepo.FindByCode(code)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	lock := s.sessionLocks.get(session.ID)
	lock.Lock()

	// reload under the lock so concurrent transitions observe each other
	session, err = s.sessionRepo.FindByCode(code)
	if err != nil {
		lock.Unlock()
		return nil, ErrSessionNotFound
	}
	return session, nil
}
