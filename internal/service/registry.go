package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/repository"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/utils"
)

// codeAttempts bounds how many fresh codes the registry tries before giving
// up with ErrCodeCollision.
const codeAttempts = 5

// SessionRegistry owns the set of active sessions and their rosters.
type SessionRegistry struct {
	sessionRepo repository.SessionRepository
	playerRepo  repository.PlayerRepository
	directory   *ConnectionDirectory
}

func NewSessionRegistry(sessionRepo repository.SessionRepository, playerRepo repository.PlayerRepository, directory *ConnectionDirectory) *SessionRegistry {
	return &SessionRegistry{
		sessionRepo: sessionRepo,
		playerRepo:  playerRepo,
		directory:   directory,
	}
}

// CreateSession creates a session in the assembly phase with a fresh join
// code. Generated codes are re-checked against storage before insert; after
// codeAttempts collisions the caller gets ErrCodeCollision and may retry.
func (s *SessionRegistry) CreateSession(name string, numTeams int) (*models.Session, error) {
	if numTeams < 1 {
		return nil, ErrNoTeams
	}

	for attempt := 0; attempt < codeAttempts; attempt++ {
		code := utils.NewSessionCode()

		_, err := s.sessionRepo.FindByCode(code)
		if err == nil {
			continue // code taken, try another
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		session := &models.Session{
			Code:     code,
			Name:     name,
			Phase:    models.PhaseAssembly,
			NumTeams: numTeams,
		}
		if err := s.sessionRepo.Create(session); err != nil {
			return nil, err
		}

		log.Info().Str("code", code).Int("teams", numTeams).Msg("session created")
		s.directory.Broadcast(Event{Type: EventSessionCreated, Data: session})
		return session, nil
	}

	return nil, ErrCodeCollision
}

// GetSession looks a session up by its join code.
func (s *SessionRegistry) GetSession(code string) (*models.Session, error) {
	session, err := s.sessionRepo.FindByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// GetSessionByID looks a session up by its row ID.
func (s *SessionRegistry) GetSessionByID(id uint) (*models.Session, error) {
	session, err := s.sessionRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

// ListSessions returns every session that has not finished.
func (s *SessionRegistry) ListSessions() ([]models.Session, error) {
	return s.sessionRepo.FindActive()
}

// Join adds a player to a session's roster and hands back their identity
// token. The connectivity flag stays false until a websocket registers.
func (s *SessionRegistry) Join(code, playerName string) (*models.Player, error) {
	session, err := s.GetSession(code)
	if err != nil {
		return nil, err
	}
	if session.Phase != models.PhaseAssembly {
		return nil, ErrIllegalTransition
	}

	player := &models.Player{
		SessionID: session.ID,
		Token:     uuid.NewString(),
		Name:      playerName,
		JoinedAt:  time.Now().UTC(),
	}
	if err := s.playerRepo.Create(player); err != nil {
		return nil, err
	}

	s.directory.Broadcast(Event{Type: EventPlayerJoined, Data: player})
	return player, nil
}

// Teardown destroys a session: members are told first, then their channels
// are dropped and the row deleted.
func (s *SessionRegistry) Teardown(code string) error {
	session, err := s.GetSession(code)
	if err != nil {
		return err
	}

	players, err := s.playerRepo.FindBySession(session.ID)
	if err != nil {
		return err
	}

	s.directory.Broadcast(Event{Type: EventSessionEnded, Data: map[string]any{"code": session.Code}})
	for _, p := range players {
		s.directory.Unregister(p.ID)
	}

	log.Info().Str("code", code).Msg("session torn down")
	return s.sessionRepo.Delete(session.ID)
}
