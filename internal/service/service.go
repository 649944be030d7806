package service

import (
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/repository"
)

type Services struct {
	Host        *HostService
	Registry    *SessionRegistry
	Game        *GameService
	Progression *ProgressionEngine
	Scoring     *ScoringEngine
	Votes       *VoteLedger
	Directory   *ConnectionDirectory
	Players     repository.PlayerRepository
	Teams       repository.TeamRepository
}

func NewServices(repos *repository.Repositories, content ContentStore) *Services {
	directory := NewConnectionDirectory()

	scoring := NewScoringEngine(repos.Team, repos.Guess, content, directory)
	game := NewGameService(repos.Session, repos.Player, repos.Team, directory, content, scoring)
	progression := NewProgressionEngine(repos.Session, repos.Team, repos.Guess, directory, content, game)

	return &Services{
		Host:        NewHostService(repos.Host),
		Registry:    NewSessionRegistry(repos.Session, repos.Player, directory),
		Game:        game,
		Progression: progression,
		Scoring:     scoring,
		Votes:       NewVoteLedger(repos.Vote, directory),
		Directory:   directory,
		Players:     repos.Player,
		Teams:       repos.Team,
	}
}
