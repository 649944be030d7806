package repository

import "github.com/NADEE-MJ/raddle.teams-sub001/internal/storage"

type Repositories struct {
	Host    HostRepository
	Session SessionRepository
	Player  PlayerRepository
	Team    TeamRepository
	Guess   GuessRepository
	Vote    VoteRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		Host:    NewHostRepository(db),
		Session: NewSessionRepository(db),
		Player:  NewPlayerRepository(db),
		Team:    NewTeamRepository(db),
		Guess:   NewGuessRepository(db),
		Vote:    NewVoteRepository(db),
	}
}
