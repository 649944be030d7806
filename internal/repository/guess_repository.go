package repository

import (
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/storage"
)

type GuessRepository interface {
	Create(guess *models.Guess) error
	FindByTeam(teamID uint) ([]models.Guess, error)
}

type guessRepository struct {
	db *storage.PostgresDB
}

func NewGuessRepository(db *storage.PostgresDB) GuessRepository {
	return &guessRepository{db: db}
}

func (r *guessRepository) Create(guess *models.Guess) error {
	return r.db.Create(guess).Error
}

func (r *guessRepository) FindByTeam(teamID uint) ([]models.Guess, error) {
	var guesses []models.Guess
	err := r.db.Where("team_id = ?", teamID).Order("submitted_at asc").Find(&guesses).Error
	return guesses, err
}
