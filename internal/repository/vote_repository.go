package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/storage"
)

type VoteRepository interface {
	Create(vote *models.Vote) error
	Exists(questionID, voterID uint, revote bool) (bool, error)
	FindByQuestion(questionID uint, revote bool) ([]models.Vote, error)
}

type voteRepository struct {
	db *storage.PostgresDB
}

func NewVoteRepository(db *storage.PostgresDB) VoteRepository {
	return &voteRepository{db: db}
}

func (r *voteRepository) Create(vote *models.Vote) error {
	return r.db.Create(vote).Error
}

func (r *voteRepository) Exists(questionID, voterID uint, revote bool) (bool, error) {
	var vote models.Vote
	err := r.db.Where("question_id = ? AND voter_id = ? AND revote = ?", questionID, voterID, revote).
		First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *voteRepository) FindByQuestion(questionID uint, revote bool) ([]models.Vote, error) {
	var votes []models.Vote
	err := r.db.Where("question_id = ? AND revote = ?", questionID, revote).
		Order("cast_at asc").Find(&votes).Error
	return votes, err
}
