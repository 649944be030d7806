package repository

import (
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/storage"
)

type TeamRepository interface {
	Create(team *models.Team) error
	FindByID(id uint) (*models.Team, error)
	FindBySession(sessionID uint) ([]models.Team, error)
	Update(team *models.Team) error
}

type teamRepository struct {
	db *storage.PostgresDB
}

func NewTeamRepository(db *storage.PostgresDB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) FindByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) FindBySession(sessionID uint) ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Where("session_id = ?", sessionID).Order("id asc").Find(&teams).Error
	return teams, err
}

func (r *teamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}
