package repository

import (
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/storage"
)

type PlayerRepository interface {
	Create(player *models.Player) error
	FindByID(id uint) (*models.Player, error)
	FindByToken(token string) (*models.Player, error)
	FindBySession(sessionID uint) ([]models.Player, error)
	FindByTeam(teamID uint) ([]models.Player, error)
	Update(player *models.Player) error
}

type playerRepository struct {
	db *storage.PostgresDB
}

func NewPlayerRepository(db *storage.PostgresDB) PlayerRepository {
	return &playerRepository{db: db}
}

func (r *playerRepository) Create(player *models.Player) error {
	return r.db.Create(player).Error
}

func (r *playerRepository) FindByID(id uint) (*models.Player, error) {
	var player models.Player
	err := r.db.First(&player, id).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *playerRepository) FindByToken(token string) (*models.Player, error) {
	var player models.Player
	err := r.db.Where("token = ?", token).First(&player).Error
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// FindBySession returns the session roster ordered by join time, which keeps
// team assignment deterministic.
func (r *playerRepository) FindBySession(sessionID uint) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("session_id = ?", sessionID).Order("joined_at asc").Find(&players).Error
	return players, err
}

func (r *playerRepository) FindByTeam(teamID uint) ([]models.Player, error) {
	var players []models.Player
	err := r.db.Where("team_id = ?", teamID).Order("joined_at asc").Find(&players).Error
	return players, err
}

func (r *playerRepository) Update(player *models.Player) error {
	return r.db.Save(player).Error
}
