package repository

import (
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/storage"
)

type HostRepository interface {
	Create(host *models.Host) error
	FindByUsername(username string) (*models.Host, error)
}

type hostRepository struct {
	db *storage.PostgresDB
}

func NewHostRepository(db *storage.PostgresDB) HostRepository {
	return &hostRepository{db: db}
}

func (r *hostRepository) Create(host *models.Host) error {
	return r.db.Create(host).Error
}

func (r *hostRepository) FindByUsername(username string) (*models.Host, error) {
	var host models.Host
	err := r.db.Where("username = ?", username).First(&host).Error
	if err != nil {
		return nil, err
	}
	return &host, nil
}
