package service

import (
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/repository"
)

// HostService manages host accounts.
type HostService struct {
	hostRepo repository.HostRepository
}

func NewHostService(hostRepo repository.HostRepository) *HostService {
	return &HostService{hostRepo: hostRepo}
}

func (s *HostService) CreateHost(host *models.Host) error {
	return s.hostRepo.Create(host)
}

func (s *HostService) GetHostByUsername(username string) (*models.Host, error) {
	return s.hostRepo.FindByUsername(username)
}
