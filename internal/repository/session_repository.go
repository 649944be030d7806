package repository

import (
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/models"
	"github.com/NADEE-MJ/raddle.teams-sub001/internal/storage"
)

type SessionRepository interface {
	Create(session *models.Session) error
	FindByCode(code string) (*models.Session, error)
	FindByID(id uint) (*models.Session, error)
	FindActive() ([]models.Session, error)
	Update(session *models.Session) error
	Delete(id uint) error
}

type sessionRepository struct {
	db *storage.PostgresDB
}

func NewSessionRepository(db *storage.PostgresDB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *models.Session) error {
	return r.db.Create(session).Error
}

func (r *sessionRepository) FindByCode(code string) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("code = ?", code).First(&session).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) FindByID(id uint) (*models.Session, error) {
	var session models.Session
	err := r.db.First(&session, id).Error
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// FindActive lists every session that has not yet finished.
func (r *sessionRepository) FindActive() ([]models.Session, error) {
	var sessions []models.Session
	err := r.db.Where("phase <> ?", models.PhaseFinished).Order("created_at DESC").Find(&sessions).Error
	return sessions, err
}

func (r *sessionRepository) Update(session *models.Session) error {
	return r.db.Save(session).Error
}

func (r *sessionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Session{}, id).Error
}
