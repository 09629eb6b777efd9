package repository

import (
	"invoice-builder-backend/internal/models"

	"gorm.io/gorm"
)

type ShareRepository struct {
	db *gorm.DB
}

func NewShareRepository(db *gorm.DB) *ShareRepository {
	return &ShareRepository{db: db}
}

func (r *ShareRepository) Create(link *models.ShareLink) error {
	return r.db.Create(link).Error
}

func (r *ShareRepository) GetByToken(token string) (*models.ShareLink, error) {
	var link models.ShareLink
	if err := r.db.First(&link, "token = ?", token).Error; err != nil {
		return nil, err
	}
	return &link, nil
}
