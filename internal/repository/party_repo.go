package repository

import (
	"invoice-builder-backend/internal/models"

	"gorm.io/gorm"
)

// PartyRepository owns the reusable sellers/buyers lists.
type PartyRepository struct {
	db *gorm.DB
}

func NewPartyRepository(db *gorm.DB) *PartyRepository {
	return &PartyRepository{db: db}
}

func (r *PartyRepository) CreateSeller(s *models.SavedSeller) error {
	return r.db.Create(s).Error
}

func (r *PartyRepository) GetSellerByID(id string) (*models.SavedSeller, error) {
	var s models.SavedSeller
	if err := r.db.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PartyRepository) ListSellers() ([]models.SavedSeller, error) {
	var sellers []models.SavedSeller
	err := r.db.Order("name ASC").Find(&sellers).Error
	return sellers, err
}

func (r *PartyRepository) CreateBuyer(b *models.SavedBuyer) error {
	return r.db.Create(b).Error
}

func (r *PartyRepository) GetBuyerByID(id string) (*models.SavedBuyer, error) {
	var b models.SavedBuyer
	if err := r.db.First(&b, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *PartyRepository) ListBuyers() ([]models.SavedBuyer, error) {
	var buyers []models.SavedBuyer
	err := r.db.Order("name ASC").Find(&buyers).Error
	return buyers, err
}
