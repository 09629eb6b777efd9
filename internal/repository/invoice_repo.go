package repository

import (
	"strings"

	"invoice-builder-backend/internal/models"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

func (r *InvoiceRepository) Create(rec *models.InvoiceRecord) error {
	return r.db.Create(rec).Error
}

// GetByID fetch a single saved snapshot by ID
func (r *InvoiceRepository) GetByID(id string) (*models.InvoiceRecord, error) {
	var rec models.InvoiceRecord
	err := r.db.First(&rec, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *InvoiceRepository) Update(rec *models.InvoiceRecord) error {
	return r.db.Save(rec).Error
}

// Search used for the saved-invoices screen with optional filters
func (r *InvoiceRepository) Search(query string, currency string, limit int) ([]models.InvoiceRecord, error) {
	var recs []models.InvoiceRecord

	dbQuery := r.db.Model(&models.InvoiceRecord{}).Order("created_at DESC")

	if query != "" {
		dbQuery = dbQuery.Where("LOWER(invoice_number) LIKE ?", "%"+strings.ToLower(query)+"%")
	}
	if currency != "" {
		dbQuery = dbQuery.Where("currency = ?", currency)
	}
	if limit > 0 {
		dbQuery = dbQuery.Limit(limit)
	}

	err := dbQuery.Find(&recs).Error
	return recs, err
}
