package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// InvoiceRecord is a persisted invoice snapshot. Snapshot holds the full
// normalized Invoice as JSON; the indexed columns are denormalized for
// listing and search only.
type InvoiceRecord struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InvoiceNumber string    `gorm:"index" json:"invoiceNumber"`
	Currency      string    `json:"currency"`
	Total         float64   `gorm:"index" json:"total"`
	Snapshot      datatypes.JSON `json:"snapshot"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// SavedSeller is an entry in the reusable sellers list.
type SavedSeller struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"index" json:"name"`
	Address         string    `json:"address"`
	VatNo           string    `json:"vatNo"`
	VatNoFieldLabel string    `json:"vatNoFieldLabel"`
	Email           string    `json:"email"`
	AccountNumber   string    `json:"accountNumber"`
	SwiftBic        string    `json:"swiftBic"`
	CreatedAt       time.Time `json:"createdAt"`
}

// SavedBuyer is an entry in the reusable buyers list.
type SavedBuyer struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"index" json:"name"`
	Address         string    `json:"address"`
	VatNo           string    `json:"vatNo"`
	VatNoFieldLabel string    `json:"vatNoFieldLabel"`
	Email           string    `json:"email"`
	CreatedAt       time.Time `json:"createdAt"`
}

// ShareLink maps a short token to a shared invoice snapshot. The token is
// also a self-contained compressed payload, so resolution works even for
// links created before the row existed.
type ShareLink struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Token     string         `gorm:"uniqueIndex" json:"token"`
	Snapshot  datatypes.JSON `json:"snapshot"`
	CreatedAt time.Time      `json:"createdAt"`
}
