package invoiceops

import (
	"encoding/json"
	"errors"
	"log"
	"time"

	"invoice-builder-backend/internal/models"
	"invoice-builder-backend/internal/repository"
	"invoice-builder-backend/internal/services/derivation"
	"invoice-builder-backend/internal/services/share"
	"invoice-builder-backend/internal/services/validation"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrInvalidSnapshot = errors.New("invoice snapshot failed validation")

// InvoiceService runs the edit cycle for the browser client: adapt legacy
// field names, validate, derive, persist. All calculation lives in the
// validation and derivation packages; this layer only wires them to storage.
type InvoiceService struct {
	invoiceRepo *repository.InvoiceRepository
	partyRepo   *repository.PartyRepository
	shareRepo   *repository.ShareRepository
	db          *gorm.DB
}

func NewInvoiceService(
	invoiceRepo *repository.InvoiceRepository,
	partyRepo *repository.PartyRepository,
	shareRepo *repository.ShareRepository,
) *InvoiceService {
	svc := &InvoiceService{
		invoiceRepo: invoiceRepo,
		partyRepo:   partyRepo,
		shareRepo:   shareRepo,
	}
	if invoiceRepo != nil {
		svc.db = invoiceRepo.DB()
	}
	return svc
}

// NewDraft builds the fresh-form snapshot: today's dates, EUR, one blank
// item, everything visible.
func (s *InvoiceService) NewDraft() *models.Invoice {
	today := time.Now().Format("2006-01-02")
	draft := &models.Invoice{
		Number:      models.InvoiceNumber{Label: "Invoice no", Value: ""},
		IssueDate:   today,
		ServiceDate: today,
		PaymentDue:  time.Now().AddDate(0, 0, 14).Format("2006-01-02"),
		Currency:    "EUR",
		Language:    "en",
		DateFormat:  "YYYY-MM-DD",
		Items: []models.LineItem{
			{Amount: "1", NetPrice: "0", Vat: "0"},
		},
	}
	normalized, _ := s.Preview(draft)
	return normalized
}

// Preview runs one full edit cycle on a candidate snapshot: validate and
// normalize, derive every line item, then the total. The normalized snapshot
// comes back even when errs is non-empty so the form stays editable.
func (s *InvoiceService) Preview(candidate *models.Invoice) (*models.Invoice, validation.ValidationErrors) {
	normalized, errs := validation.ValidateInvoice(candidate)
	s.Recalculate(normalized)
	return normalized, errs
}

// Recalculate refreshes derived fields in place. Per-item updates are gated
// on HasChanges so a reactive caller can tell whether anything moved; the
// total is cheap and recomputed unconditionally.
func (s *InvoiceService) Recalculate(inv *models.Invoice) bool {
	changed := false
	for i := range inv.Items {
		if derivation.HasChanges(&inv.Items[i]) {
			inv.Items[i] = *derivation.DeriveLineItem(&inv.Items[i])
			changed = true
		}
	}
	total := derivation.DeriveInvoiceTotal(inv.Items)
	if inv.Total != total {
		inv.Total = total
		changed = true
	}
	return changed
}

// SaveInvoice persists a snapshot. Invalid snapshots are rejected wholesale;
// the caller gets the field errors from Preview first.
func (s *InvoiceService) SaveInvoice(candidate *models.Invoice) (*models.InvoiceRecord, validation.ValidationErrors, error) {
	normalized, errs := s.Preview(candidate)
	if errs.Any() {
		return nil, errs, ErrInvalidSnapshot
	}

	raw, err := json.Marshal(normalized)
	if err != nil {
		return nil, nil, err
	}

	rec := &models.InvoiceRecord{
		ID:            uuid.New(),
		InvoiceNumber: normalized.Number.Value,
		Currency:      normalized.Currency,
		Total:         normalized.Total,
		Snapshot:      datatypes.JSON(raw),
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
	if err := s.invoiceRepo.Create(rec); err != nil {
		return nil, nil, err
	}
	return rec, nil, nil
}

// UpdateInvoice replaces the snapshot on an existing record.
func (s *InvoiceService) UpdateInvoice(id string, candidate *models.Invoice) (*models.InvoiceRecord, validation.ValidationErrors, error) {
	rec, err := s.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	normalized, errs := s.Preview(candidate)
	if errs.Any() {
		return nil, errs, ErrInvalidSnapshot
	}

	raw, err := json.Marshal(normalized)
	if err != nil {
		return nil, nil, err
	}

	rec.InvoiceNumber = normalized.Number.Value
	rec.Currency = normalized.Currency
	rec.Total = normalized.Total
	rec.Snapshot = datatypes.JSON(raw)
	rec.UpdatedAt = time.Now()
	if err := s.invoiceRepo.Update(rec); err != nil {
		return nil, nil, err
	}
	return rec, nil, nil
}

// LoadInvoice re-runs the stored snapshot through the legacy adapter and the
// full edit cycle. Stored data is never trusted as already valid.
func (s *InvoiceService) LoadInvoice(id string) (*models.Invoice, validation.ValidationErrors, error) {
	rec, err := s.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, nil, err
	}

	candidate, err := DecodeSnapshot(rec.Snapshot)
	if err != nil {
		return nil, nil, err
	}
	normalized, errs := s.Preview(candidate)
	return normalized, errs, nil
}

func (s *InvoiceService) ListInvoices(query, currency string, limit int) ([]models.InvoiceRecord, error) {
	return s.invoiceRepo.Search(query, currency, limit)
}

// SaveSeller stores the invoice's current seller fields as a reusable entry.
func (s *InvoiceService) SaveSeller(seller models.Seller) (*models.SavedSeller, error) {
	saved := &models.SavedSeller{
		ID:              uuid.New(),
		Name:            seller.Name,
		Address:         seller.Address,
		VatNo:           seller.VatNo,
		VatNoFieldLabel: seller.VatNoFieldLabel,
		Email:           seller.Email,
		AccountNumber:   seller.AccountNumber,
		SwiftBic:        seller.SwiftBic,
		CreatedAt:       time.Now(),
	}
	if err := s.partyRepo.CreateSeller(saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *InvoiceService) SaveBuyer(buyer models.Buyer) (*models.SavedBuyer, error) {
	saved := &models.SavedBuyer{
		ID:              uuid.New(),
		Name:            buyer.Name,
		Address:         buyer.Address,
		VatNo:           buyer.VatNo,
		VatNoFieldLabel: buyer.VatNoFieldLabel,
		Email:           buyer.Email,
		CreatedAt:       time.Now(),
	}
	if err := s.partyRepo.CreateBuyer(saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *InvoiceService) ListSellers() ([]models.SavedSeller, error) {
	return s.partyRepo.ListSellers()
}

func (s *InvoiceService) ListBuyers() ([]models.SavedBuyer, error) {
	return s.partyRepo.ListBuyers()
}

// ApplySeller copies a saved seller's fields into the invoice. The invoice
// keeps its own copy; later edits do not touch the saved entry.
func (s *InvoiceService) ApplySeller(inv *models.Invoice, savedID string) error {
	saved, err := s.partyRepo.GetSellerByID(savedID)
	if err != nil {
		return err
	}
	inv.Seller = models.Seller{
		SavedID:         saved.ID.String(),
		Name:            saved.Name,
		Address:         saved.Address,
		VatNo:           saved.VatNo,
		VatNoFieldLabel: saved.VatNoFieldLabel,
		Email:           saved.Email,
		AccountNumber:   saved.AccountNumber,
		SwiftBic:        saved.SwiftBic,
	}
	return nil
}

func (s *InvoiceService) ApplyBuyer(inv *models.Invoice, savedID string) error {
	saved, err := s.partyRepo.GetBuyerByID(savedID)
	if err != nil {
		return err
	}
	inv.Buyer = models.Buyer{
		SavedID:         saved.ID.String(),
		Name:            saved.Name,
		Address:         saved.Address,
		VatNo:           saved.VatNo,
		VatNoFieldLabel: saved.VatNoFieldLabel,
		Email:           saved.Email,
	}
	return nil
}

// CreateShareLink validates, encodes and persists a shareable snapshot.
func (s *InvoiceService) CreateShareLink(candidate *models.Invoice) (*models.ShareLink, validation.ValidationErrors, error) {
	normalized, errs := s.Preview(candidate)
	if errs.Any() {
		return nil, errs, ErrInvalidSnapshot
	}

	token, err := share.EncodeSnapshot(normalized)
	if err != nil {
		return nil, nil, err
	}
	raw, err := json.Marshal(normalized)
	if err != nil {
		return nil, nil, err
	}

	link := &models.ShareLink{
		ID:        uuid.New(),
		Token:     token,
		Snapshot:  datatypes.JSON(raw),
		CreatedAt: time.Now(),
	}
	if err := s.shareRepo.Create(link); err != nil {
		// Token already stored is fine, the payload is self-contained.
		log.Println("share link not persisted:", err)
	}
	return link, nil, nil
}

// ResolveShareLink prefers the stored row, falling back to decoding the
// token itself. Either way the snapshot goes through the full edit cycle.
func (s *InvoiceService) ResolveShareLink(token string) (*models.Invoice, validation.ValidationErrors, error) {
	if link, err := s.shareRepo.GetByToken(token); err == nil {
		candidate, err := DecodeSnapshot(link.Snapshot)
		if err == nil {
			normalized, errs := s.Preview(candidate)
			return normalized, errs, nil
		}
	}

	candidate, err := share.DecodeSnapshot(token)
	if err != nil {
		return nil, nil, err
	}
	normalized, errs := s.Preview(candidate)
	return normalized, errs, nil
}
