package invoiceops

import (
	"testing"

	"invoice-builder-backend/internal/models"
)

// Preview and Recalculate never touch storage, so a bare service is enough.
func newTestService() *InvoiceService {
	return NewInvoiceService(nil, nil, nil)
}

func TestNewDraft(t *testing.T) {
	draft := newTestService().NewDraft()

	if len(draft.Items) != 1 {
		t.Fatalf("draft items = %d, want 1", len(draft.Items))
	}
	if draft.Currency != "EUR" || draft.Language != "en" {
		t.Errorf("draft defaults off: currency=%q language=%q", draft.Currency, draft.Language)
	}
	if draft.Number.Label != "Invoice no" {
		t.Errorf("draft number label = %q", draft.Number.Label)
	}
	if draft.Items[0].PreTaxAmount != 0 || draft.Total != 0 {
		t.Errorf("blank draft should total zero, got %v / %v", draft.Items[0].PreTaxAmount, draft.Total)
	}
	if draft.Items[0].NameFieldIsVisible == nil {
		t.Error("draft should come back normalized with visibility flags set")
	}
}

func TestPreview_DerivesAndReportsErrors(t *testing.T) {
	candidate := &models.Invoice{
		Number:      models.InvoiceNumber{Value: "1/2026"},
		IssueDate:   "2026-09-01",
		ServiceDate: "2026-09-01",
		PaymentDue:  "2026-09-15",
		Currency:    "EUR",
		Language:    "en",
		DateFormat:  "YYYY-MM-DD",
		Seller:      models.Seller{Name: "Acme", Address: "Warsaw"},
		Buyer:       models.Buyer{Name: "Globex", Address: "London"},
		Items: []models.LineItem{
			{Name: "Consulting", Amount: "2", NetPrice: "100", Vat: "23"},
			{Name: "Hosting", Amount: "oops", NetPrice: "100", Vat: "23"},
		},
	}

	got, errs := newTestService().Preview(candidate)

	// invalid quantity is a validation error but still derives as zero
	if errs["items[1].amount"] == "" {
		t.Errorf("expected amount error, got %v", errs)
	}
	if got.Items[0].PreTaxAmount != 246.00 {
		t.Errorf("item 0 preTax = %v, want 246.00", got.Items[0].PreTaxAmount)
	}
	if got.Items[1].PreTaxAmount != 0 {
		t.Errorf("item 1 preTax = %v, want 0", got.Items[1].PreTaxAmount)
	}
	if got.Total != 246.00 {
		t.Errorf("total = %v, want 246.00", got.Total)
	}
}

func TestRecalculate_Idempotent(t *testing.T) {
	svc := newTestService()
	inv := &models.Invoice{
		Items: []models.LineItem{
			{Name: "Consulting", Amount: "2", NetPrice: "100", Vat: "23"},
			{Name: "Advisory", Amount: "3", NetPrice: "100", Vat: "OO"},
		},
	}

	if !svc.Recalculate(inv) {
		t.Fatal("first recalculate should report changes")
	}
	if inv.Total != 546.00 {
		t.Errorf("total = %v, want 546.00", inv.Total)
	}
	if svc.Recalculate(inv) {
		t.Error("second recalculate should be a no-op")
	}
}

func TestDecodeSnapshot_LegacyInvoiceNumber(t *testing.T) {
	raw := []byte(`{"invoiceNumber":"42/2020","currency":"PLN","items":[{"name":"X","amount":1,"netPrice":"9.99","vat":"NP"}]}`)

	inv, err := DecodeSnapshot(raw)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if inv.Number.Value != "42/2020" || inv.Number.Label != "Invoice no" {
		t.Errorf("legacy invoice number not upgraded: %+v", inv.Number)
	}
	// numeric JSON amount coerces into the string-backed field
	if inv.Items[0].Amount != "1" {
		t.Errorf("amount = %q, want \"1\"", inv.Items[0].Amount)
	}
}

func TestDecodeSnapshot_CurrentShape(t *testing.T) {
	raw := []byte(`{"invoiceNumber":{"label":"Faktura nr","value":"7/2026"},"items":[]}`)

	inv, err := DecodeSnapshot(raw)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if inv.Number.Label != "Faktura nr" || inv.Number.Value != "7/2026" {
		t.Errorf("current shape mangled: %+v", inv.Number)
	}
}
