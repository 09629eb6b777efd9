package share

import (
	"errors"
	"testing"

	"invoice-builder-backend/internal/models"
)

func TestSnapshotRoundTrip(t *testing.T) {
	inv := &models.Invoice{
		Number:   models.InvoiceNumber{Label: "Invoice no", Value: "7/2026"},
		Currency: "EUR",
		Items: []models.LineItem{
			{Name: "Consulting", Amount: "2", NetPrice: "100", Vat: "23", NetAmount: 200, TaxAmount: 46, PreTaxAmount: 246},
		},
		Total: 246,
	}

	token, err := EncodeSnapshot(inv)
	if err != nil {
		t.Fatalf("EncodeSnapshot: %v", err)
	}

	got, err := DecodeSnapshot(token)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if got.Number.Value != "7/2026" || got.Total != 246 {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0].Amount != "2" {
		t.Errorf("items did not survive: %+v", got.Items)
	}
}

func TestDecodeSnapshot_BadToken(t *testing.T) {
	for _, token := range []string{"", "not base64!!", "YWJjZA"} {
		if _, err := DecodeSnapshot(token); !errors.Is(err, ErrBadToken) {
			t.Errorf("DecodeSnapshot(%q) err = %v, want ErrBadToken", token, err)
		}
	}
}
