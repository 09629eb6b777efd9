package validation

import (
	"reflect"
	"testing"

	"invoice-builder-backend/internal/models"
)

func validItem() models.LineItem {
	return models.LineItem{Name: "Consulting", Amount: "2", NetPrice: "100", Vat: "23"}
}

func validInvoice() *models.Invoice {
	return &models.Invoice{
		Number:      models.InvoiceNumber{Value: "1/2026"},
		IssueDate:   "2026-09-01",
		ServiceDate: "2026-09-01",
		PaymentDue:  "2026-09-15",
		Currency:    "EUR",
		Language:    "en",
		DateFormat:  "YYYY-MM-DD",
		Seller:      models.Seller{Name: "Acme sp. z o.o.", Address: "1 Main St, Warsaw"},
		Buyer:       models.Buyer{Name: "Globex Ltd", Address: "2 High St, London"},
		Items:       []models.LineItem{validItem()},
	}
}

func TestValidateLineItem_Amount(t *testing.T) {
	tests := []struct {
		name    string
		amount  models.FlexString
		wantErr string
	}{
		{"accepts integer", "2", ""},
		{"accepts boundary max", "9999999999.99", ""},
		{"rejects above max", "10000000000", "amount must not exceed 9 999 999 999.99"},
		{"rejects zero", "0", "amount must be positive"},
		{"rejects negative", "-1", "amount must be positive"},
		{"rejects garbage", "two", "amount must be a number"},
		{"rejects missing", "", "amount is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			item.Amount = tt.amount
			errs := ValidationErrors{}
			ValidateLineItem(&item, "items[0]", errs)

			got := errs["items[0].amount"]
			if got != tt.wantErr {
				t.Errorf("amount error = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestValidateLineItem_NetPrice(t *testing.T) {
	tests := []struct {
		name    string
		price   models.FlexString
		wantErr string
	}{
		{"accepts zero", "0", ""},
		{"accepts boundary max", "100000000000", ""},
		{"rejects above max", "100000000001", "net price must not exceed 100 000 000 000"},
		{"rejects negative", "-0.01", "net price must not be negative"},
		{"rejects garbage", "free", "net price must be a number"},
		{"rejects missing", "", "net price is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			item.NetPrice = tt.price
			errs := ValidationErrors{}
			ValidateLineItem(&item, "items[0]", errs)

			got := errs["items[0].netPrice"]
			if got != tt.wantErr {
				t.Errorf("netPrice error = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestValidateLineItem_Vat(t *testing.T) {
	tests := []struct {
		name    string
		vat     models.FlexString
		wantErr string
	}{
		{"accepts NP", "NP", ""},
		{"accepts OO", "OO", ""},
		{"accepts 23", "23", ""},
		{"accepts 0", "0", ""},
		{"accepts 100", "100", ""},
		{"rejects 101", "101", "VAT must be between 0 and 100"},
		{"rejects -1", "-1", "VAT must be between 0 and 100"},
		{"rejects garbage", "abc", "VAT must be a valid number (0-100) or NP or OO"},
		{"rejects empty", "", "VAT must be a valid number (0-100) or NP or OO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := validItem()
			item.Vat = tt.vat
			errs := ValidationErrors{}
			ValidateLineItem(&item, "items[0]", errs)

			got := errs["items[0].vat"]
			if got != tt.wantErr {
				t.Errorf("vat error = %q, want %q", got, tt.wantErr)
			}
		})
	}
}

func TestValidateLineItem_Normalization(t *testing.T) {
	item := models.LineItem{Name: "  Consulting  ", Amount: " 2 ", NetPrice: " 100 ", Vat: " 23 "}
	errs := ValidationErrors{}
	got := ValidateLineItem(&item, "items[0]", errs)

	if errs.Any() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got.Name != "Consulting" || got.Amount != "2" || got.NetPrice != "100" || got.Vat != "23" {
		t.Errorf("fields not trimmed: %+v", got)
	}
	if got.NameFieldIsVisible == nil || !*got.NameFieldIsVisible {
		t.Error("visibility flags should default to true")
	}
	if got.PreTaxAmountFieldIsVisible == nil || !*got.PreTaxAmountFieldIsVisible {
		t.Error("visibility flags should default to true")
	}
}

func TestValidateInvoice_AggregatesAllErrors(t *testing.T) {
	inv := validInvoice()
	inv.Number.Value = ""
	inv.IssueDate = ""
	inv.Items[0].Amount = "0"
	inv.Items[0].Vat = "101"

	_, errs := ValidateInvoice(inv)

	for _, path := range []string{"invoiceNumber.value", "issueDate", "items[0].amount", "items[0].vat"} {
		if _, ok := errs[path]; !ok {
			t.Errorf("missing error for %s, got %v", path, errs)
		}
	}
}

func TestValidateInvoice_RequiresItems(t *testing.T) {
	inv := validInvoice()
	inv.Items = nil

	_, errs := ValidateInvoice(inv)
	if errs["items"] != "at least one item is required" {
		t.Errorf("items error = %q", errs["items"])
	}
}

func TestValidateInvoice_FillsDefaults(t *testing.T) {
	got, errs := ValidateInvoice(validInvoice())
	if errs.Any() {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got.Number.Label != "Invoice no" {
		t.Errorf("Number.Label = %q, want default", got.Number.Label)
	}
	if got.Seller.VatNoFieldLabel != "VAT no" || got.Buyer.VatNoFieldLabel != "VAT no" {
		t.Error("VatNoFieldLabel should default to \"VAT no\"")
	}
	if got.NotesFieldIsVisible == nil || !*got.NotesFieldIsVisible {
		t.Error("NotesFieldIsVisible should default to true")
	}
	if got.Seller.AccountNumberFieldIsVisible == nil || !*got.Seller.AccountNumberFieldIsVisible {
		t.Error("seller banking flags should default to true")
	}
}

// Validating an already-normalized invoice must return an identical value.
func TestValidateInvoice_RoundTrip(t *testing.T) {
	first, errs := ValidateInvoice(validInvoice())
	if errs.Any() {
		t.Fatalf("unexpected errors: %v", errs)
	}

	second, errs := ValidateInvoice(first)
	if errs.Any() {
		t.Fatalf("unexpected errors on second pass: %v", errs)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("normalized invoice drifted:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}
