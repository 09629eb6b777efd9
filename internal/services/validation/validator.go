package validation

import (
	"errors"
	"fmt"
	"strings"

	"invoice-builder-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Field-level bounds, inclusive.
var (
	maxAmount   = decimal.RequireFromString("9999999999.99")
	maxNetPrice = decimal.RequireFromString("100000000000")
)

const (
	maxNameLen          = 500
	maxTextLen          = 500
	maxNotesLen         = 10000
	defaultNumberLabel  = "Invoice no"
	defaultVatNoLabel   = "VAT no"
)

// ValidationErrors maps a field path like "items[2].amount" to a
// display-ready message. Every violated constraint gets an entry; the
// validator never stops at the first failure.
type ValidationErrors map[string]string

func (e ValidationErrors) add(path, msg string) {
	e[path] = msg
}

func (e ValidationErrors) Any() bool {
	return len(e) > 0
}

// ValidateInvoice checks and normalizes a full candidate snapshot. It always
// returns the normalized copy, even when errs is non-empty, so the caller can
// keep the form editable with defaults filled in.
func ValidateInvoice(inv *models.Invoice) (*models.Invoice, ValidationErrors) {
	errs := ValidationErrors{}
	out := *inv

	out.Number.Label = strings.TrimSpace(out.Number.Label)
	if out.Number.Label == "" {
		out.Number.Label = defaultNumberLabel
	}
	out.Number.Value = requiredText(out.Number.Value, "invoiceNumber.value", "invoice number", errs)

	out.IssueDate = requiredText(out.IssueDate, "issueDate", "issue date", errs)
	out.ServiceDate = requiredText(out.ServiceDate, "serviceDate", "service date", errs)
	out.PaymentDue = requiredText(out.PaymentDue, "paymentDue", "payment due date", errs)
	out.Currency = requiredText(out.Currency, "currency", "currency", errs)
	out.Language = requiredText(out.Language, "language", "language", errs)
	out.DateFormat = requiredText(out.DateFormat, "dateFormat", "date format", errs)

	out.PaymentMethod = boundedText(out.PaymentMethod, "paymentMethod", "payment method", maxTextLen, errs)
	out.Notes = boundedText(out.Notes, "notes", "notes", maxNotesLen, errs)
	out.PaymentMethodFieldIsVisible = defaultFlag(out.PaymentMethodFieldIsVisible)
	out.NotesFieldIsVisible = defaultFlag(out.NotesFieldIsVisible)

	out.Seller = validateSeller(out.Seller, errs)
	out.Buyer = validateBuyer(out.Buyer, errs)

	if len(out.Items) == 0 {
		errs.add("items", "at least one item is required")
	}
	items := make([]models.LineItem, len(out.Items))
	for i := range out.Items {
		items[i] = *ValidateLineItem(&out.Items[i], fmt.Sprintf("items[%d]", i), errs)
	}
	out.Items = items

	return &out, errs
}

// ValidateLineItem checks and normalizes a single row. path prefixes every
// reported field, e.g. "items[2].amount".
func ValidateLineItem(item *models.LineItem, path string, errs ValidationErrors) *models.LineItem {
	out := *item

	out.Name = strings.TrimSpace(out.Name)
	if out.Name == "" {
		errs.add(path+".name", "name is required")
	} else if len(out.Name) > maxNameLen {
		errs.add(path+".name", fmt.Sprintf("name must be at most %d characters", maxNameLen))
	}

	out.Amount = models.FlexString(strings.TrimSpace(out.Amount.String()))
	switch qty, ok := parseDecimal(out.Amount); {
	case out.Amount == "":
		errs.add(path+".amount", "amount is required")
	case !ok:
		errs.add(path+".amount", "amount must be a number")
	case qty.Sign() <= 0:
		errs.add(path+".amount", "amount must be positive")
	case qty.GreaterThan(maxAmount):
		errs.add(path+".amount", "amount must not exceed 9 999 999 999.99")
	}

	out.NetPrice = models.FlexString(strings.TrimSpace(out.NetPrice.String()))
	switch price, ok := parseDecimal(out.NetPrice); {
	case out.NetPrice == "":
		errs.add(path+".netPrice", "net price is required")
	case !ok:
		errs.add(path+".netPrice", "net price must be a number")
	case price.Sign() < 0:
		errs.add(path+".netPrice", "net price must not be negative")
	case price.GreaterThan(maxNetPrice):
		errs.add(path+".netPrice", "net price must not exceed 100 000 000 000")
	}

	// Sentinel codes first, numeric parse second; the two failure modes
	// must surface as different messages.
	out.Vat = models.FlexString(strings.TrimSpace(out.Vat.String()))
	if _, err := models.ParseTaxRate(out.Vat.String()); err != nil {
		if errors.Is(err, models.ErrTaxRateOutOfRange) {
			errs.add(path+".vat", "VAT must be between 0 and 100")
		} else {
			errs.add(path+".vat", "VAT must be a valid number (0-100) or NP or OO")
		}
	}

	out.NameFieldIsVisible = defaultFlag(out.NameFieldIsVisible)
	out.AmountFieldIsVisible = defaultFlag(out.AmountFieldIsVisible)
	out.NetPriceFieldIsVisible = defaultFlag(out.NetPriceFieldIsVisible)
	out.VatFieldIsVisible = defaultFlag(out.VatFieldIsVisible)
	out.NetAmountFieldIsVisible = defaultFlag(out.NetAmountFieldIsVisible)
	out.TaxAmountFieldIsVisible = defaultFlag(out.TaxAmountFieldIsVisible)
	out.PreTaxAmountFieldIsVisible = defaultFlag(out.PreTaxAmountFieldIsVisible)

	return &out
}

func validateSeller(s models.Seller, errs ValidationErrors) models.Seller {
	s.SavedID = strings.TrimSpace(s.SavedID)
	s.Name = requiredText(s.Name, "seller.name", "seller name", errs)
	s.Address = requiredText(s.Address, "seller.address", "seller address", errs)
	s.VatNo = boundedText(s.VatNo, "seller.vatNo", "seller VAT number", maxTextLen, errs)
	s.Email = boundedText(s.Email, "seller.email", "seller email", maxTextLen, errs)
	s.AccountNumber = boundedText(s.AccountNumber, "seller.accountNumber", "seller account number", maxTextLen, errs)
	s.SwiftBic = boundedText(s.SwiftBic, "seller.swiftBic", "seller SWIFT/BIC", maxTextLen, errs)
	s.VatNoFieldLabel = strings.TrimSpace(s.VatNoFieldLabel)
	if s.VatNoFieldLabel == "" {
		s.VatNoFieldLabel = defaultVatNoLabel
	}
	s.VatNoFieldIsVisible = defaultFlag(s.VatNoFieldIsVisible)
	s.EmailFieldIsVisible = defaultFlag(s.EmailFieldIsVisible)
	s.AccountNumberFieldIsVisible = defaultFlag(s.AccountNumberFieldIsVisible)
	s.SwiftBicFieldIsVisible = defaultFlag(s.SwiftBicFieldIsVisible)
	return s
}

func validateBuyer(b models.Buyer, errs ValidationErrors) models.Buyer {
	b.SavedID = strings.TrimSpace(b.SavedID)
	b.Name = requiredText(b.Name, "buyer.name", "buyer name", errs)
	b.Address = requiredText(b.Address, "buyer.address", "buyer address", errs)
	b.VatNo = boundedText(b.VatNo, "buyer.vatNo", "buyer VAT number", maxTextLen, errs)
	b.Email = boundedText(b.Email, "buyer.email", "buyer email", maxTextLen, errs)
	b.VatNoFieldLabel = strings.TrimSpace(b.VatNoFieldLabel)
	if b.VatNoFieldLabel == "" {
		b.VatNoFieldLabel = defaultVatNoLabel
	}
	b.VatNoFieldIsVisible = defaultFlag(b.VatNoFieldIsVisible)
	b.EmailFieldIsVisible = defaultFlag(b.EmailFieldIsVisible)
	return b
}

// requiredText trims, then reports a missing value or an overlong one.
func requiredText(v, path, label string, errs ValidationErrors) string {
	v = strings.TrimSpace(v)
	if v == "" {
		errs.add(path, label+" is required")
	} else if len(v) > maxTextLen {
		errs.add(path, fmt.Sprintf("%s must be at most %d characters", label, maxTextLen))
	}
	return v
}

// boundedText trims and enforces a length cap on an optional field.
func boundedText(v, path, label string, max int, errs ValidationErrors) string {
	v = strings.TrimSpace(v)
	if len(v) > max {
		errs.add(path, fmt.Sprintf("%s must be at most %d characters", label, max))
	}
	return v
}

func parseDecimal(v models.FlexString) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(v.String())
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func defaultFlag(p *bool) *bool {
	if p == nil {
		t := true
		return &t
	}
	return p
}
