package derivation

import (
	"strings"

	"invoice-builder-backend/internal/models"

	"github.com/shopspring/decimal"
)

// The derivation engine computes the three derived money fields on a line
// item and the invoice total. It is pure and never fails: malformed numeric
// input coerces to zero here and is rejected separately by the validator, so
// an in-progress edit can always be recomputed.

// DeriveLineItem returns a copy of item with NetAmount, TaxAmount and
// PreTaxAmount recomputed, everything else passed through. Nil in, nil out.
func DeriveLineItem(item *models.LineItem) *models.LineItem {
	if item == nil {
		return nil
	}

	qty := parseNumber(item.Amount)
	price := parseNumber(item.NetPrice)

	net := qty.Mul(price).Round(2)
	tax := decimal.Zero
	if rate, err := models.ParseTaxRate(item.Vat.String()); err == nil && !rate.Exempt() {
		tax = net.Mul(decimal.NewFromFloat(rate.Percent)).Div(decimal.NewFromInt(100)).Round(2)
	}
	pre := net.Add(tax).Round(2)

	updated := *item
	updated.NetAmount = net.InexactFloat64()
	updated.TaxAmount = tax.InexactFloat64()
	updated.PreTaxAmount = pre.InexactFloat64()
	return &updated
}

// HasChanges reports whether the derived fields stored on item differ from
// what DeriveLineItem would compute. Callers use it to avoid re-propagating
// an update that changed nothing.
func HasChanges(item *models.LineItem) bool {
	if item == nil {
		return false
	}
	fresh := DeriveLineItem(item)
	return fresh.NetAmount != item.NetAmount ||
		fresh.TaxAmount != item.TaxAmount ||
		fresh.PreTaxAmount != item.PreTaxAmount
}

// DeriveInvoiceTotal sums the already-rounded per-item PreTaxAmount values
// and rounds the result. Round-then-sum is deliberate: document totals must
// match the sum of the printed line totals exactly.
func DeriveInvoiceTotal(items []models.LineItem) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(decimal.NewFromFloat(item.PreTaxAmount))
	}
	return sum.Round(2).InexactFloat64()
}

// parseNumber coerces a raw form value to a decimal, zero on anything that
// does not parse.
func parseNumber(raw models.FlexString) decimal.Decimal {
	v := strings.TrimSpace(raw.String())
	if v == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Zero
	}
	return d
}
