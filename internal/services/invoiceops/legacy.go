package invoiceops

import (
	"encoding/json"

	"invoice-builder-backend/internal/models"
)

// DecodeSnapshot unmarshals a stored snapshot after adapting legacy field
// shapes. Older clients persisted the invoice number as a plain string; the
// current schema is a {label, value} object. The adaptation runs before the
// validator so the core only ever sees current field names.
func DecodeSnapshot(raw []byte) (*models.Invoice, error) {
	var generic map[string]json.RawMessage
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, err
	}

	if num, ok := generic["invoiceNumber"]; ok && len(num) > 0 && num[0] == '"' {
		var value string
		if err := json.Unmarshal(num, &value); err == nil {
			upgraded, err := json.Marshal(models.InvoiceNumber{Label: "Invoice no", Value: value})
			if err != nil {
				return nil, err
			}
			generic["invoiceNumber"] = upgraded
			raw, err = json.Marshal(generic)
			if err != nil {
				return nil, err
			}
		}
	}

	var inv models.Invoice
	if err := json.Unmarshal(raw, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}
