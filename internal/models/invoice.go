package models

// Invoice is the full form snapshot the browser client edits. Numeric-looking
// fields arrive as strings and are only coerced during validation/derivation;
// derived fields are overwritten by the derivation engine and never edited
// directly.
type Invoice struct {
	Number        InvoiceNumber `json:"invoiceNumber"`
	IssueDate     string        `json:"issueDate"`
	ServiceDate   string        `json:"serviceDate"`
	PaymentDue    string        `json:"paymentDue"`
	PaymentMethod string        `json:"paymentMethod"`
	Notes         string        `json:"notes"`
	Currency      string        `json:"currency"`
	Language      string        `json:"language"`
	DateFormat    string        `json:"dateFormat"`
	Seller        Seller        `json:"seller"`
	Buyer         Buyer         `json:"buyer"`
	Items         []LineItem    `json:"items"`

	// Derived, always round2(sum of item preTaxAmount).
	Total float64 `json:"total"`

	PaymentMethodFieldIsVisible *bool `json:"paymentMethodFieldIsVisible"`
	NotesFieldIsVisible         *bool `json:"notesFieldIsVisible"`
}

// InvoiceNumber carries a customizable label next to the value so the
// rendered document can say "Invoice no", "Faktura nr", etc.
type InvoiceNumber struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// LineItem is one billable row. Amount, NetPrice and Vat hold the raw form
// input; NetAmount, TaxAmount and PreTaxAmount are derived.
type LineItem struct {
	Name     string     `json:"name"`
	Amount   FlexString `json:"amount"`   // quantity
	NetPrice FlexString `json:"netPrice"` // unit price
	Vat      FlexString `json:"vat"`      // percentage or NP/OO

	NetAmount    float64 `json:"netAmount"`
	TaxAmount    float64 `json:"taxAmount"`
	PreTaxAmount float64 `json:"preTaxAmount"` // tax-inclusive line total

	// Column visibility on the rendered document, no effect on calculation.
	NameFieldIsVisible         *bool `json:"nameFieldIsVisible"`
	AmountFieldIsVisible       *bool `json:"amountFieldIsVisible"`
	NetPriceFieldIsVisible     *bool `json:"netPriceFieldIsVisible"`
	VatFieldIsVisible          *bool `json:"vatFieldIsVisible"`
	NetAmountFieldIsVisible    *bool `json:"netAmountFieldIsVisible"`
	TaxAmountFieldIsVisible    *bool `json:"taxAmountFieldIsVisible"`
	PreTaxAmountFieldIsVisible *bool `json:"preTaxAmountFieldIsVisible"`
}
