package models

// Seller holds a denormalized copy of the issuing party. SavedID points at
// the saved-contacts list entry it was filled from; edits here do not write
// back unless the caller explicitly re-saves.
type Seller struct {
	SavedID         string `json:"savedId"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	VatNo           string `json:"vatNo"`
	VatNoFieldLabel string `json:"vatNoFieldLabel"`
	Email           string `json:"email"`
	AccountNumber   string `json:"accountNumber"`
	SwiftBic        string `json:"swiftBic"`

	VatNoFieldIsVisible         *bool `json:"vatNoFieldIsVisible"`
	EmailFieldIsVisible         *bool `json:"emailFieldIsVisible"`
	AccountNumberFieldIsVisible *bool `json:"accountNumberFieldIsVisible"`
	SwiftBicFieldIsVisible      *bool `json:"swiftBicFieldIsVisible"`
}

// Buyer is like Seller but without the banking fields.
type Buyer struct {
	SavedID         string `json:"savedId"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	VatNo           string `json:"vatNo"`
	VatNoFieldLabel string `json:"vatNoFieldLabel"`
	Email           string `json:"email"`

	VatNoFieldIsVisible *bool `json:"vatNoFieldIsVisible"`
	EmailFieldIsVisible *bool `json:"emailFieldIsVisible"`
}
