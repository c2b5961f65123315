package domain

import "github.com/shopspring/decimal"

// Bill represents money the business owes a vendor. It has the same lifecycle
// shape as Invoice but lives in its own collection with its own uniqueness
// domain for ReferenceNumber.
type Bill struct {
	Vendor          string          `json:"vendor"`
	CreationDate    Date            `json:"creationDate"`
	ReferenceNumber string          `json:"referenceNumber"`
	Amount          decimal.Decimal `json:"amount"`
	Status          RecordStatus    `json:"status"`
	Category        string          `json:"category"`
}

func (b Bill) RecordReference() string       { return b.ReferenceNumber }
func (b Bill) RecordAmount() decimal.Decimal { return b.Amount }
func (b Bill) RecordDate() Date              { return b.CreationDate }
func (b Bill) CurrentStatus() RecordStatus   { return b.Status }
