package domain

import "github.com/shopspring/decimal"

// Invoice represents money owed to the business by a client.
// ReferenceNumber is the unique key within the invoice collection.
type Invoice struct {
	ClientName      string          `json:"clientName"`
	CreationDate    Date            `json:"creationDate"`
	ReferenceNumber string          `json:"referenceNumber"`
	Amount          decimal.Decimal `json:"amount"` // positive
	Status          RecordStatus    `json:"status"`
	Category        string          `json:"category"`
}

func (i Invoice) RecordReference() string       { return i.ReferenceNumber }
func (i Invoice) RecordAmount() decimal.Decimal { return i.Amount }
func (i Invoice) RecordDate() Date              { return i.CreationDate }
func (i Invoice) CurrentStatus() RecordStatus   { return i.Status }
