package domain

import "github.com/shopspring/decimal"

// RecordStatus indicates whether an invoice or bill has a matching payment.
// It is derived by reconciliation and is never set directly by the user.
type RecordStatus string

const (
	Paid   RecordStatus = "PAID"
	Unpaid RecordStatus = "UNPAID"
)

// Record is the common shape reconciliation and aggregation need from an
// invoice or a bill.
type Record interface {
	RecordReference() string
	RecordAmount() decimal.Decimal
	RecordDate() Date
	CurrentStatus() RecordStatus
}
