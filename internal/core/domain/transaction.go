package domain

import "github.com/shopspring/decimal"

// TransactionCategory classifies a bank transaction line.
type TransactionCategory string

const (
	CategoryIncome  TransactionCategory = "income"
	CategoryExpense TransactionCategory = "expense"
)

// Transaction is a bank transaction from the external feed. The amount is
// signed: positive is income/credit, negative is expense/debit. Transactions
// are read-only; reconciliation and aggregation only ever inspect them.
type Transaction struct {
	TransactionDate Date                `json:"transactionDate"`
	Description     string              `json:"description"`
	ReferenceNumber string              `json:"referenceNumber"`
	Amount          decimal.Decimal     `json:"amount"`
	Category        TransactionCategory `json:"category"`
}
