package dto

import (
	"github.com/findash/finance_dashboard_app/internal/core/domain"
	"github.com/findash/finance_dashboard_app/internal/utils"
	"github.com/shopspring/decimal"
)

// TransactionResponse defines the data returned for a bank transaction.
type TransactionResponse struct {
	TransactionDate string                     `json:"transactionDate"`
	Description     string                     `json:"description"`
	ReferenceNumber string                     `json:"referenceNumber"`
	Amount          decimal.Decimal            `json:"amount"`
	AmountDisplay   string                     `json:"amountDisplay"`
	Category        domain.TransactionCategory `json:"category"`
}

// ToTransactionResponse converts a domain.Transaction to a response DTO.
func ToTransactionResponse(txn domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionDate: txn.TransactionDate.String(),
		Description:     txn.Description,
		ReferenceNumber: txn.ReferenceNumber,
		Amount:          txn.Amount,
		AmountDisplay:   utils.FormatPrice(txn.Amount),
		Category:        txn.Category,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(txn)
	}
	return res
}

// ListTransactionsResponse wraps the transaction collection.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}
