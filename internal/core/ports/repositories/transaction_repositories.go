package repositories

import (
	"context"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
)

// TransactionReader defines read operations for the bank transaction feed.
// Transactions are read-only for the reconciliation and aggregation engines;
// the only write is the feed replacing the whole collection.
type TransactionReader interface {
	// ListTransactions returns the collection in feed order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter holds the single write the feed performs.
type TransactionWriter interface {
	// ReplaceTransactions swaps in a whole new collection.
	ReplaceTransactions(ctx context.Context, txns []domain.Transaction) error
}

// TransactionRepositoryFacade combines the transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
