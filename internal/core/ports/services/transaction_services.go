package services

import (
	"context"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
)

// TransactionReaderSvc defines read access to the bank transaction feed.
type TransactionReaderSvc interface {
	// ListTransactions returns the collection in feed order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionLoaderSvc loads the feed payload into the store. Transactions
// have no per-record mutations; the feed is the only writer.
type TransactionLoaderSvc interface {
	// ReplaceTransactions swaps in the feed payload and reruns
	// reconciliation against both record collections.
	ReplaceTransactions(ctx context.Context, txns []domain.Transaction) error
}

// TransactionSvcFacade combines the transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionLoaderSvc
}
