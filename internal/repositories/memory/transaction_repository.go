package memory

import (
	"context"
	"sync"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/findash/finance_dashboard_app/internal/core/ports/repositories"
)

// TransactionRepository is the in-memory bank transaction store. The feed is
// the only writer; reconciliation and aggregation only ever read it.
type TransactionRepository struct {
	mu   sync.RWMutex
	txns []domain.Transaction
}

// NewTransactionRepository creates an empty transaction store.
func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Transaction, len(r.txns))
	copy(out, r.txns)
	return out, nil
}

func (r *TransactionRepository) ReplaceTransactions(ctx context.Context, txns []domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.txns = make([]domain.Transaction, len(txns))
	copy(r.txns, txns)
	return nil
}
