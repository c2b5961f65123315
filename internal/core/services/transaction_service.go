package services

import (
	"context"
	"log/slog"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/findash/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/findash/finance_dashboard_app/internal/core/ports/services"
)

// transactionService implements the TransactionSvcFacade interface. The
// transaction collection is read-only apart from feed loads; replacing it
// reruns reconciliation for both record collections since their statuses
// derive from it.
type transactionService struct {
	BaseService
	guard      *SnapshotGuard
	txnRepo    portsrepo.TransactionRepositoryFacade
	reconciler *reconcilerService
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(guard *SnapshotGuard, repo portsrepo.TransactionRepositoryFacade, reconciler *reconcilerService) portssvc.TransactionSvcFacade {
	return &transactionService{
		guard:      guard,
		txnRepo:    repo,
		reconciler: reconciler,
	}
}

// Ensure transactionService implements the TransactionSvcFacade interface
var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	return s.txnRepo.ListTransactions(ctx)
}

func (s *transactionService) ReplaceTransactions(ctx context.Context, txns []domain.Transaction) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	if err := s.txnRepo.ReplaceTransactions(ctx, txns); err != nil {
		s.LogError(ctx, err, "Failed to load transaction collection")
		return err
	}
	if err := s.reconciler.reconcileAllLocked(ctx); err != nil {
		return err
	}

	s.LogInfo(ctx, "Transaction collection loaded", slog.Int("transaction_count", len(txns)))
	return nil
}
