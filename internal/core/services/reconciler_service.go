package services

import (
	"context"
	"log/slog"

	portsrepo "github.com/findash/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/findash/finance_dashboard_app/internal/core/ports/services"
	"github.com/findash/finance_dashboard_app/internal/utils/reconcile"
)

// reconcilerService implements the ReconcilerSvc interface. The mutating
// services run its unexported passes while already holding the snapshot
// guard; the exported methods take the guard themselves.
type reconcilerService struct {
	BaseService
	guard       *SnapshotGuard
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	billRepo    portsrepo.BillRepositoryFacade
	txnRepo     portsrepo.TransactionReader
}

// NewReconcilerService creates a new reconciler service.
func NewReconcilerService(
	guard *SnapshotGuard,
	invoiceRepo portsrepo.InvoiceRepositoryFacade,
	billRepo portsrepo.BillRepositoryFacade,
	txnRepo portsrepo.TransactionReader,
) *reconcilerService {
	return &reconcilerService{
		guard:       guard,
		invoiceRepo: invoiceRepo,
		billRepo:    billRepo,
		txnRepo:     txnRepo,
	}
}

// Ensure reconcilerService implements the ReconcilerSvc interface
var _ portssvc.ReconcilerSvc = (*reconcilerService)(nil)

func (s *reconcilerService) ReconcileInvoices(ctx context.Context) (bool, error) {
	s.guard.Lock()
	defer s.guard.Unlock()
	return s.reconcileInvoicesLocked(ctx)
}

func (s *reconcilerService) ReconcileBills(ctx context.Context) (bool, error) {
	s.guard.Lock()
	defer s.guard.Unlock()
	return s.reconcileBillsLocked(ctx)
}

func (s *reconcilerService) ReconcileAll(ctx context.Context) error {
	s.guard.Lock()
	defer s.guard.Unlock()
	return s.reconcileAllLocked(ctx)
}

// reconcileInvoicesLocked recomputes invoice statuses against the current
// transaction set. Caller must hold the snapshot guard. When the computed
// statuses are element-wise identical to the stored ones the pass
// short-circuits without touching the store, which is what keeps a
// recompute-on-change caller from looping forever.
func (s *reconcilerService) reconcileInvoicesLocked(ctx context.Context) (bool, error) {
	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices for reconciliation")
		return false, err
	}
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for reconciliation")
		return false, err
	}

	statuses := reconcile.Statuses(invoices, txns)
	if !reconcile.Changed(invoices, statuses) {
		s.LogDebug(ctx, "Invoice reconciliation pass left all statuses unchanged",
			slog.Int("invoice_count", len(invoices)))
		return false, nil
	}

	if err := s.invoiceRepo.ReplaceInvoiceStatuses(ctx, statuses); err != nil {
		s.LogError(ctx, err, "Failed to store reconciled invoice statuses")
		return false, err
	}
	s.LogInfo(ctx, "Invoice statuses reconciled",
		slog.Int("invoice_count", len(invoices)),
		slog.Int("transaction_count", len(txns)))
	return true, nil
}

// reconcileBillsLocked is the bill-side counterpart of
// reconcileInvoicesLocked. Caller must hold the snapshot guard.
func (s *reconcilerService) reconcileBillsLocked(ctx context.Context) (bool, error) {
	bills, err := s.billRepo.ListBills(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills for reconciliation")
		return false, err
	}
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for reconciliation")
		return false, err
	}

	statuses := reconcile.Statuses(bills, txns)
	if !reconcile.Changed(bills, statuses) {
		s.LogDebug(ctx, "Bill reconciliation pass left all statuses unchanged",
			slog.Int("bill_count", len(bills)))
		return false, nil
	}

	if err := s.billRepo.ReplaceBillStatuses(ctx, statuses); err != nil {
		s.LogError(ctx, err, "Failed to store reconciled bill statuses")
		return false, err
	}
	s.LogInfo(ctx, "Bill statuses reconciled",
		slog.Int("bill_count", len(bills)),
		slog.Int("transaction_count", len(txns)))
	return true, nil
}

// reconcileAllLocked runs both passes. Caller must hold the snapshot guard.
func (s *reconcilerService) reconcileAllLocked(ctx context.Context) error {
	if _, err := s.reconcileInvoicesLocked(ctx); err != nil {
		return err
	}
	_, err := s.reconcileBillsLocked(ctx)
	return err
}
