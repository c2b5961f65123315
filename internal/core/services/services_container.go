package services

import (
	portsrepo "github.com/findash/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/findash/finance_dashboard_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies. One snapshot guard is shared by every service of
// the pipeline so a mutate->reconcile pass is atomic with respect to reads.
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	guard := NewSnapshotGuard()

	reconciler := NewReconcilerService(guard, repos.InvoiceRepo, repos.BillRepo, repos.TransactionRepo)

	return &portssvc.ServiceContainer{
		Invoice:     NewInvoiceService(guard, repos.InvoiceRepo, reconciler),
		Bill:        NewBillService(guard, repos.BillRepo, reconciler),
		Transaction: NewTransactionService(guard, repos.TransactionRepo, reconciler),
		Reconciler:  reconciler,
		Reporting:   NewReportingService(guard, repos.InvoiceRepo, repos.BillRepo, repos.TransactionRepo),
	}
}
