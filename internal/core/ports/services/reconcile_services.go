package services

import "context"

// ReconcilerSvc recomputes PAID/UNPAID statuses from the transaction feed.
// Each method reports whether any status actually changed; an unchanged pass
// performs no store write.
type ReconcilerSvc interface {
	ReconcileInvoices(ctx context.Context) (bool, error)
	ReconcileBills(ctx context.Context) (bool, error)

	// ReconcileAll runs both passes, e.g. after the initial feed load.
	ReconcileAll(ctx context.Context) error
}
