package repositories

import (
	"context"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
)

// BillReader defines read operations for the bill collection.
type BillReader interface {
	// FindBillByReference retrieves a bill by its reference number.
	FindBillByReference(ctx context.Context, ref string) (*domain.Bill, error)

	// ListBills returns the collection in insertion order.
	ListBills(ctx context.Context) ([]domain.Bill, error)
}

// BillWriter defines write operations for the bill collection. Every
// rejection leaves the collection untouched.
type BillWriter interface {
	// SaveBill appends a new bill. Returns apperrors.ErrDuplicate when the
	// reference number is already taken.
	SaveBill(ctx context.Context, bill domain.Bill) error

	// UpdateBill replaces the bill stored under ref in place. Renaming onto
	// an existing reference returns apperrors.ErrDuplicate.
	UpdateBill(ctx context.Context, ref string, bill domain.Bill) error

	// DeleteBill removes the bill stored under ref.
	DeleteBill(ctx context.Context, ref string) error

	// ReplaceBills swaps in a whole new collection (initial feed load).
	ReplaceBills(ctx context.Context, bills []domain.Bill) error

	// ReplaceBillStatuses overwrites each bill's status positionally,
	// matching the order ListBills returns. Only reconciliation calls this.
	ReplaceBillStatuses(ctx context.Context, statuses []domain.RecordStatus) error
}

// BillRepositoryFacade combines all bill repository interfaces.
type BillRepositoryFacade interface {
	BillReader
	BillWriter
}
