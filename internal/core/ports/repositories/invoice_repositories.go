package repositories

import (
	"context"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
)

// InvoiceReader defines read operations for the invoice collection.
type InvoiceReader interface {
	// FindInvoiceByReference retrieves an invoice by its reference number.
	FindInvoiceByReference(ctx context.Context, ref string) (*domain.Invoice, error)

	// ListInvoices returns the collection in insertion order.
	ListInvoices(ctx context.Context) ([]domain.Invoice, error)
}

// InvoiceWriter defines write operations for the invoice collection. Every
// rejection leaves the collection untouched.
type InvoiceWriter interface {
	// SaveInvoice appends a new invoice. Returns apperrors.ErrDuplicate when
	// the reference number is already taken.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdateInvoice replaces the invoice stored under ref in place. Renaming
	// onto an existing reference returns apperrors.ErrDuplicate.
	UpdateInvoice(ctx context.Context, ref string, invoice domain.Invoice) error

	// DeleteInvoice removes the invoice stored under ref.
	DeleteInvoice(ctx context.Context, ref string) error

	// ReplaceInvoices swaps in a whole new collection (initial feed load).
	ReplaceInvoices(ctx context.Context, invoices []domain.Invoice) error

	// ReplaceInvoiceStatuses overwrites each invoice's status positionally,
	// matching the order ListInvoices returns. Only reconciliation calls this.
	ReplaceInvoiceStatuses(ctx context.Context, statuses []domain.RecordStatus) error
}

// InvoiceRepositoryFacade combines all invoice repository interfaces.
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
}
