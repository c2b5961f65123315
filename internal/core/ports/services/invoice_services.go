package services

import (
	"context"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
	"github.com/findash/finance_dashboard_app/internal/dto"
)

// InvoiceReaderSvc defines read operations over the invoice collection.
type InvoiceReaderSvc interface {
	// ListInvoices returns the collection projected through the requested
	// sort and filter parameters.
	ListInvoices(ctx context.Context, params dto.ListRecordsParams) ([]domain.Invoice, error)
}

// InvoiceWriterSvc defines the mutation entry points exposed to the UI layer.
// Every mutation runs a reconciliation pass before returning, so the returned
// collection always carries freshly derived statuses.
type InvoiceWriterSvc interface {
	// CreateInvoice validates and appends a new invoice, then returns the
	// updated collection.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) ([]domain.Invoice, error)

	// UpdateInvoice edits the invoice stored under ref, then returns the
	// updated collection.
	UpdateInvoice(ctx context.Context, ref string, req dto.UpdateInvoiceRequest) ([]domain.Invoice, error)

	// DeleteInvoice removes the invoice stored under ref, then returns the
	// updated collection.
	DeleteInvoice(ctx context.Context, ref string) ([]domain.Invoice, error)

	// ReplaceInvoices swaps in the collection fetched from the data feed.
	ReplaceInvoices(ctx context.Context, invoices []domain.Invoice) error
}

// InvoiceSvcFacade combines all invoice-related service interfaces.
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
