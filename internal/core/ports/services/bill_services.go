package services

import (
	"context"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
	"github.com/findash/finance_dashboard_app/internal/dto"
)

// BillReaderSvc defines read operations over the bill collection.
type BillReaderSvc interface {
	// ListBills returns the collection projected through the requested sort
	// and filter parameters.
	ListBills(ctx context.Context, params dto.ListRecordsParams) ([]domain.Bill, error)
}

// BillWriterSvc defines the mutation entry points exposed to the UI layer.
type BillWriterSvc interface {
	// CreateBill validates and appends a new bill, then returns the updated
	// collection.
	CreateBill(ctx context.Context, req dto.CreateBillRequest) ([]domain.Bill, error)

	// UpdateBill edits the bill stored under ref, then returns the updated
	// collection.
	UpdateBill(ctx context.Context, ref string, req dto.UpdateBillRequest) ([]domain.Bill, error)

	// DeleteBill removes the bill stored under ref, then returns the updated
	// collection.
	DeleteBill(ctx context.Context, ref string) ([]domain.Bill, error)

	// ReplaceBills swaps in the collection fetched from the data feed.
	ReplaceBills(ctx context.Context, bills []domain.Bill) error
}

// BillSvcFacade combines all bill-related service interfaces.
type BillSvcFacade interface {
	BillReaderSvc
	BillWriterSvc
}
