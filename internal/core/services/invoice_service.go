package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/findash/finance_dashboard_app/internal/apperrors"
	"github.com/findash/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/findash/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/findash/finance_dashboard_app/internal/core/ports/services"
	"github.com/findash/finance_dashboard_app/internal/dto"
	"github.com/findash/finance_dashboard_app/internal/utils/projection"
	"github.com/shopspring/decimal"
)

// invoiceService implements the InvoiceSvcFacade interface. Every mutation
// runs under the snapshot guard and finishes with a reconciliation pass, so
// callers always get back a collection with freshly derived statuses.
type invoiceService struct {
	BaseService
	guard       *SnapshotGuard
	invoiceRepo portsrepo.InvoiceRepositoryFacade
	reconciler  *reconcilerService
}

// NewInvoiceService creates a new invoice service.
func NewInvoiceService(guard *SnapshotGuard, repo portsrepo.InvoiceRepositoryFacade, reconciler *reconcilerService) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		guard:       guard,
		invoiceRepo: repo,
		reconciler:  reconciler,
	}
}

// Ensure invoiceService implements the InvoiceSvcFacade interface
var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest) ([]domain.Invoice, error) {
	creationDate := domain.ParseDate(req.CreationDate)
	if !creationDate.Valid() {
		err := fmt.Errorf("creationDate %q is not a valid date: %w", req.CreationDate, apperrors.ErrValidation)
		s.LogDebug(ctx, "Rejected invoice create", slog.String("reason", err.Error()))
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		err := fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
		s.LogDebug(ctx, "Rejected invoice create", slog.String("reference_number", req.ReferenceNumber))
		return nil, err
	}

	invoice := domain.Invoice{
		ClientName:      req.ClientName,
		CreationDate:    creationDate,
		ReferenceNumber: req.ReferenceNumber,
		Amount:          req.Amount,
		Status:          domain.Unpaid, // always starts unpaid; reconciliation decides the rest
		Category:        req.Category,
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		s.LogDebug(ctx, "Failed to save invoice",
			slog.String("reference_number", invoice.ReferenceNumber),
			slog.String("error", err.Error()))
		return nil, err
	}
	if _, err := s.reconciler.reconcileInvoicesLocked(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Invoice created",
		slog.String("reference_number", invoice.ReferenceNumber),
		slog.String("client_name", invoice.ClientName))
	return s.invoiceRepo.ListInvoices(ctx)
}

func (s *invoiceService) UpdateInvoice(ctx context.Context, ref string, req dto.UpdateInvoiceRequest) ([]domain.Invoice, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	existing, err := s.invoiceRepo.FindInvoiceByReference(ctx, ref)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.ClientName != nil {
		updated.ClientName = *req.ClientName
	}
	if req.CreationDate != nil {
		date := domain.ParseDate(*req.CreationDate)
		if !date.Valid() {
			return nil, fmt.Errorf("creationDate %q is not a valid date: %w", *req.CreationDate, apperrors.ErrValidation)
		}
		updated.CreationDate = date
	}
	if req.ReferenceNumber != nil {
		updated.ReferenceNumber = *req.ReferenceNumber
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
		}
		updated.Amount = *req.Amount
	}
	if req.Category != nil {
		updated.Category = *req.Category
	}

	if err := s.invoiceRepo.UpdateInvoice(ctx, ref, updated); err != nil {
		s.LogDebug(ctx, "Failed to update invoice",
			slog.String("reference_number", ref),
			slog.String("error", err.Error()))
		return nil, err
	}
	if _, err := s.reconciler.reconcileInvoicesLocked(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Invoice updated", slog.String("reference_number", updated.ReferenceNumber))
	return s.invoiceRepo.ListInvoices(ctx)
}

func (s *invoiceService) DeleteInvoice(ctx context.Context, ref string) ([]domain.Invoice, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	if err := s.invoiceRepo.DeleteInvoice(ctx, ref); err != nil {
		return nil, err
	}
	if _, err := s.reconciler.reconcileInvoicesLocked(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Invoice deleted", slog.String("reference_number", ref))
	return s.invoiceRepo.ListInvoices(ctx)
}

func (s *invoiceService) ReplaceInvoices(ctx context.Context, invoices []domain.Invoice) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	if err := s.invoiceRepo.ReplaceInvoices(ctx, invoices); err != nil {
		return err
	}
	if _, err := s.reconciler.reconcileInvoicesLocked(ctx); err != nil {
		return err
	}

	s.LogInfo(ctx, "Invoice collection loaded", slog.Int("invoice_count", len(invoices)))
	return nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, params dto.ListRecordsParams) ([]domain.Invoice, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, err
	}

	filter := recordFilter(params)
	match := func(inv domain.Invoice) bool {
		return projection.MatchText(filter.Search, inv.ClientName, inv.ReferenceNumber) &&
			projection.InDateRange(inv.CreationDate, filter.From, filter.To)
	}
	return projection.Apply(invoices, invoiceComparator(params.SortBy), sortDirection(params), match), nil
}

// invoiceComparator maps a sort column onto its natural ordering. Unknown or
// empty columns return nil, which leaves the collection in insertion order.
func invoiceComparator(column string) func(a, b domain.Invoice) int {
	switch column {
	case "clientName":
		return func(a, b domain.Invoice) int { return strings.Compare(a.ClientName, b.ClientName) }
	case "creationDate":
		return func(a, b domain.Invoice) int { return compareDates(a.CreationDate, b.CreationDate) }
	case "referenceNumber":
		return func(a, b domain.Invoice) int { return strings.Compare(a.ReferenceNumber, b.ReferenceNumber) }
	case "amount":
		return func(a, b domain.Invoice) int { return a.Amount.Cmp(b.Amount) }
	case "status":
		return func(a, b domain.Invoice) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case "category":
		return func(a, b domain.Invoice) int { return strings.Compare(a.Category, b.Category) }
	}
	return nil
}
