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

// billService implements the BillSvcFacade interface. Mirrors invoiceService
// over the independent bill collection.
type billService struct {
	BaseService
	guard      *SnapshotGuard
	billRepo   portsrepo.BillRepositoryFacade
	reconciler *reconcilerService
}

// NewBillService creates a new bill service.
func NewBillService(guard *SnapshotGuard, repo portsrepo.BillRepositoryFacade, reconciler *reconcilerService) portssvc.BillSvcFacade {
	return &billService{
		guard:      guard,
		billRepo:   repo,
		reconciler: reconciler,
	}
}

// Ensure billService implements the BillSvcFacade interface
var _ portssvc.BillSvcFacade = (*billService)(nil)

func (s *billService) CreateBill(ctx context.Context, req dto.CreateBillRequest) ([]domain.Bill, error) {
	creationDate := domain.ParseDate(req.CreationDate)
	if !creationDate.Valid() {
		err := fmt.Errorf("creationDate %q is not a valid date: %w", req.CreationDate, apperrors.ErrValidation)
		s.LogDebug(ctx, "Rejected bill create", slog.String("reason", err.Error()))
		return nil, err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		err := fmt.Errorf("amount must be positive: %w", apperrors.ErrValidation)
		s.LogDebug(ctx, "Rejected bill create", slog.String("reference_number", req.ReferenceNumber))
		return nil, err
	}

	bill := domain.Bill{
		Vendor:          req.Vendor,
		CreationDate:    creationDate,
		ReferenceNumber: req.ReferenceNumber,
		Amount:          req.Amount,
		Status:          domain.Unpaid,
		Category:        req.Category,
	}

	s.guard.Lock()
	defer s.guard.Unlock()

	if err := s.billRepo.SaveBill(ctx, bill); err != nil {
		s.LogDebug(ctx, "Failed to save bill",
			slog.String("reference_number", bill.ReferenceNumber),
			slog.String("error", err.Error()))
		return nil, err
	}
	if _, err := s.reconciler.reconcileBillsLocked(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bill created",
		slog.String("reference_number", bill.ReferenceNumber),
		slog.String("vendor", bill.Vendor))
	return s.billRepo.ListBills(ctx)
}

func (s *billService) UpdateBill(ctx context.Context, ref string, req dto.UpdateBillRequest) ([]domain.Bill, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	existing, err := s.billRepo.FindBillByReference(ctx, ref)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.Vendor != nil {
		updated.Vendor = *req.Vendor
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

	if err := s.billRepo.UpdateBill(ctx, ref, updated); err != nil {
		s.LogDebug(ctx, "Failed to update bill",
			slog.String("reference_number", ref),
			slog.String("error", err.Error()))
		return nil, err
	}
	if _, err := s.reconciler.reconcileBillsLocked(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bill updated", slog.String("reference_number", updated.ReferenceNumber))
	return s.billRepo.ListBills(ctx)
}

func (s *billService) DeleteBill(ctx context.Context, ref string) ([]domain.Bill, error) {
	s.guard.Lock()
	defer s.guard.Unlock()

	if err := s.billRepo.DeleteBill(ctx, ref); err != nil {
		return nil, err
	}
	if _, err := s.reconciler.reconcileBillsLocked(ctx); err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Bill deleted", slog.String("reference_number", ref))
	return s.billRepo.ListBills(ctx)
}

func (s *billService) ReplaceBills(ctx context.Context, bills []domain.Bill) error {
	s.guard.Lock()
	defer s.guard.Unlock()

	if err := s.billRepo.ReplaceBills(ctx, bills); err != nil {
		return err
	}
	if _, err := s.reconciler.reconcileBillsLocked(ctx); err != nil {
		return err
	}

	s.LogInfo(ctx, "Bill collection loaded", slog.Int("bill_count", len(bills)))
	return nil
}

func (s *billService) ListBills(ctx context.Context, params dto.ListRecordsParams) ([]domain.Bill, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	bills, err := s.billRepo.ListBills(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills")
		return nil, err
	}

	filter := recordFilter(params)
	match := func(bill domain.Bill) bool {
		return projection.MatchText(filter.Search, bill.Vendor, bill.ReferenceNumber) &&
			projection.InDateRange(bill.CreationDate, filter.From, filter.To)
	}
	return projection.Apply(bills, billComparator(params.SortBy), sortDirection(params), match), nil
}

// billComparator maps a sort column onto its natural ordering. Unknown or
// empty columns return nil, which leaves the collection in insertion order.
func billComparator(column string) func(a, b domain.Bill) int {
	switch column {
	case "vendor":
		return func(a, b domain.Bill) int { return strings.Compare(a.Vendor, b.Vendor) }
	case "creationDate":
		return func(a, b domain.Bill) int { return compareDates(a.CreationDate, b.CreationDate) }
	case "referenceNumber":
		return func(a, b domain.Bill) int { return strings.Compare(a.ReferenceNumber, b.ReferenceNumber) }
	case "amount":
		return func(a, b domain.Bill) int { return a.Amount.Cmp(b.Amount) }
	case "status":
		return func(a, b domain.Bill) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case "category":
		return func(a, b domain.Bill) int { return strings.Compare(a.Category, b.Category) }
	}
	return nil
}
