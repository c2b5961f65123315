package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/findash/finance_dashboard_app/internal/apperrors"
	"github.com/findash/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/findash/finance_dashboard_app/internal/core/ports/repositories"
)

// BillRepository is the in-memory bill store. Bills share the lifecycle shape
// of invoices but live in an independent collection with an independent
// reference number uniqueness domain.
type BillRepository struct {
	mu    sync.RWMutex
	bills []domain.Bill
	index map[string]int
}

// NewBillRepository creates an empty bill store.
func NewBillRepository() *BillRepository {
	return &BillRepository{index: make(map[string]int)}
}

var _ portsrepo.BillRepositoryFacade = (*BillRepository)(nil)

func (r *BillRepository) FindBillByReference(ctx context.Context, ref string) (*domain.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[ref]
	if !ok {
		return nil, fmt.Errorf("bill %q: %w", ref, apperrors.ErrNotFound)
	}
	bill := r.bills[i]
	return &bill, nil
}

func (r *BillRepository) ListBills(ctx context.Context) ([]domain.Bill, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Bill, len(r.bills))
	copy(out, r.bills)
	return out, nil
}

func (r *BillRepository) SaveBill(ctx context.Context, bill domain.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[bill.ReferenceNumber]; ok {
		return fmt.Errorf("bill %q: %w", bill.ReferenceNumber, apperrors.ErrDuplicate)
	}
	r.index[bill.ReferenceNumber] = len(r.bills)
	r.bills = append(r.bills, bill)
	return nil
}

func (r *BillRepository) UpdateBill(ctx context.Context, ref string, bill domain.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[ref]
	if !ok {
		return fmt.Errorf("bill %q: %w", ref, apperrors.ErrNotFound)
	}
	if bill.ReferenceNumber != ref {
		if _, taken := r.index[bill.ReferenceNumber]; taken {
			return fmt.Errorf("bill %q: %w", bill.ReferenceNumber, apperrors.ErrDuplicate)
		}
		delete(r.index, ref)
		r.index[bill.ReferenceNumber] = i
	}
	r.bills[i] = bill
	return nil
}

func (r *BillRepository) DeleteBill(ctx context.Context, ref string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[ref]
	if !ok {
		return fmt.Errorf("bill %q: %w", ref, apperrors.ErrNotFound)
	}
	r.bills = append(r.bills[:i], r.bills[i+1:]...)
	delete(r.index, ref)
	for j := i; j < len(r.bills); j++ {
		r.index[r.bills[j].ReferenceNumber] = j
	}
	return nil
}

func (r *BillRepository) ReplaceBills(ctx context.Context, bills []domain.Bill) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.bills = r.bills[:0]
	r.index = make(map[string]int, len(bills))
	for _, bill := range bills {
		if _, ok := r.index[bill.ReferenceNumber]; ok {
			continue
		}
		r.index[bill.ReferenceNumber] = len(r.bills)
		r.bills = append(r.bills, bill)
	}
	return nil
}

func (r *BillRepository) ReplaceBillStatuses(ctx context.Context, statuses []domain.RecordStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(statuses) != len(r.bills) {
		return fmt.Errorf("status count %d does not match bill count %d: %w",
			len(statuses), len(r.bills), apperrors.ErrValidation)
	}
	for i := range r.bills {
		r.bills[i].Status = statuses[i]
	}
	return nil
}
