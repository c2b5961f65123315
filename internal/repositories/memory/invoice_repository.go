// Package memory holds the slice-backed record stores. Each store owns its
// collection exclusively, keeps insertion order, and enforces reference
// number uniqueness at the store boundary rather than in any UI handler.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/findash/finance_dashboard_app/internal/apperrors"
	"github.com/findash/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/findash/finance_dashboard_app/internal/core/ports/repositories"
)

// InvoiceRepository is the in-memory invoice store.
type InvoiceRepository struct {
	mu       sync.RWMutex
	invoices []domain.Invoice
	index    map[string]int // reference number -> slice position
}

// NewInvoiceRepository creates an empty invoice store.
func NewInvoiceRepository() *InvoiceRepository {
	return &InvoiceRepository{index: make(map[string]int)}
}

// Ensure InvoiceRepository implements the facade interface.
var _ portsrepo.InvoiceRepositoryFacade = (*InvoiceRepository)(nil)

func (r *InvoiceRepository) FindInvoiceByReference(ctx context.Context, ref string) (*domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[ref]
	if !ok {
		return nil, fmt.Errorf("invoice %q: %w", ref, apperrors.ErrNotFound)
	}
	inv := r.invoices[i]
	return &inv, nil
}

func (r *InvoiceRepository) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Invoice, len(r.invoices))
	copy(out, r.invoices)
	return out, nil
}

func (r *InvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[invoice.ReferenceNumber]; ok {
		return fmt.Errorf("invoice %q: %w", invoice.ReferenceNumber, apperrors.ErrDuplicate)
	}
	r.index[invoice.ReferenceNumber] = len(r.invoices)
	r.invoices = append(r.invoices, invoice)
	return nil
}

func (r *InvoiceRepository) UpdateInvoice(ctx context.Context, ref string, invoice domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[ref]
	if !ok {
		return fmt.Errorf("invoice %q: %w", ref, apperrors.ErrNotFound)
	}
	if invoice.ReferenceNumber != ref {
		if _, taken := r.index[invoice.ReferenceNumber]; taken {
			return fmt.Errorf("invoice %q: %w", invoice.ReferenceNumber, apperrors.ErrDuplicate)
		}
		delete(r.index, ref)
		r.index[invoice.ReferenceNumber] = i
	}
	r.invoices[i] = invoice
	return nil
}

func (r *InvoiceRepository) DeleteInvoice(ctx context.Context, ref string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[ref]
	if !ok {
		return fmt.Errorf("invoice %q: %w", ref, apperrors.ErrNotFound)
	}
	r.invoices = append(r.invoices[:i], r.invoices[i+1:]...)
	delete(r.index, ref)
	for j := i; j < len(r.invoices); j++ {
		r.index[r.invoices[j].ReferenceNumber] = j
	}
	return nil
}

func (r *InvoiceRepository) ReplaceInvoices(ctx context.Context, invoices []domain.Invoice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Feed payloads are not trusted to be duplicate-free; the first record
	// under a reference wins so the uniqueness invariant holds after load.
	r.invoices = r.invoices[:0]
	r.index = make(map[string]int, len(invoices))
	for _, inv := range invoices {
		if _, ok := r.index[inv.ReferenceNumber]; ok {
			continue
		}
		r.index[inv.ReferenceNumber] = len(r.invoices)
		r.invoices = append(r.invoices, inv)
	}
	return nil
}

func (r *InvoiceRepository) ReplaceInvoiceStatuses(ctx context.Context, statuses []domain.RecordStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(statuses) != len(r.invoices) {
		return fmt.Errorf("status count %d does not match invoice count %d: %w",
			len(statuses), len(r.invoices), apperrors.ErrValidation)
	}
	for i := range r.invoices {
		r.invoices[i].Status = statuses[i]
	}
	return nil
}
