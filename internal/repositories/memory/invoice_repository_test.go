package memory_test

import (
	"context"
	"testing"

	"github.com/findash/finance_dashboard_app/internal/apperrors"
	"github.com/findash/finance_dashboard_app/internal/core/domain"
	"github.com/findash/finance_dashboard_app/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInvoice(ref string) domain.Invoice {
	return domain.Invoice{
		ClientName:      "Acme Corp",
		CreationDate:    domain.ParseDate("2026-05-01"),
		ReferenceNumber: ref,
		Amount:          decimal.NewFromInt(100),
		Status:          domain.Unpaid,
	}
}

func refs(invoices []domain.Invoice) []string {
	out := make([]string, len(invoices))
	for i, inv := range invoices {
		out[i] = inv.ReferenceNumber
	}
	return out
}

func TestInvoiceRepository_SaveRejectsDuplicateReference(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInvoiceRepository()

	require.NoError(t, repo.SaveInvoice(ctx, newInvoice("INV-001")))

	err := repo.SaveInvoice(ctx, newInvoice("INV-001"))
	require.ErrorIs(t, err, apperrors.ErrDuplicate)

	// Rejection leaves the collection untouched.
	invoices, err := repo.ListInvoices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"INV-001"}, refs(invoices))
}

func TestInvoiceRepository_ListKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInvoiceRepository()

	for _, ref := range []string{"INV-003", "INV-001", "INV-002"} {
		require.NoError(t, repo.SaveInvoice(ctx, newInvoice(ref)))
	}

	invoices, err := repo.ListInvoices(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"INV-003", "INV-001", "INV-002"}, refs(invoices))
}

func TestInvoiceRepository_UpdateRename(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInvoiceRepository()
	require.NoError(t, repo.SaveInvoice(ctx, newInvoice("INV-001")))
	require.NoError(t, repo.SaveInvoice(ctx, newInvoice("INV-002")))

	renamed := newInvoice("INV-009")
	require.NoError(t, repo.UpdateInvoice(ctx, "INV-001", renamed))

	// Old reference is gone, new one resolves, position preserved.
	_, err := repo.FindInvoiceByReference(ctx, "INV-001")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	found, err := repo.FindInvoiceByReference(ctx, "INV-009")
	require.NoError(t, err)
	assert.Equal(t, "INV-009", found.ReferenceNumber)

	invoices, _ := repo.ListInvoices(ctx)
	assert.Equal(t, []string{"INV-009", "INV-002"}, refs(invoices))
}

func TestInvoiceRepository_UpdateRenameOntoTakenReference(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInvoiceRepository()
	require.NoError(t, repo.SaveInvoice(ctx, newInvoice("INV-001")))
	require.NoError(t, repo.SaveInvoice(ctx, newInvoice("INV-002")))

	err := repo.UpdateInvoice(ctx, "INV-001", newInvoice("INV-002"))
	require.ErrorIs(t, err, apperrors.ErrDuplicate)

	invoices, _ := repo.ListInvoices(ctx)
	assert.Equal(t, []string{"INV-001", "INV-002"}, refs(invoices))
}

func TestInvoiceRepository_DeleteReindexesSurvivors(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInvoiceRepository()
	for _, ref := range []string{"INV-001", "INV-002", "INV-003"} {
		require.NoError(t, repo.SaveInvoice(ctx, newInvoice(ref)))
	}

	require.NoError(t, repo.DeleteInvoice(ctx, "INV-002"))

	invoices, _ := repo.ListInvoices(ctx)
	assert.Equal(t, []string{"INV-001", "INV-003"}, refs(invoices))

	// Lookups after the removed slot still resolve.
	found, err := repo.FindInvoiceByReference(ctx, "INV-003")
	require.NoError(t, err)
	assert.Equal(t, "INV-003", found.ReferenceNumber)

	err = repo.DeleteInvoice(ctx, "INV-002")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestInvoiceRepository_ReplaceDropsDuplicatesKeepingFirst(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInvoiceRepository()

	first := newInvoice("INV-001")
	first.ClientName = "First Client"
	dupe := newInvoice("INV-001")
	dupe.ClientName = "Second Client"

	require.NoError(t, repo.ReplaceInvoices(ctx, []domain.Invoice{first, dupe, newInvoice("INV-002")}))

	invoices, _ := repo.ListInvoices(ctx)
	require.Equal(t, []string{"INV-001", "INV-002"}, refs(invoices))
	assert.Equal(t, "First Client", invoices[0].ClientName)
}

func TestInvoiceRepository_ReplaceStatusesIsPositional(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewInvoiceRepository()
	require.NoError(t, repo.SaveInvoice(ctx, newInvoice("INV-001")))
	require.NoError(t, repo.SaveInvoice(ctx, newInvoice("INV-002")))

	require.NoError(t, repo.ReplaceInvoiceStatuses(ctx, []domain.RecordStatus{domain.Paid, domain.Unpaid}))

	invoices, _ := repo.ListInvoices(ctx)
	assert.Equal(t, domain.Paid, invoices[0].Status)
	assert.Equal(t, domain.Unpaid, invoices[1].Status)

	err := repo.ReplaceInvoiceStatuses(ctx, []domain.RecordStatus{domain.Paid})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
