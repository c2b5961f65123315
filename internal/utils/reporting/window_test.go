package reporting_test

import (
	"testing"
	"time"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
	"github.com/findash/finance_dashboard_app/internal/utils/reporting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// now is mid-August 2026 for every window test, so the trailing-12-months
// window runs 2025-09-01 through 2026-08-31 and the prior window 2024-09-01
// through 2025-08-31.
var now = time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

func TestTrailingWindow_MonthAnchored(t *testing.T) {
	w := reporting.TrailingWindow(now, 12)

	assert.Equal(t, time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.Equal(t, time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC), w.End)
}

func TestPriorWindow_AbutsTrailingWindow(t *testing.T) {
	current := reporting.TrailingWindow(now, 12)
	prior := reporting.PriorWindow(now, 12)

	assert.Equal(t, time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), prior.Start)
	assert.Equal(t, time.Date(2025, 8, 31, 0, 0, 0, 0, time.UTC), prior.End)
	assert.Equal(t, current.Start.AddDate(0, 0, -1), prior.End, "no gap and no overlap")
}

func TestWindow_ContainsBoundaries(t *testing.T) {
	w := reporting.TrailingWindow(now, 12)

	assert.True(t, w.Contains(domain.ParseDate("2025-09-01")), "first day in")
	assert.True(t, w.Contains(domain.ParseDate("2026-08-31")), "last day in")
	assert.False(t, w.Contains(domain.ParseDate("2025-08-31")), "day before start out")
	assert.False(t, w.Contains(domain.ParseDate("2026-09-01")), "day after end out")
	assert.False(t, w.Contains(domain.ParseDate("never")), "invalid date out")
}

func TestSum_DeltaAndMagnitude(t *testing.T) {
	invoices := []domain.Invoice{
		{ReferenceNumber: "A", CreationDate: domain.ParseDate("2026-02-10"), Amount: decimal.NewFromInt(700)},
		{ReferenceNumber: "B", CreationDate: domain.ParseDate("2025-10-01"), Amount: decimal.NewFromInt(500)},
		{ReferenceNumber: "C", CreationDate: domain.ParseDate("2025-03-05"), Amount: decimal.NewFromInt(1000)},
		{ReferenceNumber: "D", CreationDate: domain.ParseDate("junk"), Amount: decimal.NewFromInt(9999)},
	}

	current := reporting.Sum(invoices, reporting.TrailingWindow(now, 12))
	prior := reporting.Sum(invoices, reporting.PriorWindow(now, 12))

	assert.True(t, current.Equal(decimal.NewFromInt(1200)), "got %s", current)
	assert.True(t, prior.Equal(decimal.NewFromInt(1000)), "got %s", prior)

	delta := domain.NewDeltaPercent(current, prior)
	assert.Equal(t, "20.00", delta.String())
}

func TestSumMagnitude_AbsolutesNegativeAmounts(t *testing.T) {
	bills := []domain.Bill{
		{ReferenceNumber: "B1", CreationDate: domain.ParseDate("2026-01-15"), Amount: decimal.NewFromInt(-300)},
		{ReferenceNumber: "B2", CreationDate: domain.ParseDate("2026-02-15"), Amount: decimal.NewFromInt(200)},
	}

	total := reporting.SumMagnitude(bills, reporting.TrailingWindow(now, 12))
	assert.True(t, total.Equal(decimal.NewFromInt(500)), "got %s", total)
}

func TestDeltaPercent_NAOnZeroPrior(t *testing.T) {
	delta := domain.NewDeltaPercent(decimal.NewFromInt(500), decimal.Zero)
	assert.Equal(t, "N/A", delta.String())

	// Both zero also has no meaningful ratio.
	delta = domain.NewDeltaPercent(decimal.Zero, decimal.Zero)
	assert.Equal(t, "N/A", delta.String())
}

func TestCountSince_StrictlyAfterCutoff(t *testing.T) {
	cutoff := now.AddDate(0, 0, -30)
	invoices := []domain.Invoice{
		{ReferenceNumber: "A", CreationDate: domain.NewDate(cutoff)},                  // exactly 30 days ago, excluded
		{ReferenceNumber: "B", CreationDate: domain.NewDate(cutoff.AddDate(0, 0, 1))}, // 29 days ago
		{ReferenceNumber: "C", CreationDate: domain.ParseDate("2026-08-14")},
		{ReferenceNumber: "D", CreationDate: domain.ParseDate("2026-01-01")},
		{ReferenceNumber: "E", CreationDate: domain.ParseDate("nonsense")},
	}

	assert.Equal(t, 2, reporting.CountSince(invoices, cutoff))
}

func TestCashBalance_SignedSumOverAllTime(t *testing.T) {
	txns := []domain.Transaction{
		{Amount: decimal.NewFromFloat(4800)},
		{Amount: decimal.NewFromFloat(-2400)},
		{Amount: decimal.NewFromFloat(42.13)},
	}

	balance := reporting.CashBalance(txns)
	assert.True(t, balance.Equal(decimal.NewFromFloat(2442.13)), "got %s", balance)

	assert.True(t, reporting.CashBalance(nil).IsZero(), "empty feed balances to zero")
}

func TestMonthlyRevenue_BucketsCurrentYearOnly(t *testing.T) {
	invoices := []domain.Invoice{
		{ReferenceNumber: "A", CreationDate: domain.ParseDate("2026-03-10"), Amount: decimal.NewFromInt(100)},
		{ReferenceNumber: "B", CreationDate: domain.ParseDate("2026-03-25"), Amount: decimal.NewFromInt(50)},
		{ReferenceNumber: "C", CreationDate: domain.ParseDate("2025-03-25"), Amount: decimal.NewFromInt(999)},
		{ReferenceNumber: "D", CreationDate: domain.ParseDate("junk"), Amount: decimal.NewFromInt(999)},
	}

	rows := reporting.MonthlyRevenue(invoices, now)

	require.Len(t, rows, 12)
	assert.Equal(t, "January", rows[0].Month)
	assert.Equal(t, "December", rows[11].Month)
	assert.True(t, rows[2].Revenue.Equal(decimal.NewFromInt(150)), "March got %s", rows[2].Revenue)
	for i, row := range rows {
		if i != 2 {
			assert.True(t, row.Revenue.IsZero(), "%s should be empty", row.Month)
		}
	}
}
