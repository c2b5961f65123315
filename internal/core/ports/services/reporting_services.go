package services

import (
	"context"
	"time"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
)

// ReportingService derives the dashboard's summary metrics from the record
// stores. All methods are pure reads over a consistent snapshot.
type ReportingService interface {
	// Summary computes the dashboard metrics relative to now: cash balance,
	// last-30-day counts, trailing-12-month totals and their deltas against
	// the 12 months before that.
	Summary(ctx context.Context, now time.Time) (*domain.DashboardSummary, error)

	// MonthlyRevenue returns the per-month invoice totals for now's calendar
	// year.
	MonthlyRevenue(ctx context.Context, now time.Time) ([]domain.MonthlyRevenueRow, error)
}
