package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/findash/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/findash/finance_dashboard_app/internal/core/ports/services"
	"github.com/findash/finance_dashboard_app/internal/utils/reporting"
)

// trailingMonths is the length of the summary's aggregation window. The
// period-over-period deltas compare against the equally long window before
// it, i.e. months 13-24 back.
const trailingMonths = 12

// reportingService implements the ReportingService interface. All metrics
// are recomputed from the stores on every call; nothing is cached, so a
// summary taken after any mutation already reflects it.
type reportingService struct {
	BaseService
	guard       *SnapshotGuard
	invoiceRepo portsrepo.InvoiceReader
	billRepo    portsrepo.BillReader
	txnRepo     portsrepo.TransactionReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(
	guard *SnapshotGuard,
	invoiceRepo portsrepo.InvoiceReader,
	billRepo portsrepo.BillReader,
	txnRepo portsrepo.TransactionReader,
) portssvc.ReportingService {
	return &reportingService{
		guard:       guard,
		invoiceRepo: invoiceRepo,
		billRepo:    billRepo,
		txnRepo:     txnRepo,
	}
}

// Ensure reportingService implements the ReportingService interface
var _ portssvc.ReportingService = (*reportingService)(nil)

func (s *reportingService) Summary(ctx context.Context, now time.Time) (*domain.DashboardSummary, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices for summary")
		return nil, err
	}
	bills, err := s.billRepo.ListBills(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list bills for summary")
		return nil, err
	}
	txns, err := s.txnRepo.ListTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions for summary")
		return nil, err
	}

	current := reporting.TrailingWindow(now, trailingMonths)
	prior := reporting.PriorWindow(now, trailingMonths)

	income := reporting.Sum(invoices, current)
	incomePrior := reporting.Sum(invoices, prior)
	expenses := reporting.SumMagnitude(bills, current)
	expensesPrior := reporting.SumMagnitude(bills, prior)

	// Net income is income minus expenses computed per window, never the
	// difference of two pre-aggregated net figures.
	net := income.Sub(expenses)
	netPrior := incomePrior.Sub(expensesPrior)

	balance := reporting.CashBalance(txns)
	cutoff := now.AddDate(0, 0, -30)

	summary := &domain.DashboardSummary{
		CashBalance:     balance,
		CashBalanceBand: domain.CashBandFor(balance),
		InvoicesLast30:  reporting.CountSince(invoices, cutoff),
		BillsLast30:     reporting.CountSince(bills, cutoff),
		TotalIncome:     income,
		TotalExpenses:   expenses,
		NetIncome:       net,
		IncomeDelta:     domain.NewDeltaPercent(income, incomePrior),
		ExpensesDelta:   domain.NewDeltaPercent(expenses, expensesPrior),
		NetIncomeDelta:  domain.NewDeltaPercent(net, netPrior),
	}

	s.LogDebug(ctx, "Dashboard summary computed",
		slog.Int("invoice_count", len(invoices)),
		slog.Int("bill_count", len(bills)),
		slog.Int("transaction_count", len(txns)))
	return summary, nil
}

func (s *reportingService) MonthlyRevenue(ctx context.Context, now time.Time) ([]domain.MonthlyRevenueRow, error) {
	s.guard.RLock()
	defer s.guard.RUnlock()

	invoices, err := s.invoiceRepo.ListInvoices(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices for revenue series")
		return nil, err
	}
	return reporting.MonthlyRevenue(invoices, now), nil
}
