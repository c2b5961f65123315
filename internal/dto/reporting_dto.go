package dto

import (
	"github.com/findash/finance_dashboard_app/internal/core/domain"
	"github.com/findash/finance_dashboard_app/internal/utils"
	"github.com/shopspring/decimal"
)

// SummaryResponse carries the dashboard summary metrics. Display fields use
// whole-dollar formatting to match the summary cards.
type SummaryResponse struct {
	CashBalance          decimal.Decimal     `json:"cashBalance"`
	CashBalanceDisplay   string              `json:"cashBalanceDisplay"`
	CashBalanceBand      domain.CashBand     `json:"cashBalanceBand"`
	InvoicesLast30       int                 `json:"invoicesLast30Days"`
	BillsLast30          int                 `json:"billsLast30Days"`
	TotalIncome          decimal.Decimal     `json:"totalIncome"`
	TotalIncomeDisplay   string              `json:"totalIncomeDisplay"`
	TotalExpenses        decimal.Decimal     `json:"totalExpenses"`
	TotalExpensesDisplay string              `json:"totalExpensesDisplay"`
	NetIncome            decimal.Decimal     `json:"netIncome"`
	NetIncomeDisplay     string              `json:"netIncomeDisplay"`
	IncomeDelta          domain.DeltaPercent `json:"incomeDelta"`
	ExpensesDelta        domain.DeltaPercent `json:"expensesDelta"`
	NetIncomeDelta       domain.DeltaPercent `json:"netIncomeDelta"`
}

// ToSummaryResponse converts a domain.DashboardSummary to its response DTO.
func ToSummaryResponse(s *domain.DashboardSummary) SummaryResponse {
	return SummaryResponse{
		CashBalance:          s.CashBalance,
		CashBalanceDisplay:   utils.FormatPriceWholeNumber(s.CashBalance),
		CashBalanceBand:      s.CashBalanceBand,
		InvoicesLast30:       s.InvoicesLast30,
		BillsLast30:          s.BillsLast30,
		TotalIncome:          s.TotalIncome,
		TotalIncomeDisplay:   utils.FormatPriceWholeNumber(s.TotalIncome),
		TotalExpenses:        s.TotalExpenses,
		TotalExpensesDisplay: utils.FormatPriceWholeNumber(s.TotalExpenses),
		NetIncome:            s.NetIncome,
		NetIncomeDisplay:     utils.FormatPriceWholeNumber(s.NetIncome),
		IncomeDelta:          s.IncomeDelta,
		ExpensesDelta:        s.ExpensesDelta,
		NetIncomeDelta:       s.NetIncomeDelta,
	}
}

// MonthlyRevenueResponse wraps the current-year revenue series for the bar
// chart.
type MonthlyRevenueResponse struct {
	Year   int                        `json:"year"`
	Months []domain.MonthlyRevenueRow `json:"months"`
}
