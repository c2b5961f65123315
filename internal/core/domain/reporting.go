package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// DeltaPercent is a period-over-period percentage change. When the prior
// period total is zero the delta is undefined and renders as "N/A" rather
// than Infinity or NaN.
type DeltaPercent struct {
	value     decimal.Decimal
	available bool
}

// NewDeltaPercent computes ((current − prior) / prior) × 100.
func NewDeltaPercent(current, prior decimal.Decimal) DeltaPercent {
	if prior.IsZero() {
		return DeltaPercent{}
	}
	return DeltaPercent{
		value:     current.Sub(prior).Div(prior).Mul(decimal.NewFromInt(100)),
		available: true,
	}
}

// Available reports whether the delta is defined (prior period was non-zero).
func (d DeltaPercent) Available() bool { return d.available }

// Value returns the percentage. Zero when unavailable.
func (d DeltaPercent) Value() decimal.Decimal { return d.value }

func (d DeltaPercent) String() string {
	if !d.available {
		return "N/A"
	}
	return d.value.StringFixed(2)
}

func (d DeltaPercent) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *DeltaPercent) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "N/A" {
		*d = DeltaPercent{}
		return nil
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	*d = DeltaPercent{value: v, available: true}
	return nil
}

// CashBand is the display band for the cash balance figure.
type CashBand string

const (
	BandGreen   CashBand = "green"
	BandYellow  CashBand = "yellow"
	BandRed     CashBand = "red"
	BandNeutral CashBand = "neutral"
)

// cashBandThreshold is the balance above which the band turns green.
var cashBandThreshold = decimal.NewFromInt(5000)

// CashBandFor maps a balance to its display band.
func CashBandFor(balance decimal.Decimal) CashBand {
	switch {
	case balance.GreaterThan(cashBandThreshold):
		return BandGreen
	case balance.GreaterThan(decimal.Zero):
		return BandYellow
	case balance.LessThan(decimal.Zero):
		return BandRed
	default:
		return BandNeutral
	}
}

// DashboardSummary bundles the derived metrics shown on the dashboard.
// Income and expense totals cover the trailing 12 calendar months; each delta
// compares against the 12 months before that (months 13–24 back).
type DashboardSummary struct {
	CashBalance     decimal.Decimal `json:"cashBalance"`
	CashBalanceBand CashBand        `json:"cashBalanceBand"`
	InvoicesLast30  int             `json:"invoicesLast30Days"`
	BillsLast30     int             `json:"billsLast30Days"`
	TotalIncome     decimal.Decimal `json:"totalIncome"`
	TotalExpenses   decimal.Decimal `json:"totalExpenses"`
	NetIncome       decimal.Decimal `json:"netIncome"`
	IncomeDelta     DeltaPercent    `json:"incomeDelta"`
	ExpensesDelta   DeltaPercent    `json:"expensesDelta"`
	NetIncomeDelta  DeltaPercent    `json:"netIncomeDelta"`
}

// MonthlyRevenueRow is one calendar month of invoice revenue for the
// current-year bar chart.
type MonthlyRevenueRow struct {
	Month   string          `json:"month"` // "January" .. "December"
	Revenue decimal.Decimal `json:"revenue"`
}
