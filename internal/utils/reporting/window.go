// Package reporting computes the dashboard's windowed aggregates: trailing
// month-anchored sums, period-over-period deltas, last-30-days counts and the
// all-time cash balance.
package reporting

import (
	"time"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Window is a fixed date range anchored to calendar-month boundaries,
// inclusive on both ends.
type Window struct {
	Start time.Time
	End   time.Time
}

// TrailingWindow builds the trailing-N-months window for a reference instant:
// End is the last calendar day of now's month, Start the first calendar day
// of the month monthsAgo months earlier. Anchoring to month boundaries, not
// N*30 days back, decides which records fall in or out near month edges.
func TrailingWindow(now time.Time, monthsAgo int) Window {
	year, month, _ := now.Date()
	// Day 0 of next month normalises to the last day of this month.
	end := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	start := time.Date(year, month-time.Month(monthsAgo), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: end}
}

// PriorWindow returns the equivalent window immediately before w, i.e. for a
// trailing-12-months window the months 13–24 back. Used as the comparison
// period for the period-over-period deltas.
func PriorWindow(now time.Time, monthsAgo int) Window {
	year, month, _ := now.Date()
	// Day 0 of (month − monthsAgo) is the last day of month − monthsAgo − 1,
	// so the prior window ends just before the current one starts.
	end := time.Date(year, month-time.Month(monthsAgo), 0, 0, 0, 0, 0, time.UTC)
	start := time.Date(year, month-time.Month(2*monthsAgo), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: end}
}

// Contains reports whether the date falls inside the window. Invalid dates
// are excluded from every windowed aggregate.
func (w Window) Contains(d domain.Date) bool {
	return d.Between(w.Start, w.End)
}

// Sum totals the amounts of the records whose creation date falls in the
// window.
func Sum[R domain.Record](records []R, w Window) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if w.Contains(r.RecordDate()) {
			total = total.Add(r.RecordAmount())
		}
	}
	return total
}

// SumMagnitude is Sum over absolute amounts. Expense totals are reported as
// non-negative figures regardless of the sign convention of the source data.
func SumMagnitude[R domain.Record](records []R, w Window) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		if w.Contains(r.RecordDate()) {
			total = total.Add(r.RecordAmount().Abs())
		}
	}
	return total
}

// CountSince counts records created strictly after the cutoff. This is the
// rolling last-30-days counter: calendar-day granularity, not month-anchored.
func CountSince[R domain.Record](records []R, cutoff time.Time) int {
	n := 0
	for _, r := range records {
		d := r.RecordDate()
		if d.Valid() && d.Time().After(cutoff) {
			n++
		}
	}
	return n
}

// CashBalance sums every transaction amount with no time filter. Positive
// transactions raise the balance, negative ones lower it.
func CashBalance(txns []domain.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range txns {
		total = total.Add(t.Amount)
	}
	return total
}

// MonthlyRevenue buckets invoice amounts into the twelve calendar months of
// the year now falls in. Invoices from other years and invoices with invalid
// dates are ignored.
func MonthlyRevenue(invoices []domain.Invoice, now time.Time) []domain.MonthlyRevenueRow {
	rows := make([]domain.MonthlyRevenueRow, 12)
	for i := range rows {
		rows[i] = domain.MonthlyRevenueRow{
			Month:   time.Month(i + 1).String(),
			Revenue: decimal.Zero,
		}
	}
	for _, inv := range invoices {
		d := inv.CreationDate
		if !d.Valid() || d.Time().Year() != now.Year() {
			continue
		}
		idx := int(d.Time().Month()) - 1
		rows[idx].Revenue = rows[idx].Revenue.Add(inv.Amount)
	}
	return rows
}
