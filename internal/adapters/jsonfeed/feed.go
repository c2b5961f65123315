// Package jsonfeed is the external data source for the dashboard: static
// JSON payloads on disk served with a simulated network delay. Any backing
// store would do as long as it returns the same shapes; this one stands in
// for the real backend the dashboard never had.
package jsonfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/findash/finance_dashboard_app/internal/core/domain"
)

const (
	invoicesFile     = "invoices.json"
	billsFile        = "bills.json"
	transactionsFile = "transactions.json"
)

// Feed reads the mock collections from a data directory.
type Feed struct {
	dataDir string
	delay   time.Duration
}

// New creates a feed rooted at dataDir. Each fetch sleeps delay before
// returning, simulating network latency.
func New(dataDir string, delay time.Duration) *Feed {
	return &Feed{dataDir: dataDir, delay: delay}
}

// FetchInvoices loads the invoice payload.
func (f *Feed) FetchInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	if err := f.fetch(ctx, invoicesFile, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// FetchBills loads the bill payload.
func (f *Feed) FetchBills(ctx context.Context) ([]domain.Bill, error) {
	var bills []domain.Bill
	if err := f.fetch(ctx, billsFile, &bills); err != nil {
		return nil, err
	}
	return bills, nil
}

// FetchTransactions loads the bank transaction payload.
func (f *Feed) FetchTransactions(ctx context.Context) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	if err := f.fetch(ctx, transactionsFile, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// fetch reads and decodes one payload file, honouring context cancellation
// during the simulated latency.
func (f *Feed) fetch(ctx context.Context, name string, out any) error {
	data, err := os.ReadFile(filepath.Join(f.dataDir, name))
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", name, err)
	}

	if f.delay > 0 {
		timer := time.NewTimer(f.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("malformed payload in %s: %w", name, err)
	}
	return nil
}
