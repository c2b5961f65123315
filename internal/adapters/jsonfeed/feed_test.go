package jsonfeed_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/findash/finance_dashboard_app/internal/adapters/jsonfeed"
	"github.com/findash/finance_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePayload(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestFeed_FetchInvoices(t *testing.T) {
	dir := t.TempDir()
	writePayload(t, dir, "invoices.json", `[
		{"clientName": "Acme Corp", "creationDate": "2026-05-04", "referenceNumber": "INV-001", "amount": 4800.0, "status": "UNPAID", "category": "Consulting"}
	]`)

	feed := jsonfeed.New(dir, 0)
	invoices, err := feed.FetchInvoices(context.Background())

	require.NoError(t, err)
	require.Len(t, invoices, 1)
	assert.Equal(t, "INV-001", invoices[0].ReferenceNumber)
	assert.Equal(t, "Acme Corp", invoices[0].ClientName)
	assert.True(t, invoices[0].CreationDate.Valid())
	assert.True(t, invoices[0].Amount.Equal(decimal.NewFromInt(4800)))
	assert.Equal(t, domain.Unpaid, invoices[0].Status)
}

func TestFeed_InvalidDateSurvivesDecoding(t *testing.T) {
	dir := t.TempDir()
	writePayload(t, dir, "transactions.json", `[
		{"transactionDate": "31/12/2026", "description": "odd format", "referenceNumber": "X", "amount": 10, "category": "income"}
	]`)

	feed := jsonfeed.New(dir, 0)
	txns, err := feed.FetchTransactions(context.Background())

	require.NoError(t, err, "a malformed date is data, not a fetch failure")
	require.Len(t, txns, 1)
	assert.False(t, txns[0].TransactionDate.Valid())
	assert.Equal(t, "31/12/2026", txns[0].TransactionDate.String())
}

func TestFeed_MissingFile(t *testing.T) {
	feed := jsonfeed.New(t.TempDir(), 0)

	_, err := feed.FetchBills(context.Background())
	assert.Error(t, err)
}

func TestFeed_MalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writePayload(t, dir, "bills.json", `{not json`)

	feed := jsonfeed.New(dir, 0)
	_, err := feed.FetchBills(context.Background())
	assert.Error(t, err)
}

func TestFeed_ContextCancelledDuringDelay(t *testing.T) {
	dir := t.TempDir()
	writePayload(t, dir, "invoices.json", `[]`)

	feed := jsonfeed.New(dir, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := feed.FetchInvoices(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
