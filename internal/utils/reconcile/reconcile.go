// Package reconcile derives the PAID/UNPAID status of invoices and bills by
// matching them against the bank transaction feed.
package reconcile

import (
	"github.com/findash/finance_dashboard_app/internal/core/domain"
)

// matches reports whether txn qualifies as a payment for the record: same
// reference number, same amount, and posted strictly after the record was
// created. Invalid dates on either side compare false, so a malformed date
// can only ever leave a record UNPAID.
func matches(txn domain.Transaction, record domain.Record) bool {
	if txn.ReferenceNumber != record.RecordReference() {
		return false
	}
	if !txn.Amount.Equal(record.RecordAmount()) {
		return false
	}
	return txn.TransactionDate.After(record.RecordDate())
}

// Statuses computes the status of each record against the transaction set.
// The result is positional: Statuses(records, txns)[i] belongs to records[i].
// The pass is pure and idempotent; it holds no reference to which specific
// transaction matched, only whether one exists.
func Statuses[R domain.Record](records []R, txns []domain.Transaction) []domain.RecordStatus {
	statuses := make([]domain.RecordStatus, len(records))
	for i, record := range records {
		statuses[i] = domain.Unpaid
		for _, txn := range txns {
			if matches(txn, record) {
				statuses[i] = domain.Paid
				break
			}
		}
	}
	return statuses
}

// Changed reports whether any newly computed status differs from the status
// currently stored on the records. A pass that changes nothing must not write
// to the store or notify downstream, or a reactive caller would loop forever.
func Changed[R domain.Record](records []R, statuses []domain.RecordStatus) bool {
	for i, record := range records {
		if record.CurrentStatus() != statuses[i] {
			return true
		}
	}
	return false
}
