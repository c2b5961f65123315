package dto

import (
	"github.com/findash/finance_dashboard_app/internal/core/domain"
	"github.com/findash/finance_dashboard_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateBillRequest defines the data needed to create a new bill.
type CreateBillRequest struct {
	Vendor          string          `json:"vendor" binding:"required"`
	CreationDate    string          `json:"creationDate" binding:"required"`
	ReferenceNumber string          `json:"referenceNumber" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Category        string          `json:"category"`
}

// UpdateBillRequest defines the data allowed for editing a bill. Status is
// not editable; reconciliation owns it.
type UpdateBillRequest struct {
	Vendor          *string          `json:"vendor"`
	CreationDate    *string          `json:"creationDate"`
	ReferenceNumber *string          `json:"referenceNumber"`
	Amount          *decimal.Decimal `json:"amount"`
	Category        *string          `json:"category"`
}

// BillResponse defines the data returned for a bill.
type BillResponse struct {
	Vendor          string              `json:"vendor"`
	CreationDate    string              `json:"creationDate"`
	ReferenceNumber string              `json:"referenceNumber"`
	Amount          decimal.Decimal     `json:"amount"`
	AmountDisplay   string              `json:"amountDisplay"`
	Status          domain.RecordStatus `json:"status"`
	Category        string              `json:"category"`
}

// ToBillResponse converts a domain.Bill to a BillResponse DTO.
func ToBillResponse(bill domain.Bill) BillResponse {
	return BillResponse{
		Vendor:          bill.Vendor,
		CreationDate:    bill.CreationDate.String(),
		ReferenceNumber: bill.ReferenceNumber,
		Amount:          bill.Amount,
		AmountDisplay:   utils.FormatPrice(bill.Amount),
		Status:          bill.Status,
		Category:        bill.Category,
	}
}

// ToListBillResponse converts a slice of domain.Bill to response DTOs.
func ToListBillResponse(bills []domain.Bill) []BillResponse {
	res := make([]BillResponse, len(bills))
	for i, bill := range bills {
		res[i] = ToBillResponse(bill)
	}
	return res
}

// ListBillsResponse wraps the projected bill collection.
type ListBillsResponse struct {
	Bills []BillResponse `json:"bills"`
}
