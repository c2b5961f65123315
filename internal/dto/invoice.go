package dto

import (
	"github.com/findash/finance_dashboard_app/internal/core/domain"
	"github.com/findash/finance_dashboard_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create a new invoice.
// Status is absent on purpose: a new invoice always starts UNPAID and status
// is only ever derived by reconciliation afterwards.
type CreateInvoiceRequest struct {
	ClientName      string          `json:"clientName" binding:"required"`
	CreationDate    string          `json:"creationDate" binding:"required"`
	ReferenceNumber string          `json:"referenceNumber" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Category        string          `json:"category"`
}

// UpdateInvoiceRequest defines the data allowed for editing an invoice.
// Use pointers to distinguish between zero-value updates and fields not
// provided. Status is not editable; reconciliation owns it.
type UpdateInvoiceRequest struct {
	ClientName      *string          `json:"clientName"`
	CreationDate    *string          `json:"creationDate"`
	ReferenceNumber *string          `json:"referenceNumber"`
	Amount          *decimal.Decimal `json:"amount"`
	Category        *string          `json:"category"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	ClientName      string              `json:"clientName"`
	CreationDate    string              `json:"creationDate"`
	ReferenceNumber string              `json:"referenceNumber"`
	Amount          decimal.Decimal     `json:"amount"`
	AmountDisplay   string              `json:"amountDisplay"`
	Status          domain.RecordStatus `json:"status"`
	Category        string              `json:"category"`
}

// ToInvoiceResponse converts a domain.Invoice to an InvoiceResponse DTO.
func ToInvoiceResponse(inv domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ClientName:      inv.ClientName,
		CreationDate:    inv.CreationDate.String(),
		ReferenceNumber: inv.ReferenceNumber,
		Amount:          inv.Amount,
		AmountDisplay:   utils.FormatPrice(inv.Amount),
		Status:          inv.Status,
		Category:        inv.Category,
	}
}

// ToListInvoiceResponse converts a slice of domain.Invoice to response DTOs.
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		res[i] = ToInvoiceResponse(inv)
	}
	return res
}

// ListInvoicesResponse wraps the projected invoice collection.
type ListInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}
