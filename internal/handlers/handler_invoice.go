package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/findash/finance_dashboard_app/internal/apperrors"
	portssvc "github.com/findash/finance_dashboard_app/internal/core/ports/services"
	"github.com/findash/finance_dashboard_app/internal/dto"
	"github.com/findash/finance_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(is portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		invoiceService: is,
	}
}

// registerInvoiceRoutes registers routes related to invoices.
func registerInvoiceRoutes(rg *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := rg.Group("/invoices")
	{
		invoices.GET("", h.listInvoices)
		invoices.POST("", h.createInvoice)
		invoices.PUT("/:ref", h.updateInvoice)
		invoices.DELETE("/:ref", h.deleteInvoice)
	}
}

// listInvoices godoc
// @Summary List invoices
// @Description Returns the invoice collection, sorted and filtered per query parameters
// @Tags invoices
// @Produce json
// @Param sortBy query string false "Sort column" Enums(clientName, creationDate, referenceNumber, amount, status, category)
// @Param sortDir query string false "Sort direction" Enums(ASC, DESC)
// @Param search query string false "Substring filter over client name and reference number (min 3 chars)"
// @Param from query string false "Inclusive lower creation date bound (YYYY-MM-DD)"
// @Param to query string false "Inclusive upper creation date bound (YYYY-MM-DD)"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListInvoices", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list invoices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list invoices"})
		return
	}

	c.JSON(http.StatusOK, dto.ListInvoicesResponse{Invoices: dto.ToListInvoiceResponse(invoices)})
}

// createInvoice godoc
// @Summary Create a new invoice
// @Description Creates an invoice (always UNPAID until reconciliation finds a payment) and returns the updated collection
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.ListInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Duplicate reference number"
// @Router /invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invoices, err := h.invoiceService.CreateInvoice(c.Request.Context(), req)
	if err != nil {
		respondRecordMutationError(c, logger, err, "Failed to create invoice")
		return
	}

	c.JSON(http.StatusCreated, dto.ListInvoicesResponse{Invoices: dto.ToListInvoiceResponse(invoices)})
}

// updateInvoice godoc
// @Summary Update an invoice
// @Description Edits the invoice stored under the given reference number and returns the updated collection. Status is not editable; reconciliation derives it.
// @Tags invoices
// @Accept json
// @Produce json
// @Param ref path string true "Reference number"
// @Param invoice body dto.UpdateInvoiceRequest true "Fields to update"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Invoice not found"
// @Failure 409 {object} map[string]string "Duplicate reference number"
// @Router /invoices/{ref} [put]
func (h *invoiceHandler) updateInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ref := c.Param("ref")

	var req dto.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	invoices, err := h.invoiceService.UpdateInvoice(c.Request.Context(), ref, req)
	if err != nil {
		respondRecordMutationError(c, logger, err, "Failed to update invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ListInvoicesResponse{Invoices: dto.ToListInvoiceResponse(invoices)})
}

// deleteInvoice godoc
// @Summary Delete an invoice
// @Description Removes the invoice stored under the given reference number and returns the updated collection
// @Tags invoices
// @Produce json
// @Param ref path string true "Reference number"
// @Success 200 {object} dto.ListInvoicesResponse
// @Failure 404 {object} map[string]string "Invoice not found"
// @Router /invoices/{ref} [delete]
func (h *invoiceHandler) deleteInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ref := c.Param("ref")

	invoices, err := h.invoiceService.DeleteInvoice(c.Request.Context(), ref)
	if err != nil {
		respondRecordMutationError(c, logger, err, "Failed to delete invoice")
		return
	}

	c.JSON(http.StatusOK, dto.ListInvoicesResponse{Invoices: dto.ToListInvoiceResponse(invoices)})
}

// respondRecordMutationError maps core errors onto HTTP statuses: validation
// failures and duplicates are the caller's to fix, anything else is ours.
func respondRecordMutationError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate reference number", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Record not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
