package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/findash/finance_dashboard_app/internal/core/ports/services"
	"github.com/findash/finance_dashboard_app/internal/dto"
	"github.com/findash/finance_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// billHandler handles HTTP requests related to bills.
type billHandler struct {
	billService portssvc.BillSvcFacade
}

func newBillHandler(bs portssvc.BillSvcFacade) *billHandler {
	return &billHandler{
		billService: bs,
	}
}

// registerBillRoutes registers routes related to bills.
func registerBillRoutes(rg *gin.RouterGroup, billService portssvc.BillSvcFacade) {
	h := newBillHandler(billService)

	bills := rg.Group("/bills")
	{
		bills.GET("", h.listBills)
		bills.POST("", h.createBill)
		bills.PUT("/:ref", h.updateBill)
		bills.DELETE("/:ref", h.deleteBill)
	}
}

// listBills godoc
// @Summary List bills
// @Description Returns the bill collection, sorted and filtered per query parameters
// @Tags bills
// @Produce json
// @Param sortBy query string false "Sort column" Enums(vendor, creationDate, referenceNumber, amount, status, category)
// @Param sortDir query string false "Sort direction" Enums(ASC, DESC)
// @Param search query string false "Substring filter over vendor and reference number (min 3 chars)"
// @Param from query string false "Inclusive lower creation date bound (YYYY-MM-DD)"
// @Param to query string false "Inclusive upper creation date bound (YYYY-MM-DD)"
// @Success 200 {object} dto.ListBillsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Router /bills [get]
func (h *billHandler) listBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListBills", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	bills, err := h.billService.ListBills(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list bills", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list bills"})
		return
	}

	c.JSON(http.StatusOK, dto.ListBillsResponse{Bills: dto.ToListBillResponse(bills)})
}

// createBill godoc
// @Summary Create a new bill
// @Description Creates a bill (always UNPAID until reconciliation finds a payment) and returns the updated collection
// @Tags bills
// @Accept json
// @Produce json
// @Param bill body dto.CreateBillRequest true "Bill details"
// @Success 201 {object} dto.ListBillsResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 409 {object} map[string]string "Duplicate reference number"
// @Router /bills [post]
func (h *billHandler) createBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bills, err := h.billService.CreateBill(c.Request.Context(), req)
	if err != nil {
		respondRecordMutationError(c, logger, err, "Failed to create bill")
		return
	}

	c.JSON(http.StatusCreated, dto.ListBillsResponse{Bills: dto.ToListBillResponse(bills)})
}

// updateBill godoc
// @Summary Update a bill
// @Description Edits the bill stored under the given reference number and returns the updated collection. Status is not editable; reconciliation derives it.
// @Tags bills
// @Accept json
// @Produce json
// @Param ref path string true "Reference number"
// @Param bill body dto.UpdateBillRequest true "Fields to update"
// @Success 200 {object} dto.ListBillsResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 404 {object} map[string]string "Bill not found"
// @Failure 409 {object} map[string]string "Duplicate reference number"
// @Router /bills/{ref} [put]
func (h *billHandler) updateBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ref := c.Param("ref")

	var req dto.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBill", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bills, err := h.billService.UpdateBill(c.Request.Context(), ref, req)
	if err != nil {
		respondRecordMutationError(c, logger, err, "Failed to update bill")
		return
	}

	c.JSON(http.StatusOK, dto.ListBillsResponse{Bills: dto.ToListBillResponse(bills)})
}

// deleteBill godoc
// @Summary Delete a bill
// @Description Removes the bill stored under the given reference number and returns the updated collection
// @Tags bills
// @Produce json
// @Param ref path string true "Reference number"
// @Success 200 {object} dto.ListBillsResponse
// @Failure 404 {object} map[string]string "Bill not found"
// @Router /bills/{ref} [delete]
func (h *billHandler) deleteBill(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	ref := c.Param("ref")

	bills, err := h.billService.DeleteBill(c.Request.Context(), ref)
	if err != nil {
		respondRecordMutationError(c, logger, err, "Failed to delete bill")
		return
	}

	c.JSON(http.StatusOK, dto.ListBillsResponse{Bills: dto.ToListBillResponse(bills)})
}
