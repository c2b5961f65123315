package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/findash/finance_dashboard_app/internal/core/ports/services"
	"github.com/findash/finance_dashboard_app/internal/dto"
	"github.com/findash/finance_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for the dashboard summary metrics.
type reportingHandler struct {
	reportingService portssvc.ReportingService
	now              func() time.Time
}

func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
		now:              time.Now,
	}
}

// registerReportingRoutes registers routes related to dashboard reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/summary", h.getSummary)
		reports.GET("/revenue/monthly", h.getMonthlyRevenue)
	}
}

// getSummary godoc
// @Summary Dashboard summary metrics
// @Description Returns cash balance, last-30-day record counts, trailing-12-month income/expense/net totals and their period-over-period deltas
// @Tags reports
// @Produce json
// @Success 200 {object} dto.SummaryResponse
// @Router /reports/summary [get]
func (h *reportingHandler) getSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summary, err := h.reportingService.Summary(c.Request.Context(), h.now())
	if err != nil {
		logger.Error("Failed to compute dashboard summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute dashboard summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToSummaryResponse(summary))
}

// getMonthlyRevenue godoc
// @Summary Monthly revenue series
// @Description Returns per-month invoice revenue totals for the current calendar year
// @Tags reports
// @Produce json
// @Success 200 {object} dto.MonthlyRevenueResponse
// @Router /reports/revenue/monthly [get]
func (h *reportingHandler) getMonthlyRevenue(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	now := h.now()
	rows, err := h.reportingService.MonthlyRevenue(c.Request.Context(), now)
	if err != nil {
		logger.Error("Failed to compute monthly revenue", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute monthly revenue"})
		return
	}

	c.JSON(http.StatusOK, dto.MonthlyRevenueResponse{Year: now.Year(), Months: rows})
}
