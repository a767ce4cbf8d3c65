package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/services"
)

// ReportHandler handles the derived read-only views
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// GetDashboard handles the dashboard view
// @Summary     Get dashboard
// @Description Get the current-month dashboard: totals, remaining budget, utilization, recent transactions, and per-budget status
// @Tags        reports
// @Produce     json
// @Success     200 {object} reports.DashboardSummary "Dashboard summary"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *ReportHandler) GetDashboard(c *gin.Context) {
	summary, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// GetAnalyticsSummary handles the analytics view
// @Summary     Get analytics summary
// @Description Get all-time spending analytics: per-category spend, monthly trends, budget comparison, and totals
// @Tags        reports
// @Produce     json
// @Success     200 {object} reports.AnalyticsSummary "Analytics summary"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /analytics/summary [get]
func (h *ReportHandler) GetAnalyticsSummary(c *gin.Context) {
	summary, err := h.reportService.Analytics(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
