package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendwise/internal/services"
)

// ReportHandler handles reporting requests
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Dashboard returns the user's dashboard report
// @Summary     Dashboard report
// @Description Get the authenticated user's spending summary: current-month totals, budget evaluation, category breakdown, top categories, monthly trend, and recent expenses
// @Tags        reports
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} services.Dashboard "Dashboard report"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /reports/dashboard [get]
func (h *ReportHandler) Dashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	dashboard, err := h.reportService.Dashboard(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
