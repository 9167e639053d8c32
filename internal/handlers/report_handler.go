package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "financas/internal/errors"
	"financas/internal/services"
)

// ReportHandler handles expense aggregation requests.
type ReportHandler struct {
	reportService services.ReportServicer
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService services.ReportServicer) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExpensesQuery represents the query parameters for the period expense total
type ExpensesQuery struct {
	Period string `form:"period" binding:"required,report_period"`
}

// Expenses handles the period expense total
// @Summary     Expenses by period
// @Description Sum of expense amounts for the current local day or month
// @Tags        reports
// @Produce     json
// @Param       period query string true "Period" Enums(today, month)
// @Success     200 {object} map[string]interface{} "Total"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Router      /reports/expenses [get]
func (h *ReportHandler) Expenses(c *gin.Context) {
	var q ExpensesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	total, err := h.reportService.ExpensesByPeriod(services.ReportPeriod(q.Period))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"period": q.Period, "total": total})
}

// Categories handles the current month's per-category expense breakdown
// @Summary     Expenses by category
// @Description Current-month expense totals grouped by category, largest first
// @Tags        reports
// @Produce     json
// @Success     200 {array} services.CategoryTotal "Category totals"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/categories [get]
func (h *ReportHandler) Categories(c *gin.Context) {
	totals, err := h.reportService.ExpensesByCategory()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"categories": totals})
}

// Summary handles the dashboard summary
// @Summary     Dashboard summary
// @Description Income estimate, expense totals, total balance, remaining budget, and category breakdown
// @Tags        reports
// @Produce     json
// @Success     200 {object} services.Summary "Summary"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportService.Summary()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summary": summary})
}
