package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/dto"
	"github.com/SscSPs/retail_finance_core/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingSvc
	loc              *time.Location
	now              func() time.Time
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvc, loc *time.Location) {
	if loc == nil {
		loc = time.UTC
	}
	h := &reportingHandler{reportingService: reportingService, loc: loc, now: time.Now}

	reports := rg.Group("/reports")
	{
		reports.GET("/cashflow", h.getCashflow)
		reports.GET("/pnl", h.getProfitAndLoss)
		reports.GET("/balance-sheet", h.getBalanceSheet)
	}
	rg.GET("/dashboard", h.getDashboard)
}

// dateRange reads fromDate/toDate, defaulting to the first of the current month and today.
func (h *reportingHandler) dateRange(c *gin.Context) (time.Time, time.Time, bool) {
	today := domain.DateOnly(h.now().In(h.loc))
	monthStart, _ := domain.MonthBounds(today)

	from := monthStart
	if s := c.Query("fromDate"); s != "" {
		parsed, err := dto.ParseDate(s, h.loc)
		if err != nil {
			badRequest(c, "Invalid fromDate", err)
			return time.Time{}, time.Time{}, false
		}
		from = parsed
	}
	to := today
	if s := c.Query("toDate"); s != "" {
		parsed, err := dto.ParseDate(s, h.loc)
		if err != nil {
			badRequest(c, "Invalid toDate", err)
			return time.Time{}, time.Time{}, false
		}
		to = parsed
	}
	return from, to, true
}

// getCashflow godoc
// @Summary Generate cashflow report
// @Description Sums cash inflows from income and orders minus outflows for expenses and payroll
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.CashflowResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /finance/reports/cashflow [get]
func (h *reportingHandler) getCashflow(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	from, to, ok := h.dateRange(c)
	if !ok {
		return
	}

	report, err := h.reportingService.Cashflow(c.Request.Context(), actor, from, to)
	if err != nil {
		respondWithError(c, err, "Failed to generate cashflow report")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashflowResponse(report))
}

// getProfitAndLoss godoc
// @Summary Generate profit and loss report
// @Description Generates a profit and loss report for a specific period
// @Tags reports
// @Produce json
// @Param fromDate query string false "Start date (YYYY-MM-DD)" default(first day of current month)
// @Param toDate query string false "End date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /finance/reports/pnl [get]
func (h *reportingHandler) getProfitAndLoss(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	from, to, ok := h.dateRange(c)
	if !ok {
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), actor, from, to)
	if err != nil {
		respondWithError(c, err, "Failed to generate profit and loss report")
		return
	}

	logger.Info("Profit and loss report generated successfully", slog.String("net_profit", report.NetProfit.StringFixed(2)))
	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}

// getBalanceSheet godoc
// @Summary Generate balance sheet report
// @Description Generates a balance sheet report as of a specific date
// @Tags reports
// @Produce json
// @Param asOf query string false "Report date (YYYY-MM-DD)" default(current date)
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden (User not authorized)"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /finance/reports/balance-sheet [get]
func (h *reportingHandler) getBalanceSheet(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	asOf := domain.DateOnly(h.now().In(h.loc))
	if s := c.Query("asOf"); s != "" {
		parsed, err := dto.ParseDate(s, h.loc)
		if err != nil {
			badRequest(c, "Invalid asOf", err)
			return
		}
		asOf = parsed
	}

	report, err := h.reportingService.BalanceSheet(c.Request.Context(), actor, asOf)
	if err != nil {
		respondWithError(c, err, "Failed to generate balance sheet report")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceSheetResponse(report))
}

// getDashboard godoc
// @Summary Finance dashboard summary
// @Description Cash position, receivables, payables, burn rate and salary obligations
// @Tags reports
// @Produce json
// @Success 200 {object} domain.DashboardSummary
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /finance/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	summary, err := h.reportingService.DashboardSummary(c.Request.Context(), actor)
	if err != nil {
		respondWithError(c, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// alertHandler exposes the scheduled checks on demand.
type alertHandler struct {
	tasks      portssvc.ScheduledTasksSvc
	authorizer portssvc.CapabilityAuthorizerSvc
}

func registerAlertRoutes(rg *gin.RouterGroup, tasks portssvc.ScheduledTasksSvc, authorizer portssvc.CapabilityAuthorizerSvc) {
	h := &alertHandler{tasks: tasks, authorizer: authorizer}
	alerts := rg.Group("/alerts")
	{
		alerts.GET("/overdue-receivables", h.getOverdueReceivables)
		alerts.GET("/low-cash", h.getLowCash)
	}
}

func (h *alertHandler) authorizeRead(c *gin.Context) bool {
	actor, ok := actorOrAbort(c)
	if !ok {
		return false
	}
	if h.authorizer == nil {
		respondWithError(c, errForbiddenNoAuthorizer, "Access denied")
		return false
	}
	if err := h.authorizer.Authorize(c.Request.Context(), actor, domain.CapabilityFinanceRead); err != nil {
		respondWithError(c, err, "Access denied")
		return false
	}
	return true
}

// getOverdueReceivables godoc
// @Summary Overdue receivables
// @Description Lists unpaid invoices past their due date
// @Tags alerts
// @Produce json
// @Success 200 {array} dto.OverdueInvoiceResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /finance/alerts/overdue-receivables [get]
func (h *alertHandler) getOverdueReceivables(c *gin.Context) {
	if !h.authorizeRead(c) {
		return
	}
	invoices, err := h.tasks.ListOverdueReceivables(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list overdue receivables")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOverdueInvoiceResponse(invoices))
}

// getLowCash godoc
// @Summary Low cash check
// @Description Compares cash plus bank against a threshold
// @Tags alerts
// @Produce json
// @Param threshold query string false "Override the configured threshold"
// @Success 200 {object} domain.LowCashAlert
// @Failure 400 {object} map[string]string "Invalid threshold"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /finance/alerts/low-cash [get]
func (h *alertHandler) getLowCash(c *gin.Context) {
	if !h.authorizeRead(c) {
		return
	}
	var threshold *decimal.Decimal
	if s := c.Query("threshold"); s != "" {
		t, err := decimal.NewFromString(s)
		if err != nil {
			badRequest(c, "Invalid threshold", err)
			return
		}
		threshold = &t
	}

	alert, err := h.tasks.CheckLowCash(c.Request.Context(), threshold)
	if err != nil {
		respondWithError(c, err, "Failed to check cash balance")
		return
	}
	c.JSON(http.StatusOK, alert)
}
