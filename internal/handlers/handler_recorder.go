package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/dto"
	"github.com/SscSPs/retail_finance_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

// recorderHandler handles expense and income recording.
type recorderHandler struct {
	recorder portssvc.RecorderSvcFacade
	loc      *time.Location
}

func registerRecorderRoutes(rg *gin.RouterGroup, recorder portssvc.RecorderSvcFacade, loc *time.Location) {
	h := &recorderHandler{recorder: recorder, loc: loc}

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.recordExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:expenseID", h.getExpense)
	}

	income := rg.Group("/income")
	{
		income.POST("", h.recordIncome)
		income.GET("", h.listIncomes)
		income.GET("/:incomeID", h.getIncome)
	}
}

// recordExpense godoc
// @Summary Record an expense
// @Description Records an operating expense, posts its journal entry and cash outflow
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense body dto.RecordExpenseRequest true "Expense"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} map[string]string "Temporarily unavailable"
// @Security BearerAuth
// @Router /finance/expenses [post]
func (h *recorderHandler) recordExpense(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req dto.RecordExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	cmd, err := req.ToCommand(h.loc)
	if err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	expense, err := h.recorder.RecordExpense(c.Request.Context(), actor, cmd)
	if err != nil {
		respondWithError(c, err, "Failed to record expense")
		return
	}

	logger.Info("Expense recorded", slog.String("expense_id", expense.ExpenseID), slog.String("amount", expense.Amount.StringFixed(2)))
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Tags expenses
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param limit query int false "Max rows (max 100)"
// @Success 200 {array} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /finance/expenses [get]
func (h *recorderHandler) listExpenses(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var q dto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	filter, err := q.ToFilter(h.loc)
	if err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	expenses, err := h.recorder.ListExpenses(c.Request.Context(), actor, filter)
	if err != nil {
		respondWithError(c, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExpenseResponse(expenses))
}

// getExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce json
// @Param expenseID path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 404 {object} map[string]string "Expense not found"
// @Security BearerAuth
// @Router /finance/expenses/{expenseID} [get]
func (h *recorderHandler) getExpense(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	expense, err := h.recorder.GetExpense(c.Request.Context(), actor, c.Param("expenseID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// recordIncome godoc
// @Summary Record income
// @Description Records income, posts its journal entry and cash inflow
// @Tags income
// @Accept json
// @Produce json
// @Param income body dto.RecordIncomeRequest true "Income"
// @Success 201 {object} dto.IncomeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 503 {object} map[string]string "Temporarily unavailable"
// @Security BearerAuth
// @Router /finance/income [post]
func (h *recorderHandler) recordIncome(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}

	var req dto.RecordIncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	cmd, err := req.ToCommand(h.loc)
	if err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	income, err := h.recorder.RecordIncome(c.Request.Context(), actor, cmd)
	if err != nil {
		respondWithError(c, err, "Failed to record income")
		return
	}

	logger.Info("Income recorded", slog.String("income_id", income.IncomeID))
	c.JSON(http.StatusCreated, dto.ToIncomeResponse(income))
}

// listIncomes godoc
// @Summary List income
// @Tags income
// @Produce json
// @Param from query string false "From date (YYYY-MM-DD)"
// @Param to query string false "To date (YYYY-MM-DD)"
// @Param limit query int false "Max rows (max 100)"
// @Success 200 {array} dto.IncomeResponse
// @Security BearerAuth
// @Router /finance/income [get]
func (h *recorderHandler) listIncomes(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var q dto.DateRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}
	filter, err := q.ToFilter(h.loc)
	if err != nil {
		badRequest(c, "Invalid query parameters", err)
		return
	}

	incomes, err := h.recorder.ListIncomes(c.Request.Context(), actor, filter)
	if err != nil {
		respondWithError(c, err, "Failed to list income")
		return
	}
	c.JSON(http.StatusOK, dto.ToListIncomeResponse(incomes))
}

// getIncome godoc
// @Summary Get an income record
// @Tags income
// @Produce json
// @Param incomeID path string true "Income ID"
// @Success 200 {object} dto.IncomeResponse
// @Failure 404 {object} map[string]string "Income not found"
// @Security BearerAuth
// @Router /finance/income/{incomeID} [get]
func (h *recorderHandler) getIncome(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	income, err := h.recorder.GetIncome(c.Request.Context(), actor, c.Param("incomeID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve income")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeResponse(income))
}
