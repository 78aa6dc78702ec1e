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
)

// payrollHandler handles employees, payroll accrual and settlement.
type payrollHandler struct {
	payroll portssvc.PayrollSvcFacade
	loc     *time.Location
}

func registerPayrollRoutes(rg *gin.RouterGroup, payroll portssvc.PayrollSvcFacade, loc *time.Location) {
	h := &payrollHandler{payroll: payroll, loc: loc}

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employeeID", h.getEmployee)
	}

	payrolls := rg.Group("/payroll")
	{
		payrolls.POST("", h.accruePayroll)
		payrolls.GET("", h.listPayrolls)
		payrolls.GET("/:payrollID", h.getPayroll)
		payrolls.POST("/:payrollID/approve", h.approvePayroll)
	}
}

// createEmployee godoc
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /finance/employees [post]
func (h *payrollHandler) createEmployee(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	cmd, err := req.ToCommand(h.loc)
	if err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	employee, err := h.payroll.CreateEmployee(c.Request.Context(), actor, cmd)
	if err != nil {
		respondWithError(c, err, "Failed to create employee")
		return
	}
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Param status query string false "Filter by status" Enums(active, inactive)
// @Success 200 {array} dto.EmployeeResponse
// @Security BearerAuth
// @Router /finance/employees [get]
func (h *payrollHandler) listEmployees(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var status *domain.EmploymentStatus
	if s := c.Query("status"); s != "" {
		st := domain.EmploymentStatus(s)
		status = &st
	}

	employees, err := h.payroll.ListEmployees(c.Request.Context(), actor, status)
	if err != nil {
		respondWithError(c, err, "Failed to list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeeResponse(employees))
}

// getEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Security BearerAuth
// @Router /finance/employees/{employeeID} [get]
func (h *payrollHandler) getEmployee(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	employee, err := h.payroll.GetEmployee(c.Request.Context(), actor, c.Param("employeeID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// accruePayroll godoc
// @Summary Accrue payroll
// @Description Computes net salary for a period, posts the accrual entry and stores a pending payroll
// @Tags payroll
// @Accept json
// @Produce json
// @Param payroll body dto.AccruePayrollRequest true "Payroll accrual"
// @Success 201 {object} dto.PayrollResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 409 {object} map[string]string "Payroll already exists for the period"
// @Security BearerAuth
// @Router /finance/payroll [post]
func (h *payrollHandler) accruePayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.AccruePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	cmd, err := req.ToCommand(h.loc)
	if err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	payroll, err := h.payroll.AccruePayroll(c.Request.Context(), actor, cmd)
	if err != nil {
		respondWithError(c, err, "Failed to accrue payroll")
		return
	}

	logger.Info("Payroll accrued", slog.String("payroll_id", payroll.PayrollID), slog.String("net_salary", payroll.NetSalary.StringFixed(2)))
	c.JSON(http.StatusCreated, dto.ToPayrollResponse(payroll))
}

// listPayrolls godoc
// @Summary List payrolls
// @Tags payroll
// @Produce json
// @Param status query string false "Filter by payment status" Enums(pending, approved, paid)
// @Success 200 {array} dto.PayrollResponse
// @Security BearerAuth
// @Router /finance/payroll [get]
func (h *payrollHandler) listPayrolls(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var status *domain.PaymentStatus
	if s := c.Query("status"); s != "" {
		st := domain.PaymentStatus(s)
		status = &st
	}

	payrolls, err := h.payroll.ListPayrolls(c.Request.Context(), actor, status)
	if err != nil {
		respondWithError(c, err, "Failed to list payrolls")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPayrollResponse(payrolls))
}

// getPayroll godoc
// @Summary Get a payroll
// @Tags payroll
// @Produce json
// @Param payrollID path string true "Payroll ID"
// @Success 200 {object} dto.PayrollResponse
// @Failure 404 {object} map[string]string "Payroll not found"
// @Security BearerAuth
// @Router /finance/payroll/{payrollID} [get]
func (h *payrollHandler) getPayroll(c *gin.Context) {
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	payroll, err := h.payroll.GetPayroll(c.Request.Context(), actor, c.Param("payrollID"))
	if err != nil {
		respondWithError(c, err, "Failed to retrieve payroll")
		return
	}
	c.JSON(http.StatusOK, dto.ToPayrollResponse(payroll))
}

// approvePayroll godoc
// @Summary Approve and pay a payroll
// @Description Verifies the one-time code and settles the payroll. Approving a paid payroll returns it unchanged.
// @Tags payroll
// @Accept json
// @Produce json
// @Param payrollID path string true "Payroll ID"
// @Param approval body dto.ApprovePayrollRequest true "Approval code"
// @Success 200 {object} dto.PayrollResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Invalid authorization code"
// @Failure 404 {object} map[string]string "Payroll not found"
// @Failure 409 {object} map[string]string "Concurrent settlement"
// @Security BearerAuth
// @Router /finance/payroll/{payrollID}/approve [post]
func (h *payrollHandler) approvePayroll(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := actorOrAbort(c)
	if !ok {
		return
	}
	var req dto.ApprovePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}
	payrollID := c.Param("payrollID")

	payroll, err := h.payroll.ApproveAndPay(c.Request.Context(), actor, payrollID, req.OTPCode)
	if err != nil {
		respondWithError(c, err, "Failed to approve payroll")
		return
	}

	logger.Info("Payroll settled", slog.String("payroll_id", payrollID))
	c.JSON(http.StatusOK, dto.ToPayrollResponse(payroll))
}
