package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/core/services"
	"github.com/SscSPs/retail_finance_core/internal/dto"
	"github.com/SscSPs/retail_finance_core/internal/handlers"
	"github.com/SscSPs/retail_finance_core/internal/middleware"
	"github.com/SscSPs/retail_finance_core/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FinanceHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	accounts   *MockAccountsService
	ledger     *MockLedgerService
	recorders  *MockRecorderService
	payroll    *MockPayrollService
	reporting  *MockReportingService
	tasks      *MockTasksService
	authorizer *MockAuthorizer
	jwtSecret  string
}

func (suite *FinanceHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(dto.RegisterValidators())
}

func (suite *FinanceHandlerTestSuite) SetupTest() {
	suite.jwtSecret = "test-secret"
	suite.accounts = new(MockAccountsService)
	suite.ledger = new(MockLedgerService)
	suite.recorders = new(MockRecorderService)
	suite.payroll = new(MockPayrollService)
	suite.reporting = new(MockReportingService)
	suite.tasks = new(MockTasksService)
	suite.authorizer = new(MockAuthorizer)

	cfg := &config.Config{
		JWTSecret:        suite.jwtSecret,
		JWTIssuer:        "retail-finance-core",
		IsProduction:     true,
		BusinessLocation: time.UTC,
	}
	container := &portssvc.ServiceContainer{
		Accounts:   suite.accounts,
		Ledger:     suite.ledger,
		Recorders:  suite.recorders,
		Payroll:    suite.payroll,
		Reporting:  suite.reporting,
		Tasks:      suite.tasks,
		Authorizer: suite.authorizer,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, container, handlers.RouterDeps{})
}

// generateTestToken signs a token for userID carrying roles.
func (suite *FinanceHandlerTestSuite) generateTestToken(userID string, roles ...string) string {
	claims := middleware.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    "retail-finance-core",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)
	return signed
}

func (suite *FinanceHandlerTestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, path, reader)
	suite.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *FinanceHandlerTestSuite) errorBody(w *httptest.ResponseRecorder) string {
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	return resp["error"]
}

func isActor(userID string) any {
	return mock.MatchedBy(func(a domain.Actor) bool { return a.UserID == userID })
}

func (suite *FinanceHandlerTestSuite) TestHealth_NoTokenRequired() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *FinanceHandlerTestSuite) TestRecordExpense_Success() {
	userID := "accountant-1"
	expenseDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	expected := &domain.Expense{
		ExpenseID:            "exp-1",
		Category:             "Rent",
		Amount:               decimal.RequireFromString("1200.00"),
		PaymentMethod:        "cash",
		ExpenseDate:          expenseDate,
		LinkedJournalEntryID: "je-1",
		AuditFields:          domain.AuditFields{CreatedBy: userID, CreatedAt: time.Now()},
	}

	suite.recorders.On("RecordExpense", mock.Anything, isActor(userID), mock.MatchedBy(func(cmd domain.RecordExpenseCommand) bool {
		return cmd.Category == "Rent" &&
			cmd.Amount.Equal(decimal.RequireFromString("1200")) &&
			cmd.PaymentMethod == "cash" &&
			cmd.ExpenseDate.Equal(expenseDate)
	})).Return(expected, nil).Once()

	body := map[string]any{
		"category":      "Rent",
		"amount":        "1200.00",
		"paymentMethod": "cash",
		"expenseDate":   "2026-03-01",
	}
	w := suite.do(http.MethodPost, "/api/v1/finance/expenses", body, suite.generateTestToken(userID, "accountant"))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.ExpenseResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("exp-1", resp.ExpenseID)
	suite.Equal("je-1", resp.LinkedJournalEntryID)
	suite.Equal("2026-03-01", resp.ExpenseDate)
	suite.recorders.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestRecordExpense_ZeroAmountRejected() {
	body := map[string]any{
		"category":      "Rent",
		"amount":        "0",
		"paymentMethod": "cash",
		"expenseDate":   "2026-03-01",
	}
	w := suite.do(http.MethodPost, "/api/v1/finance/expenses", body, suite.generateTestToken("accountant-1"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.recorders.AssertNotCalled(suite.T(), "RecordExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FinanceHandlerTestSuite) TestRecordExpense_MissingToken() {
	w := suite.do(http.MethodPost, "/api/v1/finance/expenses", map[string]any{"category": "Rent"}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.recorders.AssertNotCalled(suite.T(), "RecordExpense", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FinanceHandlerTestSuite) TestRecordIncome_Forbidden() {
	forbidden := fmt.Errorf("%w: actor lacks finance:write", apperrors.ErrForbidden)
	suite.recorders.On("RecordIncome", mock.Anything, isActor("viewer-1"), mock.Anything).Return(nil, forbidden).Once()

	body := map[string]any{
		"source":        "Sales",
		"amount":        "2000.00",
		"paymentMethod": "bank_transfer",
		"incomeDate":    "2026-03-02",
	}
	w := suite.do(http.MethodPost, "/api/v1/finance/income", body, suite.generateTestToken("viewer-1", "manager"))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.recorders.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestRecordIncome_RetryableStoreFailure() {
	retryable := apperrors.NewRetryableError("failed to begin transaction", assertErr("connection refused"))
	suite.recorders.On("RecordIncome", mock.Anything, mock.Anything, mock.Anything).Return(nil, retryable).Once()

	body := map[string]any{
		"source":        "Sales",
		"amount":        "2000.00",
		"paymentMethod": "bank_transfer",
		"incomeDate":    "2026-03-02",
	}
	w := suite.do(http.MethodPost, "/api/v1/finance/income", body, suite.generateTestToken("accountant-1", "accountant"))

	suite.Equal(http.StatusServiceUnavailable, w.Code)
	suite.NotContains(suite.errorBody(w), "connection refused")
}

func (suite *FinanceHandlerTestSuite) TestCreateJournalEntry_Unbalanced() {
	suite.ledger.On("CreateBalancedEntry", mock.Anything, isActor("accountant-1"), mock.MatchedBy(func(req domain.NewJournalEntry) bool {
		return len(req.Lines) == 2 && req.ReferenceType == domain.RefManual
	})).Return(nil, services.ErrUnbalancedEntry).Once()

	body := map[string]any{
		"entryDate":   "2026-03-05",
		"description": "Owner top-up",
		"lines": []map[string]any{
			{"accountCode": "1000", "debit": "100.00", "credit": "0"},
			{"accountCode": "3000", "debit": "0", "credit": "99.99"},
		},
	}
	w := suite.do(http.MethodPost, "/api/v1/finance/journal-entries", body, suite.generateTestToken("accountant-1", "accountant"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorBody(w), "do not balance")
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestReverseJournalEntry_AlreadyReversed() {
	suite.ledger.On("Reverse", mock.Anything, isActor("accountant-1"), "je-1").Return(nil, services.ErrAlreadyReversed).Once()

	w := suite.do(http.MethodPost, "/api/v1/finance/journal-entries/je-1/reverse", nil, suite.generateTestToken("accountant-1", "accountant"))

	suite.Equal(http.StatusConflict, w.Code)
	suite.ledger.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestListJournalEntries_PassesToken() {
	token := "abc"
	next := "def"
	entries := []domain.JournalEntry{{EntryID: "je-2", ReferenceType: domain.RefManual, Lines: []domain.JournalLine{}}}
	suite.ledger.On("ListEntries", mock.Anything, mock.Anything, 10, mock.MatchedBy(func(t *string) bool {
		return t != nil && *t == token
	})).Return(entries, &next, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/finance/journal-entries?limit=10&nextToken=abc", nil, suite.generateTestToken("accountant-1"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListJournalEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal("def", *resp.NextToken)
}

func (suite *FinanceHandlerTestSuite) TestListJournalEntries_LimitTooLarge() {
	w := suite.do(http.MethodGet, "/api/v1/finance/journal-entries?limit=500", nil, suite.generateTestToken("accountant-1"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.ledger.AssertNotCalled(suite.T(), "ListEntries", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FinanceHandlerTestSuite) TestApprovePayroll_InvalidCode() {
	suite.payroll.On("ApproveAndPay", mock.Anything, isActor("owner-1"), "pay-1", "000000").
		Return(nil, services.ErrInvalidAuthorizationCode).Once()

	w := suite.do(http.MethodPost, "/api/v1/finance/payroll/pay-1/approve", map[string]string{"otpCode": "000000"}, suite.generateTestToken("owner-1", "admin"))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Contains(suite.errorBody(w), "invalid authorization code")
	suite.payroll.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestApprovePayroll_Success() {
	approver := "owner-1"
	approvedAt := time.Now()
	paid := &domain.Payroll{
		PayrollID:     "pay-1",
		EmployeeID:    "emp-1",
		NetSalary:     decimal.RequireFromString("5300.00"),
		PaymentStatus: domain.PayrollPaid,
		ApprovedBy:    &approver,
		ApprovedAt:    &approvedAt,
	}
	suite.payroll.On("ApproveAndPay", mock.Anything, isActor(approver), "pay-1", "123456").Return(paid, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/finance/payroll/pay-1/approve", map[string]string{"otpCode": "123456"}, suite.generateTestToken(approver, "admin"))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PayrollResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("pay-1", resp.PayrollID)
	suite.Equal(string(domain.PayrollPaid), resp.PaymentStatus)
}

func (suite *FinanceHandlerTestSuite) TestApprovePayroll_MissingCode() {
	w := suite.do(http.MethodPost, "/api/v1/finance/payroll/pay-1/approve", map[string]string{}, suite.generateTestToken("owner-1", "admin"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.payroll.AssertNotCalled(suite.T(), "ApproveAndPay", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FinanceHandlerTestSuite) TestCashflow_ExplicitRange() {
	from := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)
	report := &domain.CashflowReport{
		StartDate:         from,
		EndDate:           to,
		OperatingCashflow: decimal.RequireFromString("800.00"),
		NetCashflow:       decimal.RequireFromString("800.00"),
	}
	suite.reporting.On("Cashflow", mock.Anything, mock.Anything, from, to).Return(report, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/finance/reports/cashflow?fromDate=2026-02-01&toDate=2026-02-28", nil, suite.generateTestToken("manager-1", "manager"))

	suite.Equal(http.StatusOK, w.Code)
	suite.reporting.AssertExpectations(suite.T())
}

func (suite *FinanceHandlerTestSuite) TestCashflow_InvalidDate() {
	w := suite.do(http.MethodGet, "/api/v1/finance/reports/cashflow?fromDate=02/01/2026", nil, suite.generateTestToken("manager-1", "manager"))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.reporting.AssertNotCalled(suite.T(), "Cashflow", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *FinanceHandlerTestSuite) TestLowCashAlert_ForbiddenWithoutReadCapability() {
	suite.authorizer.On("Authorize", mock.Anything, isActor("clerk-1"), domain.CapabilityFinanceRead).
		Return(apperrors.ErrForbidden).Once()

	w := suite.do(http.MethodGet, "/api/v1/finance/alerts/low-cash", nil, suite.generateTestToken("clerk-1", "clerk"))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.tasks.AssertNotCalled(suite.T(), "CheckLowCash", mock.Anything, mock.Anything)
}

func (suite *FinanceHandlerTestSuite) TestLowCashAlert_ThresholdOverride() {
	suite.authorizer.On("Authorize", mock.Anything, mock.Anything, domain.CapabilityFinanceRead).Return(nil).Once()
	alert := &domain.LowCashAlert{
		IsLowCash:          true,
		CurrentCashBalance: decimal.RequireFromString("3000.00"),
		Threshold:          decimal.RequireFromString("4000"),
	}
	suite.tasks.On("CheckLowCash", mock.Anything, mock.MatchedBy(func(t *decimal.Decimal) bool {
		return t != nil && t.Equal(decimal.NewFromInt(4000))
	})).Return(alert, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/finance/alerts/low-cash?threshold=4000", nil, suite.generateTestToken("manager-1", "manager"))

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.LowCashAlert
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsLowCash)
	suite.True(decimal.RequireFromString("3000").Equal(resp.CurrentCashBalance))
	suite.tasks.AssertExpectations(suite.T())
}

func TestFinanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(FinanceHandlerTestSuite))
}

type assertErr string

func (e assertErr) Error() string { return string(e) }
