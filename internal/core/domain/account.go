package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	AssetType     AccountType = "ASSET"
	LiabilityType AccountType = "LIABILITY"
	EquityType    AccountType = "EQUITY"
	RevenueType   AccountType = "REVENUE"
	ExpenseType   AccountType = "EXPENSE"
)

// IsValid reports whether t is one of the five fixed account types.
func (t AccountType) IsValid() bool {
	switch t {
	case AssetType, LiabilityType, EquityType, RevenueType, ExpenseType:
		return true
	}
	return false
}

// AccountCode is the stable, human-assigned identifier of a chart-of-accounts entry.
type AccountCode string

const (
	CodeCash               AccountCode = "1000"
	CodeBank               AccountCode = "1010"
	CodeAccountsReceivable AccountCode = "1100"
	CodeAccountsPayable    AccountCode = "2000"
	CodePayrollLiability   AccountCode = "2100"
	CodeOwnerEquity        AccountCode = "3000"
	CodeRetainedEarnings   AccountCode = "3100"
	CodeRevenue            AccountCode = "4000"
	CodeCostOfGoodsSold    AccountCode = "5000"
	CodeOperatingExpense   AccountCode = "6000"
	CodeSalaryExpense      AccountCode = "6100"
)

// Account is an entry in the chart of accounts. Accounts are never mutated once created.
type Account struct {
	AccountID   string      `json:"accountID"`
	Code        AccountCode `json:"code"`
	Name        string      `json:"name"`
	AccountType AccountType `json:"accountType"`
}

// DefaultChart returns the fixed set of accounts every ledger needs.
func DefaultChart() []Account {
	return []Account{
		{Code: CodeCash, Name: "Cash", AccountType: AssetType},
		{Code: CodeBank, Name: "Bank", AccountType: AssetType},
		{Code: CodeAccountsReceivable, Name: "Accounts Receivable", AccountType: AssetType},
		{Code: CodeAccountsPayable, Name: "Accounts Payable", AccountType: LiabilityType},
		{Code: CodePayrollLiability, Name: "Payroll Liability", AccountType: LiabilityType},
		{Code: CodeOwnerEquity, Name: "Owner Equity", AccountType: EquityType},
		{Code: CodeRetainedEarnings, Name: "Retained Earnings", AccountType: EquityType},
		{Code: CodeRevenue, Name: "Revenue", AccountType: RevenueType},
		{Code: CodeCostOfGoodsSold, Name: "Cost of Goods Sold", AccountType: ExpenseType},
		{Code: CodeOperatingExpense, Name: "Operating Expenses", AccountType: ExpenseType},
		{Code: CodeSalaryExpense, Name: "Salary Expense", AccountType: ExpenseType},
	}
}

// PaymentMethodCash routes a movement through the cash drawer; every other method goes through the bank.
const PaymentMethodCash = "cash"

// PaymentAccountCode picks the cash or bank account for a payment method.
func PaymentAccountCode(paymentMethod string) AccountCode {
	if paymentMethod == PaymentMethodCash {
		return CodeCash
	}
	return CodeBank
}
