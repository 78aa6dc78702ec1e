package repositories

// Repositories exposes every finance repository bound to one connection or transaction.
type Repositories interface {
	Accounts() AccountRepositoryFacade
	Journals() JournalRepositoryFacade
	Expenses() ExpenseRepositoryFacade
	Incomes() IncomeRepositoryFacade
	Employees() EmployeeRepositoryFacade
	Payrolls() PayrollRepositoryFacade
	CashTransactions() CashTransactionRepository
	AuditLogs() AuditLogRepository
	Invoices() InvoiceReader
	Reports() ReportingRepository
}

// RepositoryProvider holds what services need from the storage layer.
type RepositoryProvider struct {
	// Repos is bound to the connection pool and serves single-statement reads.
	Repos Repositories
	// TxManager opens units of work spanning several repositories.
	TxManager TransactionManager
}
