package pgsql

import (
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// repositories binds every finance repository to one querier.
type repositories struct {
	db querier
}

var _ portsrepo.Repositories = (*repositories)(nil)

func newRepositories(db querier) *repositories {
	return &repositories{db: db}
}

func (r *repositories) base() BaseRepository { return BaseRepository{DB: r.db} }

func (r *repositories) Accounts() portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: r.base()}
}

func (r *repositories) Journals() portsrepo.JournalRepositoryFacade {
	return &PgxJournalRepository{BaseRepository: r.base()}
}

func (r *repositories) Expenses() portsrepo.ExpenseRepositoryFacade {
	return &PgxExpenseRepository{BaseRepository: r.base()}
}

func (r *repositories) Incomes() portsrepo.IncomeRepositoryFacade {
	return &PgxIncomeRepository{BaseRepository: r.base()}
}

func (r *repositories) Employees() portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{BaseRepository: r.base()}
}

func (r *repositories) Payrolls() portsrepo.PayrollRepositoryFacade {
	return &PgxPayrollRepository{BaseRepository: r.base()}
}

func (r *repositories) CashTransactions() portsrepo.CashTransactionRepository {
	return &PgxCashTransactionRepository{BaseRepository: r.base()}
}

func (r *repositories) AuditLogs() portsrepo.AuditLogRepository {
	return &PgxAuditLogRepository{BaseRepository: r.base()}
}

func (r *repositories) Invoices() portsrepo.InvoiceReader {
	return &PgxInvoiceRepository{BaseRepository: r.base()}
}

func (r *repositories) Reports() portsrepo.ReportingRepository {
	return &reportingRepository{BaseRepository: r.base()}
}

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		Repos:     newRepositories(dbPool),
		TxManager: NewStore(dbPool),
	}
}
