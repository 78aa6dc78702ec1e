package services

import (
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// notifier may be nil, in which case alerts are only logged.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, notifier portssvc.AlertNotifier) *portssvc.ServiceContainer {
	authorizer := NewRoleAuthorizer(cfg.FinanceReadRoles, cfg.FinanceWriteRoles)
	opts := []Option{
		WithAuthorizer(authorizer),
		WithLocation(cfg.BusinessLocation),
	}

	container := &portssvc.ServiceContainer{Authorizer: authorizer}
	container.Accounts = NewChartOfAccountsService(repos.Repos, opts...)
	container.Ledger = NewLedgerService(repos, opts...)
	container.Recorders = NewRecorderService(repos, opts...)
	container.Payroll = NewPayrollService(repos,
		NewApprovalCodeVerifier(cfg.PayrollApprovalCode, cfg.PayrollApprovalCodeHash), opts...)
	container.Reporting = NewReportingService(repos, cfg.SalaryObligationWindowDays, opts...)

	// the scheduler acts with the same roles a human writer would hold
	systemActor := domain.Actor{UserID: cfg.SystemActorID, Roles: cfg.FinanceWriteRoles}
	container.Tasks = NewScheduledTasksService(repos.Repos, container.Payroll, container.Reporting, notifier,
		TaskSettings{SystemActor: systemActor, LowCashThreshold: cfg.LowCashThreshold}, opts...)

	return container
}
