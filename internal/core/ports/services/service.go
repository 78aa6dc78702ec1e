package services

// ServiceContainer holds instances of all the application services.
// Handlers and commands reach the finance core only through it.
type ServiceContainer struct {
	Accounts  ChartOfAccountsSvc
	Ledger    LedgerSvcFacade
	Recorders RecorderSvcFacade
	Payroll   PayrollSvcFacade
	Reporting ReportingSvc
	Tasks     ScheduledTasksSvc

	// Authorizer guards surfaces that call system-actor services on behalf of a caller.
	Authorizer CapabilityAuthorizerSvc
}
