package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
)

// chartOfAccountsService manages the fixed set of ledger accounts.
type chartOfAccountsService struct {
	BaseService
	repos portsrepo.Repositories
}

// NewChartOfAccountsService creates a new ChartOfAccountsSvc.
func NewChartOfAccountsService(repos portsrepo.Repositories, opts ...Option) portssvc.ChartOfAccountsSvc {
	return &chartOfAccountsService{
		BaseService: newBaseService(opts...),
		repos:       repos,
	}
}

var _ portssvc.ChartOfAccountsSvc = (*chartOfAccountsService)(nil)

func (s *chartOfAccountsService) EnsureDefaults(ctx context.Context) error {
	created, err := ensureDefaultAccounts(ctx, s.repos.Accounts())
	if err != nil {
		s.LogError(ctx, err, "Failed to ensure default chart of accounts")
		return err
	}
	if created > 0 {
		s.LogInfo(ctx, "Default accounts created", slog.Int("created", created))
	}
	return nil
}

func (s *chartOfAccountsService) Lookup(ctx context.Context, code domain.AccountCode) (*domain.Account, error) {
	return newAccountResolver(s.repos.Accounts()).resolve(ctx, code)
}

func (s *chartOfAccountsService) ListAccounts(ctx context.Context, actor domain.Actor) ([]domain.Account, error) {
	if err := s.Authorize(ctx, actor, domain.CapabilityFinanceRead); err != nil {
		return nil, err
	}
	accounts, err := s.repos.Accounts().ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}
