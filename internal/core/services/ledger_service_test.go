package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portsrepo "github.com/SscSPs/retail_finance_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type LedgerServiceTestSuite struct {
	suite.Suite
	repos   *mockRepos
	tx      *fakeTxManager
	service portssvc.LedgerSvcFacade
	actor   domain.Actor
	ctx     context.Context
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.repos = newMockRepos()
	suite.tx = &fakeTxManager{repos: suite.repos}
	suite.service = services.NewLedgerService(
		portsrepo.RepositoryProvider{Repos: suite.repos, TxManager: suite.tx},
		services.WithAuthorizer(allowAll{}),
		services.WithClock(fixedClock),
	)
	suite.actor = domain.Actor{UserID: "user-1", Roles: []string{"accountant"}}
	suite.ctx = context.Background()
}

func (suite *LedgerServiceTestSuite) TearDownTest() {
	suite.repos.assertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) manualEntry(lines ...domain.NewJournalLine) domain.NewJournalEntry {
	return domain.NewJournalEntry{
		EntryDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Description: "Owner capital injection",
		Lines:       lines,
	}
}

func (suite *LedgerServiceTestSuite) TestCreateBalancedEntry_Success() {
	expectChart(suite.repos.accounts)
	suite.repos.journals.On("SaveEntry", mock.Anything, mock.MatchedBy(func(e domain.JournalEntry) bool {
		return len(e.Lines) == 2 &&
			e.IsBalanced() &&
			e.ReferenceType == domain.RefManual &&
			e.CreatedBy == "user-1" &&
			e.Lines[0].AccountID == "acc-1010" &&
			e.Lines[0].LineNo == 1 &&
			e.Lines[1].AccountID == "acc-3000"
	})).Return(nil).Once()
	suite.repos.audit.On("AppendAuditLog", mock.Anything, mock.MatchedBy(func(a domain.AuditLog) bool {
		return a.Action == domain.AuditCreateJournalEntry && a.ActorUserID == "user-1"
	})).Return(nil).Once()

	entry, err := suite.service.CreateBalancedEntry(suite.ctx, suite.actor, suite.manualEntry(
		domain.DebitLine(domain.CodeBank, dec("10000.00")),
		domain.CreditLine(domain.CodeOwnerEquity, dec("10000.00")),
	))

	suite.Require().NoError(err)
	suite.NotEmpty(entry.EntryID)
	suite.False(entry.IsReversal)
	suite.Equal(1, suite.tx.commits)
}

func (suite *LedgerServiceTestSuite) TestCreateBalancedEntry_Unbalanced() {
	_, err := suite.service.CreateBalancedEntry(suite.ctx, suite.actor, suite.manualEntry(
		domain.DebitLine(domain.CodeBank, dec("100.00")),
		domain.CreditLine(domain.CodeOwnerEquity, dec("99.99")),
	))

	suite.ErrorIs(err, services.ErrUnbalancedEntry)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.repos.journals.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
	suite.Equal(0, suite.tx.commits+suite.tx.rollbacks, "rejected before any unit of work opens")
}

func (suite *LedgerServiceTestSuite) TestCreateBalancedEntry_SingleLine() {
	_, err := suite.service.CreateBalancedEntry(suite.ctx, suite.actor, suite.manualEntry(
		domain.DebitLine(domain.CodeBank, dec("100.00")),
	))
	suite.ErrorIs(err, services.ErrJournalMinLines)
}

func (suite *LedgerServiceTestSuite) TestCreateBalancedEntry_UnknownAccount() {
	expectChart(suite.repos.accounts)
	suite.repos.accounts.On("FindAccountByCode", mock.Anything, domain.AccountCode("9999")).
		Return(nil, apperrors.NewNotFoundError("account", "9999")).Once()

	_, err := suite.service.CreateBalancedEntry(suite.ctx, suite.actor, suite.manualEntry(
		domain.DebitLine("9999", dec("5.00")),
		domain.CreditLine(domain.CodeCash, dec("5.00")),
	))

	suite.ErrorIs(err, services.ErrAccountNotConfigured)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.repos.journals.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
	suite.Equal(1, suite.tx.rollbacks)
}

func (suite *LedgerServiceTestSuite) TestCreateBalancedEntry_SaveFailureIsRetryable() {
	expectChart(suite.repos.accounts)
	suite.repos.journals.On("SaveEntry", mock.Anything, mock.Anything).
		Return(apperrors.NewRetryableError("database unavailable", fmt.Errorf("conn reset"))).Once()

	_, err := suite.service.CreateBalancedEntry(suite.ctx, suite.actor, suite.manualEntry(
		domain.DebitLine(domain.CodeBank, dec("1.00")),
		domain.CreditLine(domain.CodeOwnerEquity, dec("1.00")),
	))

	suite.True(apperrors.IsRetryable(err))
	suite.Equal(1, suite.tx.rollbacks)
	suite.repos.audit.AssertNotCalled(suite.T(), "AppendAuditLog", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestCreateBalancedEntry_NoAuthorizerDenies() {
	svc := services.NewLedgerService(portsrepo.RepositoryProvider{Repos: suite.repos, TxManager: suite.tx})

	_, err := svc.CreateBalancedEntry(suite.ctx, suite.actor, suite.manualEntry(
		domain.DebitLine(domain.CodeBank, dec("1.00")),
		domain.CreditLine(domain.CodeOwnerEquity, dec("1.00")),
	))
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *LedgerServiceTestSuite) originalEntry() *domain.JournalEntry {
	return &domain.JournalEntry{
		EntryID:       "je-1",
		EntryDate:     time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Description:   "Expense rent",
		ReferenceType: domain.RefExpense,
		ReferenceID:   "exp-1",
		Lines: []domain.JournalLine{
			{LineID: "l1", EntryID: "je-1", LineNo: 1, AccountID: "acc-6000", AccountCode: domain.CodeOperatingExpense, Debit: dec("1200.00"), Credit: decimal.Zero},
			{LineID: "l2", EntryID: "je-1", LineNo: 2, AccountID: "acc-1000", AccountCode: domain.CodeCash, Debit: decimal.Zero, Credit: dec("1200.00")},
		},
	}
}

func (suite *LedgerServiceTestSuite) TestReverse_Success() {
	original := suite.originalEntry()
	expectChart(suite.repos.accounts)
	suite.repos.journals.On("FindEntryByID", mock.Anything, "je-1").Return(original, nil).Once()
	suite.repos.journals.On("FindReversalOf", mock.Anything, "je-1").Return(nil, apperrors.NewNotFoundError("reversal of journal entry", "je-1")).Once()

	var saved domain.JournalEntry
	suite.repos.journals.On("SaveEntry", mock.Anything, mock.AnythingOfType("domain.JournalEntry")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.JournalEntry) }).
		Return(nil).Once()
	suite.repos.audit.On("AppendAuditLog", mock.Anything, mock.MatchedBy(func(a domain.AuditLog) bool {
		return a.Action == domain.AuditReverseEntry
	})).Return(nil).Once()

	reversal, err := suite.service.Reverse(suite.ctx, suite.actor, "je-1")

	suite.Require().NoError(err)
	suite.True(reversal.IsReversal)
	suite.Require().NotNil(reversal.ReversalOfEntryID)
	suite.Equal("je-1", *reversal.ReversalOfEntryID)
	suite.Equal(original.EntryDate, reversal.EntryDate)
	suite.Equal(domain.RefReversal, reversal.ReferenceType)
	suite.Equal("Reversal of JE je-1", reversal.Description)
	suite.True(saved.IsBalanced())

	net := map[domain.AccountCode]decimal.Decimal{}
	for _, l := range append(original.Lines, saved.Lines...) {
		net[l.AccountCode] = net[l.AccountCode].Add(l.Debit).Sub(l.Credit)
	}
	for code, v := range net {
		suite.True(v.IsZero(), "account %s nets to %s", code, v)
	}
}

func (suite *LedgerServiceTestSuite) TestReverse_NotFound() {
	suite.repos.journals.On("FindEntryByID", mock.Anything, "missing").
		Return(nil, apperrors.NewNotFoundError("journal entry", "missing")).Once()

	_, err := suite.service.Reverse(suite.ctx, suite.actor, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LedgerServiceTestSuite) TestReverse_AlreadyReversed() {
	suite.repos.journals.On("FindEntryByID", mock.Anything, "je-1").Return(suite.originalEntry(), nil).Once()
	suite.repos.journals.On("FindReversalOf", mock.Anything, "je-1").Return(&domain.JournalEntry{EntryID: "je-2"}, nil).Once()

	_, err := suite.service.Reverse(suite.ctx, suite.actor, "je-1")

	suite.ErrorIs(err, services.ErrAlreadyReversed)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.repos.journals.AssertNotCalled(suite.T(), "SaveEntry", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestReverse_ReversalCannotBeReversed() {
	reversal := suite.originalEntry()
	reversal.IsReversal = true
	suite.repos.journals.On("FindEntryByID", mock.Anything, "je-1").Return(reversal, nil).Once()

	_, err := suite.service.Reverse(suite.ctx, suite.actor, "je-1")
	suite.ErrorIs(err, services.ErrReversalOfReversal)
}

func (suite *LedgerServiceTestSuite) TestReverse_LosesRaceToConcurrentReversal() {
	expectChart(suite.repos.accounts)
	suite.repos.journals.On("FindEntryByID", mock.Anything, "je-1").Return(suite.originalEntry(), nil).Once()
	suite.repos.journals.On("FindReversalOf", mock.Anything, "je-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.repos.journals.On("SaveEntry", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: journal entry", apperrors.ErrDuplicate)).Once()

	_, err := suite.service.Reverse(suite.ctx, suite.actor, "je-1")

	suite.ErrorIs(err, services.ErrAlreadyReversed)
	suite.Equal(1, suite.tx.rollbacks)
}

func (suite *LedgerServiceTestSuite) TestListEntries_ClampsLimit() {
	suite.repos.journals.On("ListEntries", mock.Anything, 100, (*string)(nil)).
		Return([]domain.JournalEntry{}, "next", nil).Once()

	entries, next, err := suite.service.ListEntries(suite.ctx, suite.actor, 5000, nil)

	suite.Require().NoError(err)
	suite.Empty(entries)
	suite.Require().NotNil(next)
	suite.Equal("next", *next)
}

func (suite *LedgerServiceTestSuite) TestListEntries_DefaultLimit() {
	suite.repos.journals.On("ListEntries", mock.Anything, 20, (*string)(nil)).
		Return([]domain.JournalEntry{}, nil, nil).Once()

	_, next, err := suite.service.ListEntries(suite.ctx, suite.actor, 0, nil)
	suite.Require().NoError(err)
	suite.Nil(next)
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func TestRoleAuthorizer(t *testing.T) {
	authz := services.NewRoleAuthorizer([]string{"manager"}, []string{"accountant"})
	ctx := context.Background()

	tests := []struct {
		name       string
		actor      domain.Actor
		capability domain.Capability
		allowed    bool
	}{
		{"writer may write", domain.Actor{UserID: "u", Roles: []string{"accountant"}}, domain.CapabilityFinanceWrite, true},
		{"writer may read", domain.Actor{UserID: "u", Roles: []string{"accountant"}}, domain.CapabilityFinanceRead, true},
		{"reader may read", domain.Actor{UserID: "u", Roles: []string{"manager"}}, domain.CapabilityFinanceRead, true},
		{"reader may not write", domain.Actor{UserID: "u", Roles: []string{"manager"}}, domain.CapabilityFinanceWrite, false},
		{"no roles", domain.Actor{UserID: "u"}, domain.CapabilityFinanceRead, false},
		{"anonymous", domain.Actor{Roles: []string{"accountant"}}, domain.CapabilityFinanceWrite, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := authz.Authorize(ctx, tt.actor, tt.capability)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrForbidden)
			}
		})
	}
}
