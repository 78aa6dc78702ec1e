package accounting

import (
	"fmt"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MaxScale is the number of decimal places money is stored with.
const MaxScale = 2

var (
	// ErrUnbalanced means total debits differ from total credits.
	ErrUnbalanced = fmt.Errorf("%w: journal entry debits and credits do not balance", apperrors.ErrValidation)
	// ErrTooFewLines means an entry has fewer than two lines.
	ErrTooFewLines = fmt.Errorf("%w: journal entry requires at least two lines", apperrors.ErrValidation)
	// ErrInvalidLine means a line breaks the one-sided, non-negative rule.
	ErrInvalidLine = fmt.Errorf("%w: invalid journal line", apperrors.ErrValidation)
	// ErrInvalidAmount means a money value is non-positive or too precise.
	ErrInvalidAmount = fmt.Errorf("%w: invalid amount", apperrors.ErrValidation)
)

// NaturalBalance converts a Σ(debit - credit) figure into the balance an account of the
// given type normally carries: debit-normal for assets and expenses, credit-normal otherwise.
func NaturalBalance(accountType domain.AccountType, netDebit decimal.Decimal) (decimal.Decimal, error) {
	switch accountType {
	case domain.AssetType, domain.ExpenseType:
		return netDebit, nil
	case domain.LiabilityType, domain.EquityType, domain.RevenueType:
		return netDebit.Neg(), nil
	default:
		return decimal.Zero, fmt.Errorf("unknown account type '%s'", accountType)
	}
}

// ValidateLines checks the structural rules of a journal entry: at least two lines, each
// line non-negative with at most one side non-zero, amounts at money precision, and
// Σdebit == Σcredit compared exactly.
func ValidateLines(lines []domain.NewJournalLine) error {
	if len(lines) < 2 {
		return fmt.Errorf("%w: got %d", ErrTooFewLines, len(lines))
	}

	debits, credits := decimal.Zero, decimal.Zero
	for i, line := range lines {
		if line.AccountCode == "" {
			return fmt.Errorf("%w: line %d has no account code", ErrInvalidLine, i+1)
		}
		if line.Debit.IsNegative() || line.Credit.IsNegative() {
			return fmt.Errorf("%w: line %d has a negative amount", ErrInvalidLine, i+1)
		}
		if line.Debit.IsPositive() && line.Credit.IsPositive() {
			return fmt.Errorf("%w: line %d has both debit and credit", ErrInvalidLine, i+1)
		}
		if !HasMoneyScale(line.Debit) || !HasMoneyScale(line.Credit) {
			return fmt.Errorf("%w: line %d has more than %d decimal places", ErrInvalidLine, i+1, MaxScale)
		}
		debits = debits.Add(line.Debit)
		credits = credits.Add(line.Credit)
	}

	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s", ErrUnbalanced, debits.String(), credits.String())
	}
	return nil
}

// ValidatePositiveAmount rejects zero, negative and over-precise amounts.
func ValidatePositiveAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidAmount, field)
	}
	if !HasMoneyScale(amount) {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, field, MaxScale)
	}
	return nil
}

// ValidateNonNegativeAmount rejects negative and over-precise amounts.
func ValidateNonNegativeAmount(field string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidAmount, field)
	}
	if !HasMoneyScale(amount) {
		return fmt.Errorf("%w: %s has more than %d decimal places", ErrInvalidAmount, field, MaxScale)
	}
	return nil
}

// HasMoneyScale reports whether d is representable with MaxScale decimal places.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Round(MaxScale))
}

// SwapSides returns the mirror image of lines, turning every debit into a credit and back.
func SwapSides(lines []domain.JournalLine) []domain.NewJournalLine {
	swapped := make([]domain.NewJournalLine, 0, len(lines))
	for _, l := range lines {
		swapped = append(swapped, domain.NewJournalLine{
			AccountCode: l.AccountCode,
			Debit:       l.Credit,
			Credit:      l.Debit,
		})
	}
	return swapped
}

// TwoLegs builds a debit/credit pair for amount. A negative amount flips the legs so both
// lines stay non-negative.
func TwoLegs(debit, credit domain.AccountCode, amount decimal.Decimal) []domain.NewJournalLine {
	if amount.IsNegative() {
		debit, credit = credit, debit
		amount = amount.Abs()
	}
	return []domain.NewJournalLine{
		domain.DebitLine(debit, amount),
		domain.CreditLine(credit, amount),
	}
}
