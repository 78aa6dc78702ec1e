package services

import (
	"fmt"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/utils/accounting"
)

// Finance sentinels. Each wraps an apperrors class so callers can match either level.
var (
	ErrUnbalancedEntry          = accounting.ErrUnbalanced
	ErrJournalMinLines          = accounting.ErrTooFewLines
	ErrInvalidJournalLine       = accounting.ErrInvalidLine
	ErrInvalidAmount            = accounting.ErrInvalidAmount
	ErrAccountNotConfigured     = fmt.Errorf("%w: account not configured", apperrors.ErrNotFound)
	ErrInvalidAuthorizationCode = fmt.Errorf("%w: invalid authorization code", apperrors.ErrForbidden)
	ErrAlreadyReversed          = fmt.Errorf("%w: journal entry already reversed", apperrors.ErrConflict)
	ErrReversalOfReversal       = fmt.Errorf("%w: a reversal entry cannot be reversed", apperrors.ErrConflict)
	ErrDescriptionMissing       = fmt.Errorf("%w: description is required", apperrors.ErrValidation)
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", apperrors.ErrValidation, fmt.Sprintf(format, args...))
}
