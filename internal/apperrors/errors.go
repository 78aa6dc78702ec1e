package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates that the caller is not authenticated.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the caller lacks the capability for the action.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates that the action conflicts with the current state of the resource.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
// Retryable marks failures of the underlying store that leave no partial state behind.
type AppError struct {
	Code      int
	Message   string
	Err       error
	Retryable bool
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError wraps err with a status code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewRetryableError wraps a persistence failure that the caller may retry.
func NewRetryableError(message string, err error) *AppError {
	return &AppError{Code: http.StatusServiceUnavailable, Message: message, Err: err, Retryable: true}
}

// NewNotFoundError returns an error wrapping ErrNotFound for the named entity.
func NewNotFoundError(entity, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, entity, id)
}

// IsRetryable reports whether any AppError in err's chain is retryable.
func IsRetryable(err error) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Retryable
	}
	return false
}
