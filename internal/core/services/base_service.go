package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Authorizer portssvc.CapabilityAuthorizerSvc
	clock      func() time.Time
	location   *time.Location
}

// Option configures the BaseService embedded in every finance service.
type Option func(*BaseService)

// WithAuthorizer sets the capability check used before each operation.
func WithAuthorizer(a portssvc.CapabilityAuthorizerSvc) Option {
	return func(s *BaseService) { s.Authorizer = a }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *BaseService) { s.clock = now }
}

// WithLocation sets the business time zone that decides what "today" is.
func WithLocation(loc *time.Location) Option {
	return func(s *BaseService) { s.location = loc }
}

func newBaseService(opts ...Option) BaseService {
	base := BaseService{clock: time.Now, location: time.UTC}
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	s.GetLogger(ctx).Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// Authorize checks the actor's capability. Without an authorizer every call is denied.
func (s *BaseService) Authorize(ctx context.Context, actor domain.Actor, capability domain.Capability) error {
	if s.Authorizer == nil {
		s.GetLogger(ctx).Warn("No capability authorizer configured, denying access",
			slog.String("user_id", actor.UserID),
			slog.String("capability", string(capability)))
		return fmt.Errorf("%w: no authorizer configured", apperrors.ErrForbidden)
	}
	return s.Authorizer.Authorize(ctx, actor, capability)
}

// now returns the current instant in the business time zone.
func (s *BaseService) now() time.Time {
	clock := s.clock
	if clock == nil {
		clock = time.Now
	}
	loc := s.location
	if loc == nil {
		loc = time.UTC
	}
	return clock().In(loc)
}

// today returns the current business date at midnight.
func (s *BaseService) today() time.Time {
	return domain.DateOnly(s.now())
}
