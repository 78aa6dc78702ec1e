package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/middleware"
)

// roleAuthorizer maps role names to finance capabilities. Write roles also grant read.
type roleAuthorizer struct {
	readRoles  []string
	writeRoles []string
}

// NewRoleAuthorizer creates a capability check driven by role lists.
func NewRoleAuthorizer(readRoles, writeRoles []string) portssvc.CapabilityAuthorizerSvc {
	return &roleAuthorizer{readRoles: readRoles, writeRoles: writeRoles}
}

var _ portssvc.CapabilityAuthorizerSvc = (*roleAuthorizer)(nil)

func (a *roleAuthorizer) Authorize(ctx context.Context, actor domain.Actor, capability domain.Capability) error {
	allowed := false
	switch capability {
	case domain.CapabilityFinanceWrite:
		allowed = actor.HasAnyRole(a.writeRoles...)
	case domain.CapabilityFinanceRead:
		allowed = actor.HasAnyRole(a.readRoles...) || actor.HasAnyRole(a.writeRoles...)
	}
	if actor.UserID == "" {
		allowed = false
	}
	if !allowed {
		middleware.GetLoggerFromCtx(ctx).Warn("Capability check failed",
			slog.String("user_id", actor.UserID),
			slog.String("capability", string(capability)),
			slog.Any("roles", actor.Roles))
		return fmt.Errorf("%w: %s required", apperrors.ErrForbidden, capability)
	}
	return nil
}
