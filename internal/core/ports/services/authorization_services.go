package services

import (
	"context"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
)

// CapabilityAuthorizerSvc decides whether an actor may perform a class of finance operations.
type CapabilityAuthorizerSvc interface {
	// Authorize returns an error wrapping apperrors.ErrForbidden when the actor lacks capability.
	Authorize(ctx context.Context, actor domain.Actor, capability domain.Capability) error
}

// ApprovalCodeVerifier checks the one-time code that releases payroll settlement.
type ApprovalCodeVerifier interface {
	Verify(ctx context.Context, code string) bool
}
