package services

import (
	"context"
	"crypto/subtle"
	"log/slog"

	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/middleware"
	"golang.org/x/crypto/bcrypt"
)

// approvalCodeVerifier accepts the payroll settlement code. A bcrypt hash takes precedence
// over a plain shared code; with neither configured every code is rejected.
type approvalCodeVerifier struct {
	plain []byte
	hash  []byte
}

// NewApprovalCodeVerifier creates the settlement code check.
func NewApprovalCodeVerifier(plainCode, bcryptHash string) portssvc.ApprovalCodeVerifier {
	return &approvalCodeVerifier{plain: []byte(plainCode), hash: []byte(bcryptHash)}
}

func (v *approvalCodeVerifier) Verify(ctx context.Context, code string) bool {
	if code == "" {
		return false
	}
	if len(v.hash) > 0 {
		err := bcrypt.CompareHashAndPassword(v.hash, []byte(code))
		if err != nil && err != bcrypt.ErrMismatchedHashAndPassword {
			middleware.GetLoggerFromCtx(ctx).Error("Approval code hash is unusable", slog.String("error", err.Error()))
		}
		return err == nil
	}
	if len(v.plain) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare(v.plain, []byte(code)) == 1
}
