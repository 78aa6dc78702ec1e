package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/retail_finance_core/internal/apperrors"
	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/SscSPs/retail_finance_core/internal/middleware"
	"github.com/gin-gonic/gin"
)

var errForbiddenNoAuthorizer = fmt.Errorf("%w: no capability authorizer configured", apperrors.ErrForbidden)

// statusForError maps the error taxonomy to an HTTP status.
func statusForError(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict
	case apperrors.IsRetryable(err):
		return http.StatusServiceUnavailable
	}
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 600 {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondWithError logs err at a level matching its class and writes {"error": ...}.
// Server-side failures never leak their cause to the client.
func respondWithError(c *gin.Context, err error, failureMsg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := statusForError(err)

	switch {
	case status == http.StatusServiceUnavailable:
		logger.Warn(failureMsg+": retryable failure", slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": "Temporarily unavailable, please retry"})
	case status >= http.StatusInternalServerError:
		logger.Error(failureMsg, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": failureMsg})
	default:
		logger.Warn(failureMsg, slog.String("error", err.Error()), slog.Int("status", status))
		c.JSON(status, gin.H{"error": err.Error()})
	}
}

// actorOrAbort returns the authenticated actor, writing 401 when there is none.
func actorOrAbort(c *gin.Context) (domain.Actor, bool) {
	actor, ok := middleware.GetActorFromContext(c)
	if !ok || actor.UserID == "" {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.Actor{}, false
	}
	return actor, true
}

func badRequest(c *gin.Context, msg string, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn(msg, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": msg + ": " + err.Error()})
}
