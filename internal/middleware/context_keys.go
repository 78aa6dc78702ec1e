package middleware

import (
	"context"

	"github.com/SscSPs/retail_finance_core/internal/core/domain"
	"github.com/gin-gonic/gin"
)

// contextKey is a private type for values this package stores in a request context.
type contextKey string

const (
	loggerCtxKey = contextKey("logger")
	userIDKey    = contextKey("userID")
	actorCtxKey  = contextKey("actor")
)

// GetUserIDFromContext retrieves the authenticated user ID from the request context.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	actor, ok := GetActorFromContext(c)
	if !ok {
		return "", false
	}
	return actor.UserID, true
}

// GetActorFromContext retrieves the authenticated actor from the request context.
func GetActorFromContext(c *gin.Context) (domain.Actor, bool) {
	return ActorFromCtx(c.Request.Context())
}

// ActorFromCtx retrieves the actor stored by AuthMiddleware.
func ActorFromCtx(ctx context.Context) (domain.Actor, bool) {
	actor, ok := ctx.Value(actorCtxKey).(domain.Actor)
	return actor, ok
}

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	ctx = context.WithValue(ctx, userIDKey, actor.UserID)
	return context.WithValue(ctx, actorCtxKey, actor)
}
