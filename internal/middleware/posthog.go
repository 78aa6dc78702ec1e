package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/retail_finance_core/internal/utils"
	"github.com/gin-gonic/gin"
)

// pathsToSkip contains paths that should not be tracked.
var pathsToSkip = map[string]bool{
	"/health": true,
}

// AnalyticsMiddleware captures one event per successful API call, named after the route
// ("/api/v1/finance/expenses" -> "api_v1_finance_expenses").
func AnalyticsMiddleware(client *utils.PosthogClientWrapper) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || !client.IsInitialized() || pathsToSkip[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, exists := GetUserIDFromContext(c)
		if !exists {
			return
		}

		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.NewReplacer("/", "_", ":", "").Replace(eventName)
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		client.Enqueue(userID, eventName, props)
	}
}
