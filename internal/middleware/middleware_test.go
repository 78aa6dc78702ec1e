package middleware_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/retail_finance_core/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "test-secret"
	testIssuer = "retail-finance-core"
)

func signToken(t *testing.T, claims middleware.Claims, secret string) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(testSecret, testIssuer))
	r.GET("/whoami", func(c *gin.Context) {
		actor, ok := middleware.GetActorFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"userID": actor.UserID, "roles": actor.Roles})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid := middleware.Claims{
		Roles: []string{"accountant"},
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			Issuer:    testIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	noSubject := valid
	noSubject.Subject = ""
	foreignIssuer := valid
	foreignIssuer.Issuer = "someone-else"
	noIssuer := valid
	noIssuer.Issuer = ""

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid token carries roles", header: "Bearer " + signToken(t, valid, testSecret), wantStatus: http.StatusOK, wantBody: `"roles":["accountant"]`},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantBody: "Authorization header required"},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantBody: "Bearer {token}"},
		{name: "expired", header: "Bearer " + signToken(t, expired, testSecret), wantStatus: http.StatusUnauthorized, wantBody: "Token has expired"},
		{name: "wrong secret", header: "Bearer " + signToken(t, valid, "other"), wantStatus: http.StatusUnauthorized, wantBody: "Invalid token"},
		{name: "issuer from another service", header: "Bearer " + signToken(t, foreignIssuer, testSecret), wantStatus: http.StatusUnauthorized, wantBody: "Token issuer not accepted"},
		{name: "issuer missing", header: "Bearer " + signToken(t, noIssuer, testSecret), wantStatus: http.StatusUnauthorized, wantBody: "Token issuer not accepted"},
		{name: "no subject", header: "Bearer " + signToken(t, noSubject, testSecret), wantStatus: http.StatusUnauthorized, wantBody: "Invalid token claims"},
	}

	r := newAuthRouter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lim, err := middleware.NewRateLimiter("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(lim))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	_, err = middleware.NewRateLimiter("lots")
	assert.Error(t, err)
}

func TestStructuredLoggingMiddleware_EchoesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slog.Default()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}
