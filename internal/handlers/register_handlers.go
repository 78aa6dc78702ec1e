package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/retail_finance_core/cmd/docs"
	portssvc "github.com/SscSPs/retail_finance_core/internal/core/ports/services"
	"github.com/SscSPs/retail_finance_core/internal/dto"
	"github.com/SscSPs/retail_finance_core/internal/middleware"
	"github.com/SscSPs/retail_finance_core/internal/platform/config"
	"github.com/SscSPs/retail_finance_core/internal/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouterDeps are the optional collaborators of the HTTP surface.
type RouterDeps struct {
	Limiter   *limiter.Limiter
	Analytics *utils.PosthogClientWrapper
}

// NewRouter builds the gin engine with global middleware and every route registered.
func NewRouter(logger *slog.Logger, cfg *config.Config, services *portssvc.ServiceContainer, deps RouterDeps) (*gin.Engine, error) {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	if len(cfg.CORSAllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
		corsCfg.AddAllowHeaders("Authorization", "X-Request-ID")
		r.Use(cors.New(corsCfg))
	}
	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, err
	}

	RegisterRoutes(r, cfg, services, deps)
	return r, nil
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouterDeps,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, deps)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouterDeps,
) {
	v1 := r.Group("/api/v1")
	if deps.Limiter != nil {
		v1.Use(middleware.RateLimit(deps.Limiter))
	}
	v1.Use(middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))
	if deps.Analytics != nil {
		v1.Use(middleware.AnalyticsMiddleware(deps.Analytics))
	}

	finance := v1.Group("/finance")
	loc := cfg.BusinessLocation

	registerAccountRoutes(finance, services.Accounts)
	registerJournalRoutes(finance, services.Ledger, loc)
	registerRecorderRoutes(finance, services.Recorders, loc)
	registerPayrollRoutes(finance, services.Payroll, loc)
	registerReportingRoutes(finance, services.Reporting, loc)
	registerAlertRoutes(finance, services.Tasks, services.Authorizer)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
