package handlers

import (
	"log/slog"

	"github.com/SscSPs/macro_dashboard_app/cmd/docs"
	portssvc "github.com/SscSPs/macro_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/macro_dashboard_app/internal/middleware"
	"github.com/SscSPs/macro_dashboard_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	registerValidators()

	r.GET("/health", getHealth)

	setupAPIRoutes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	api := r.Group("/api")

	lim, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		slog.Warn("Rate limiting disabled", slog.String("error", err.Error()))
	} else {
		api.Use(middleware.RateLimit(lim))
	}

	registerExchangeRateRoutes(api, service.ExchangeRate)
	registerIndicatorRoutes(api, service.Indicator)
	registerChartRoutes(api, service.Chart)
	registerMarketRoutes(api, service.MarketQuote)
	registerNewsRoutes(api, service.News)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
