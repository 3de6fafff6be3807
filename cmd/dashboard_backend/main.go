package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/macro_dashboard_app/internal/adapters/cache"
	portscache "github.com/SscSPs/macro_dashboard_app/internal/core/ports/cache"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/macro_dashboard_app/internal/core/services"
	"github.com/SscSPs/macro_dashboard_app/internal/handlers"
	"github.com/SscSPs/macro_dashboard_app/internal/middleware"
	"github.com/SscSPs/macro_dashboard_app/internal/platform/config"
	"github.com/SscSPs/macro_dashboard_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/macro_dashboard_app/internal/repositories/jsonfile"
	"github.com/SscSPs/macro_dashboard_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Macro Dashboard API
// @version 1.0
// @description Exchange rates, economic indicators, chart series, market quotes and news for the dashboard.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	repos, closeStore, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("backend", cfg.StorageBackend), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	chartCache := setupChartCache(ctx, cfg, logger)

	serviceContainer := services.NewServiceContainer(repos, chartCache)

	if cfg.SeedOnStart {
		logger.Info("Seeding default dashboard data...")
		if err := serviceContainer.StaticData.InitializeStaticData(ctx); err != nil {
			logger.Error("Failed to seed default data", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.FrontendBaseURL}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	r.Use(cors.New(corsConfig))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage_backend", cfg.StorageBackend))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupRepositories opens the configured backend. The returned func releases it.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.StorageBackend == config.StorageBackendPostgres {
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Database connection pool established.")

		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			dbPool.Close()
			return portsrepo.RepositoryProvider{}, nil, err
		}

		return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
	}

	store, err := jsonfile.NewStore(cfg.DataFilePath)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	logger.Info("Using JSON data file", slog.String("path", store.Path()))
	return jsonfile.NewRepositoryProvider(store), func() {}, nil
}

// setupChartCache connects to Redis when configured. Any failure falls back to no caching.
func setupChartCache(ctx context.Context, cfg *config.Config, logger *slog.Logger) portscache.ChartCache {
	if cfg.RedisURL == "" {
		return cache.NewNoopChartCache()
	}

	client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Warn("Redis unavailable, chart cache disabled", slog.String("error", err.Error()))
		return cache.NewNoopChartCache()
	}
	logger.Info("Chart cache enabled", slog.Duration("ttl", cfg.ChartCacheTTL))
	return cache.NewRedisChartCache(client, cfg.ChartCacheTTL)
}
