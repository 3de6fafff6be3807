package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/ulule/limiter/v3"
)

// Storage backends selectable with STORAGE_BACKEND.
const (
	StorageBackendFile     = "file"
	StorageBackendPostgres = "postgres"
)

const (
	defaultPort           = "8080"
	defaultMigrationsPath = "file://migrations"
	defaultDataFilePath   = "./data/dashboard.json"
	defaultFrontendURL    = "http://localhost:3000"
	defaultRateLimit      = "300-M"
	defaultChartCacheTTL  = 30 * time.Second
)

// Config holds application configuration.
type Config struct {
	Port            string
	IsProduction    bool
	StorageBackend  string
	DatabaseURL     string
	EnableDBCheck   bool
	MigrationsPath  string
	DataFilePath    string
	SeedOnStart     bool
	FrontendBaseURL string
	RateLimit       string // limiter format, e.g. "300-M"

	// Optional aggregated chart cache. Empty RedisURL disables it.
	RedisURL      string
	ChartCacheTTL time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("STORAGE_BACKEND", StorageBackendFile)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", defaultMigrationsPath)
	v.SetDefault("DATA_FILE_PATH", defaultDataFilePath)
	v.SetDefault("SEED_ON_START", true)
	v.SetDefault("FRONTEND_BASE_URL", defaultFrontendURL)
	v.SetDefault("RATE_LIMIT", defaultRateLimit)
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CHART_CACHE_TTL", defaultChartCacheTTL.String())

	v.AutomaticEnv()

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		DatabaseURL:     v.GetString("PGSQL_URL"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		SeedOnStart:     v.GetBool("SEED_ON_START"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
		RedisURL:        v.GetString("REDIS_URL"),
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = defaultPort
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.StorageBackend = strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_BACKEND")))
	switch cfg.StorageBackend {
	case StorageBackendFile, StorageBackendPostgres:
	case "":
		cfg.StorageBackend = StorageBackendFile
	default:
		return nil, fmt.Errorf("invalid STORAGE_BACKEND %q: must be %q or %q", cfg.StorageBackend, StorageBackendFile, StorageBackendPostgres)
	}

	if cfg.StorageBackend == StorageBackendPostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL must be set when STORAGE_BACKEND is %q", StorageBackendPostgres)
	}

	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")
	if cfg.MigrationsPath == "" {
		cfg.MigrationsPath = defaultMigrationsPath
	}

	cfg.DataFilePath = v.GetString("DATA_FILE_PATH")
	if cfg.DataFilePath == "" {
		cfg.DataFilePath = defaultDataFilePath
		log.Printf("Warning: DATA_FILE_PATH not set. Defaulting to %s\n", cfg.DataFilePath)
	}

	cfg.RateLimit = v.GetString("RATE_LIMIT")
	if _, err := limiter.NewRateFromFormatted(cfg.RateLimit); err != nil {
		log.Printf("Warning: Invalid value for RATE_LIMIT ('%s'). Defaulting to %s.\n", cfg.RateLimit, defaultRateLimit)
		cfg.RateLimit = defaultRateLimit
	}

	ttlStr := v.GetString("CHART_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		ttl = defaultChartCacheTTL
		log.Printf("Warning: Invalid value for CHART_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.ChartCacheTTL = ttl

	return cfg, nil
}
