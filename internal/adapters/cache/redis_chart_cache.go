package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portscache "github.com/SscSPs/macro_dashboard_app/internal/core/ports/cache"
	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to redisURL, accepting either a redis:// URL or a bare host:port.
func NewRedisClient(ctx context.Context, redisURL string) (*redis.Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		opt = &redis.Options{Addr: redisURL}
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

type redisChartCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisChartCache stores aggregated series as JSON with the given TTL.
func NewRedisChartCache(client *redis.Client, ttl time.Duration) portscache.ChartCache {
	return &redisChartCache{client: client, ttl: ttl}
}

func (c *redisChartCache) Get(ctx context.Context, key string) (domain.ChartSeries, bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}

	var series domain.ChartSeries
	if err := json.Unmarshal(raw, &series); err != nil {
		return nil, false, fmt.Errorf("decode cached chart series %s: %w", key, err)
	}
	return series, true, nil
}

func (c *redisChartCache) Set(ctx context.Context, key string, series domain.ChartSeries) error {
	raw, err := json.Marshal(series)
	if err != nil {
		return fmt.Errorf("encode chart series: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (c *redisChartCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, portscache.ChartGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis get chart generation: %w", err)
	}
	return gen, nil
}

// InvalidateAll bumps the generation. Entries of older generations expire with their TTL.
func (c *redisChartCache) InvalidateAll(ctx context.Context) error {
	if err := c.client.Incr(ctx, portscache.ChartGenerationKey).Err(); err != nil {
		return fmt.Errorf("redis incr chart generation: %w", err)
	}
	return nil
}
