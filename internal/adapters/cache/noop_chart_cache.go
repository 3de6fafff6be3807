package cache

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portscache "github.com/SscSPs/macro_dashboard_app/internal/core/ports/cache"
)

type noopChartCache struct{}

// NewNoopChartCache is used when no Redis URL is configured. Every Get misses.
func NewNoopChartCache() portscache.ChartCache {
	return noopChartCache{}
}

func (noopChartCache) Generation(context.Context) (int64, error) { return 0, nil }

func (noopChartCache) Get(context.Context, string) (domain.ChartSeries, bool, error) {
	return nil, false, nil
}

func (noopChartCache) Set(context.Context, string, domain.ChartSeries) error { return nil }

func (noopChartCache) InvalidateAll(context.Context) error { return nil }
