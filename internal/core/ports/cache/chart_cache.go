package cache

import (
	"context"
	"strconv"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
)

// ChartKeyPrefix namespaces every aggregated chart entry.
const ChartKeyPrefix = "dashboard:charts:"

// ChartGenerationKey holds the counter bumped by every chart write.
const ChartGenerationKey = ChartKeyPrefix + "gen"

// ChartKey returns the cache key for a series filter within a generation. A nil
// filter means all series.
func ChartKey(generation int64, seriesName *string) string {
	prefix := ChartKeyPrefix + strconv.FormatInt(generation, 10) + ":"
	if seriesName == nil {
		return prefix + "all"
	}
	return prefix + "series:" + *seriesName
}

// ChartCache stores aggregated chart series keyed by generation and filter.
// Implementations may drop entries at any time; callers treat every error as a miss.
//
// Readers take the generation before listing points and write under that generation.
// A write that races with an insert lands on a key nobody reads any more.
type ChartCache interface {
	// Generation returns the current chart generation.
	Generation(ctx context.Context) (int64, error)
	// Get returns the cached series for key and whether it was present.
	Get(ctx context.Context, key string) (domain.ChartSeries, bool, error)
	Set(ctx context.Context, key string, series domain.ChartSeries) error
	// InvalidateAll moves to a new generation, orphaning every cached entry.
	InvalidateAll(ctx context.Context) error
}
