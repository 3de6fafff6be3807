package repositories

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
)

// ChartReader defines read operations for chart data points
type ChartReader interface {
	// ListChartPoints returns points in insertion order. A nil seriesName returns
	// every series.
	ListChartPoints(ctx context.Context, seriesName *string) ([]domain.ChartDataPoint, error)
}

// ChartWriter defines write operations for chart data points
type ChartWriter interface {
	// AddChartPoint always appends, even when (SeriesName, Time) already exists.
	AddChartPoint(ctx context.Context, point domain.ChartDataPoint) (*domain.ChartDataPoint, error)
}

// ChartRepositoryFacade combines all chart-related repository interfaces
type ChartRepositoryFacade interface {
	ChartReader
	ChartWriter
}
