package services

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/dto"
)

// ChartReaderSvc defines read operations for chart data
type ChartReaderSvc interface {
	// GetChartSeries returns the points grouped by series name. A nil seriesName
	// returns every series.
	GetChartSeries(ctx context.Context, seriesName *string) (domain.ChartSeries, error)
}

// ChartWriterSvc defines write operations for chart data
type ChartWriterSvc interface {
	// AddChartPoint appends one point to a series.
	AddChartPoint(ctx context.Context, req dto.CreateChartPointRequest) (*domain.ChartDataPoint, error)
}

// ChartSvcFacade combines all chart-related service interfaces
type ChartSvcFacade interface {
	ChartReaderSvc
	ChartWriterSvc
}
