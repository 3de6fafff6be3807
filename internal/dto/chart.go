package dto

import (
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateChartPointRequest defines a new chart data point. Time must be YYYY-MM-DD.
type CreateChartPointRequest struct {
	SeriesName string           `json:"seriesName" binding:"required,max=128"`
	Time       string           `json:"time" binding:"required,isodate"`
	Value      *decimal.Decimal `json:"value" binding:"required"`
}

// ChartPointResponse is the stored form of a chart point.
type ChartPointResponse struct {
	ID         string `json:"id"`
	SeriesName string `json:"seriesName"`
	Time       string `json:"time"`
	Value      string `json:"value"`
}

// ChartDataResponse maps a series name to its {time, value} points.
type ChartDataResponse map[string][]domain.SeriesPoint

// ToChartPointResponse converts a domain.ChartDataPoint to ChartPointResponse DTO
func ToChartPointResponse(p *domain.ChartDataPoint) ChartPointResponse {
	return ChartPointResponse{
		ID:         p.ID,
		SeriesName: p.SeriesName,
		Time:       p.Time,
		Value:      utils.FormatWithPrecision(p.Value, PricePrecision),
	}
}

// ToChartDataResponse converts aggregated series to the response mapping. An empty
// store renders as {} rather than null.
func ToChartDataResponse(series domain.ChartSeries) ChartDataResponse {
	res := make(ChartDataResponse, len(series))
	for name, points := range series {
		res[name] = points
	}
	return res
}
