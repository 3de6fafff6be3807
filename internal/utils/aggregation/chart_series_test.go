package aggregation

import (
	"testing"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func point(series, day, value string) domain.ChartDataPoint {
	return domain.ChartDataPoint{SeriesName: series, Time: day, Value: decimal.RequireFromString(value)}
}

func TestAggregateChartSeries(t *testing.T) {
	tests := []struct {
		name   string
		points []domain.ChartDataPoint
		want   domain.ChartSeries
	}{
		{
			name: "single series converts values to numbers",
			points: []domain.ChartDataPoint{
				point("Inflación", "2026-01-01", "52.30"),
				point("Inflación", "2026-01-02", "53.10"),
			},
			want: domain.ChartSeries{
				"Inflación": {{Time: "2026-01-01", Value: 52.3}, {Time: "2026-01-02", Value: 53.1}},
			},
		},
		{
			name: "interleaved series keep their own order",
			points: []domain.ChartDataPoint{
				point("EMAE", "2026-01-02", "100"),
				point("Salarios", "2026-01-01", "75.5"),
				point("EMAE", "2026-01-01", "99.25"),
			},
			want: domain.ChartSeries{
				"EMAE":     {{Time: "2026-01-02", Value: 100}, {Time: "2026-01-01", Value: 99.25}},
				"Salarios": {{Time: "2026-01-01", Value: 75.5}},
			},
		},
		{
			name: "duplicate points are both kept",
			points: []domain.ChartDataPoint{
				point("EMAE", "2026-01-01", "1"),
				point("EMAE", "2026-01-01", "2"),
			},
			want: domain.ChartSeries{
				"EMAE": {{Time: "2026-01-01", Value: 1}, {Time: "2026-01-01", Value: 2}},
			},
		},
		{
			name:   "empty input yields empty mapping",
			points: nil,
			want:   domain.ChartSeries{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateChartSeries(tt.points))
		})
	}
}

func TestSeriesNames(t *testing.T) {
	points := []domain.ChartDataPoint{
		point("B", "2026-01-01", "1"),
		point("A", "2026-01-01", "1"),
		point("B", "2026-01-02", "1"),
	}
	assert.Equal(t, []string{"B", "A"}, SeriesNames(points))
	assert.Empty(t, SeriesNames(nil))
}
