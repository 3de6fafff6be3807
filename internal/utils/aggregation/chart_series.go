package aggregation

import (
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
)

// AggregateChartSeries groups flat chart rows by series name.
// Points keep their input order within a series; nothing is re-sorted and series
// absent from the input do not appear in the result. Decimal values are converted
// to float64 here and nowhere else.
func AggregateChartSeries(points []domain.ChartDataPoint) domain.ChartSeries {
	series := make(domain.ChartSeries)
	for _, p := range points {
		series[p.SeriesName] = append(series[p.SeriesName], domain.SeriesPoint{
			Time:  p.Time,
			Value: p.Value.InexactFloat64(),
		})
	}
	return series
}

// SeriesNames returns the keys of series in first-seen order of points.
func SeriesNames(points []domain.ChartDataPoint) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, p := range points {
		if _, ok := seen[p.SeriesName]; ok {
			continue
		}
		seen[p.SeriesName] = struct{}{}
		names = append(names, p.SeriesName)
	}
	return names
}
