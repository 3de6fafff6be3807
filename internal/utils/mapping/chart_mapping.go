package mapping

import (
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/models"
)

func ToModelChartPoint(d domain.ChartDataPoint) models.ChartDataPoint {
	return models.ChartDataPoint{
		ID:         d.ID,
		SeriesName: d.SeriesName,
		Time:       d.Time,
		Value:      d.Value,
	}
}

func ToDomainChartPoint(m models.ChartDataPoint) domain.ChartDataPoint {
	return domain.ChartDataPoint{
		ID:         m.ID,
		SeriesName: m.SeriesName,
		Time:       m.Time,
		Value:      m.Value,
	}
}

func ToDomainChartPointSlice(ms []models.ChartDataPoint) []domain.ChartDataPoint {
	ds := make([]domain.ChartDataPoint, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainChartPoint(m)
	}
	return ds
}
