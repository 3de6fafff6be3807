package jsonfile

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/macro_dashboard_app/internal/models"
	"github.com/SscSPs/macro_dashboard_app/internal/utils/mapping"
	"github.com/google/uuid"
)

type chartRepository struct {
	store *Store
}

var _ portsrepo.ChartRepositoryFacade = (*chartRepository)(nil)

func (r *chartRepository) ListChartPoints(ctx context.Context, seriesName *string) ([]domain.ChartDataPoint, error) {
	var points []domain.ChartDataPoint
	err := r.store.view(ctx, func(doc *Document) error {
		if seriesName == nil {
			points = mapping.ToDomainChartPointSlice(doc.Charts)
			return nil
		}
		filtered := make([]models.ChartDataPoint, 0)
		for _, p := range doc.Charts {
			if p.SeriesName == *seriesName {
				filtered = append(filtered, p)
			}
		}
		points = mapping.ToDomainChartPointSlice(filtered)
		return nil
	})
	return points, err
}

func (r *chartRepository) AddChartPoint(ctx context.Context, point domain.ChartDataPoint) (*domain.ChartDataPoint, error) {
	err := r.store.update(ctx, func(doc *Document) error {
		if point.ID == "" {
			point.ID = uuid.NewString()
		}
		doc.Charts = append(doc.Charts, mapping.ToModelChartPoint(point))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &point, nil
}
