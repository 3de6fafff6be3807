package jsonfile

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/apperrors"
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/macro_dashboard_app/internal/utils/mapping"
	"github.com/google/uuid"
)

type indicatorRepository struct {
	store *Store
}

var _ portsrepo.IndicatorRepositoryFacade = (*indicatorRepository)(nil)

func (r *indicatorRepository) ListIndicators(ctx context.Context) ([]domain.EconomicIndicator, error) {
	var indicators []domain.EconomicIndicator
	err := r.store.view(ctx, func(doc *Document) error {
		indicators = mapping.ToDomainIndicatorSlice(doc.Indicators)
		return nil
	})
	return indicators, err
}

func (r *indicatorRepository) CreateIndicator(ctx context.Context, indicator domain.EconomicIndicator) (*domain.EconomicIndicator, error) {
	err := r.store.update(ctx, func(doc *Document) error {
		if findIndicator(doc, indicator.Key) >= 0 {
			return apperrors.NewConflictError("indicator '" + indicator.Key + "' already exists")
		}
		if indicator.ID == "" {
			indicator.ID = uuid.NewString()
		}
		doc.Indicators = append(doc.Indicators, mapping.ToModelIndicator(indicator))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &indicator, nil
}

func (r *indicatorRepository) UpdateIndicator(ctx context.Context, key string, patch domain.EconomicIndicatorPatch) (*domain.EconomicIndicator, error) {
	var updated domain.EconomicIndicator
	err := r.store.update(ctx, func(doc *Document) error {
		idx := findIndicator(doc, key)
		if idx < 0 {
			return apperrors.NewNotFoundError("indicator '" + key + "' not found")
		}
		if patch.Key != nil && *patch.Key != key && findIndicator(doc, *patch.Key) >= 0 {
			return apperrors.NewConflictError("indicator '" + *patch.Key + "' already exists")
		}

		indicator := mapping.ToDomainIndicator(doc.Indicators[idx])
		patch.Apply(&indicator)
		doc.Indicators[idx] = mapping.ToModelIndicator(indicator)
		updated = indicator
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func findIndicator(doc *Document, key string) int {
	for i, ind := range doc.Indicators {
		if ind.Key == key {
			return i
		}
	}
	return -1
}
