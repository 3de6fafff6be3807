package jsonfile

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/apperrors"
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/macro_dashboard_app/internal/utils/mapping"
	"github.com/google/uuid"
)

type exchangeRateRepository struct {
	store *Store
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*exchangeRateRepository)(nil)

func (r *exchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	var rates []domain.ExchangeRate
	err := r.store.view(ctx, func(doc *Document) error {
		rates = mapping.ToDomainExchangeRateSlice(doc.ExchangeRates)
		return nil
	})
	return rates, err
}

func (r *exchangeRateRepository) CreateExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	var created domain.ExchangeRate
	err := r.store.update(ctx, func(doc *Document) error {
		if findExchangeRate(doc, rate.Type) >= 0 {
			return apperrors.NewConflictError("exchange rate type '" + rate.Type + "' already exists")
		}
		if rate.ID == "" {
			rate.ID = uuid.NewString()
		}
		if rate.UpdatedAt.IsZero() {
			rate.UpdatedAt = r.store.now().UTC()
		}
		doc.ExchangeRates = append(doc.ExchangeRates, mapping.ToModelExchangeRate(rate))
		created = rate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *exchangeRateRepository) UpdateExchangeRate(ctx context.Context, rateType string, patch domain.ExchangeRatePatch) (*domain.ExchangeRate, error) {
	var updated domain.ExchangeRate
	err := r.store.update(ctx, func(doc *Document) error {
		idx := findExchangeRate(doc, rateType)
		if idx < 0 {
			return apperrors.NewNotFoundError("exchange rate '" + rateType + "' not found")
		}
		if patch.Type != nil && *patch.Type != rateType && findExchangeRate(doc, *patch.Type) >= 0 {
			return apperrors.NewConflictError("exchange rate type '" + *patch.Type + "' already exists")
		}

		rate := mapping.ToDomainExchangeRate(doc.ExchangeRates[idx])
		previous := rate.UpdatedAt
		now := r.store.now().UTC()
		if now.Before(previous) {
			now = previous
		}
		patch.Apply(&rate, now)
		doc.ExchangeRates[idx] = mapping.ToModelExchangeRate(rate)
		updated = rate
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func findExchangeRate(doc *Document, rateType string) int {
	for i, r := range doc.ExchangeRates {
		if r.Type == rateType {
			return i
		}
	}
	return -1
}
