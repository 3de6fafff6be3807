package jsonfile

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/apperrors"
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/macro_dashboard_app/internal/utils/mapping"
	"github.com/google/uuid"
)

type marketQuoteRepository struct {
	store *Store
}

var _ portsrepo.MarketQuoteRepositoryFacade = (*marketQuoteRepository)(nil)

func (r *marketQuoteRepository) ListMarketQuotes(ctx context.Context) ([]domain.MarketQuote, error) {
	var quotes []domain.MarketQuote
	err := r.store.view(ctx, func(doc *Document) error {
		quotes = mapping.ToDomainMarketQuoteSlice(doc.Market)
		return nil
	})
	return quotes, err
}

func (r *marketQuoteRepository) CreateMarketQuote(ctx context.Context, quote domain.MarketQuote) (*domain.MarketQuote, error) {
	err := r.store.update(ctx, func(doc *Document) error {
		if findMarketQuote(doc, quote.Symbol) >= 0 {
			return apperrors.NewConflictError("market symbol '" + quote.Symbol + "' already exists")
		}
		if quote.ID == "" {
			quote.ID = uuid.NewString()
		}
		doc.Market = append(doc.Market, mapping.ToModelMarketQuote(quote))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *marketQuoteRepository) UpdateMarketQuote(ctx context.Context, symbol string, patch domain.MarketQuotePatch) (*domain.MarketQuote, error) {
	var updated domain.MarketQuote
	err := r.store.update(ctx, func(doc *Document) error {
		idx := findMarketQuote(doc, symbol)
		if idx < 0 {
			return apperrors.NewNotFoundError("market symbol '" + symbol + "' not found")
		}
		if patch.Symbol != nil && *patch.Symbol != symbol && findMarketQuote(doc, *patch.Symbol) >= 0 {
			return apperrors.NewConflictError("market symbol '" + *patch.Symbol + "' already exists")
		}

		quote := mapping.ToDomainMarketQuote(doc.Market[idx])
		patch.Apply(&quote)
		doc.Market[idx] = mapping.ToModelMarketQuote(quote)
		updated = quote
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func findMarketQuote(doc *Document, symbol string) int {
	for i, q := range doc.Market {
		if q.Symbol == symbol {
			return i
		}
	}
	return -1
}
