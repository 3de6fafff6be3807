package repositories

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
)

// MarketQuoteReader defines read operations for market quotes
type MarketQuoteReader interface {
	ListMarketQuotes(ctx context.Context) ([]domain.MarketQuote, error)
}

// MarketQuoteWriter defines write operations for market quotes
type MarketQuoteWriter interface {
	// CreateMarketQuote appends a quote. A taken Symbol yields apperrors.ErrDuplicate.
	CreateMarketQuote(ctx context.Context, quote domain.MarketQuote) (*domain.MarketQuote, error)

	// UpdateMarketQuote merges patch into the quote identified by symbol.
	UpdateMarketQuote(ctx context.Context, symbol string, patch domain.MarketQuotePatch) (*domain.MarketQuote, error)
}

// MarketQuoteRepositoryFacade combines all market quote-related repository interfaces
type MarketQuoteRepositoryFacade interface {
	MarketQuoteReader
	MarketQuoteWriter
}
