package services

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/dto"
)

type MarketQuoteReaderSvc interface {
	ListMarketQuotes(ctx context.Context) ([]domain.MarketQuote, error)
}

type MarketQuoteWriterSvc interface {
	UpdateMarketQuote(ctx context.Context, symbol string, req dto.UpdateMarketQuoteRequest) (*domain.MarketQuote, error)
}

// MarketQuoteSvcFacade combines all market quote-related service interfaces
type MarketQuoteSvcFacade interface {
	MarketQuoteReaderSvc
	MarketQuoteWriterSvc
}
