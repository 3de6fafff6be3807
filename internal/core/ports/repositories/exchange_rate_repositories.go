package repositories

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// ListExchangeRates returns every rate in storage order.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// CreateExchangeRate appends a rate. A taken Type yields apperrors.ErrDuplicate.
	CreateExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error)

	// UpdateExchangeRate merges patch into the rate identified by rateType and refreshes
	// UpdatedAt. An unknown rateType yields apperrors.ErrNotFound.
	UpdateExchangeRate(ctx context.Context, rateType string, patch domain.ExchangeRatePatch) (*domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
