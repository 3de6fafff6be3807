package services

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// ListExchangeRates retrieves all exchange rates in storage order.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error)

	// UpdateExchangeRate applies a partial update to the rate identified by rateType.
	UpdateExchangeRate(ctx context.Context, rateType string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
