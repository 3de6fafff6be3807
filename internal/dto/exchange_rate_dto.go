package dto

import (
	"time"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
type CreateExchangeRateRequest struct {
	Type  string           `json:"type" binding:"required,max=64"`
	Buy   *decimal.Decimal `json:"buy" binding:"required"`
	Sell  *decimal.Decimal `json:"sell" binding:"required"`
	Trend string           `json:"trend" binding:"omitempty,max=32"` // defaults to "stable"
}

// UpdateExchangeRateRequest is a partial exchange rate. Absent fields stay unchanged.
type UpdateExchangeRateRequest struct {
	Type  *string          `json:"type" binding:"omitempty,min=1,max=64"`
	Buy   *decimal.Decimal `json:"buy"`
	Sell  *decimal.Decimal `json:"sell"`
	Trend *string          `json:"trend" binding:"omitempty,max=32"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateExchangeRateRequest) ToPatch() domain.ExchangeRatePatch {
	patch := domain.ExchangeRatePatch{
		Type: r.Type,
		Buy:  r.Buy,
		Sell: r.Sell,
	}
	if r.Trend != nil {
		trend := domain.Trend(*r.Trend)
		patch.Trend = &trend
	}
	return patch
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Buy       string    `json:"buy"`
	Sell      string    `json:"sell"`
	Trend     string    `json:"trend"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:        rate.ID,
		Type:      rate.Type,
		Buy:       utils.FormatWithPrecision(rate.Buy, PricePrecision),
		Sell:      utils.FormatWithPrecision(rate.Sell, PricePrecision),
		Trend:     string(rate.Trend),
		UpdatedAt: rate.UpdatedAt,
	}
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to a slice of ExchangeRateResponse DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i := range rates {
		responses[i] = ToExchangeRateResponse(&rates[i])
	}
	return responses
}
