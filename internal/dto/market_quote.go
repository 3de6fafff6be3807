package dto

import (
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/utils"
	"github.com/shopspring/decimal"
)

// UpdateMarketQuoteRequest is a partial market quote.
type UpdateMarketQuoteRequest struct {
	Symbol        *string          `json:"symbol" binding:"omitempty,min=1,max=64"`
	Price         *decimal.Decimal `json:"price"`
	ChangePercent *decimal.Decimal `json:"changePercent"`
}

// ToPatch converts the request to a domain patch.
func (r UpdateMarketQuoteRequest) ToPatch() domain.MarketQuotePatch {
	return domain.MarketQuotePatch{
		Symbol:        r.Symbol,
		Price:         r.Price,
		ChangePercent: r.ChangePercent,
	}
}

// MarketQuoteResponse mirrors domain.MarketQuote with fixed-precision decimals.
type MarketQuoteResponse struct {
	ID            string `json:"id"`
	Symbol        string `json:"symbol"`
	Price         string `json:"price"`
	ChangePercent string `json:"changePercent"`
}

// ToMarketQuoteResponse converts a domain.MarketQuote to MarketQuoteResponse DTO
func ToMarketQuoteResponse(q *domain.MarketQuote) MarketQuoteResponse {
	return MarketQuoteResponse{
		ID:            q.ID,
		Symbol:        q.Symbol,
		Price:         utils.FormatWithPrecision(q.Price, PricePrecision),
		ChangePercent: utils.FormatWithPrecision(q.ChangePercent, PercentPrecision),
	}
}

// ToListMarketQuoteResponse converts quotes to their DTOs.
func ToListMarketQuoteResponse(quotes []domain.MarketQuote) []MarketQuoteResponse {
	res := make([]MarketQuoteResponse, len(quotes))
	for i := range quotes {
		res[i] = ToMarketQuoteResponse(&quotes[i])
	}
	return res
}
