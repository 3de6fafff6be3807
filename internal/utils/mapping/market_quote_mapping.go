package mapping

import (
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/models"
)

// ToModelMarketQuote converts a domain MarketQuote to its model
func ToModelMarketQuote(d domain.MarketQuote) models.MarketQuote {
	return models.MarketQuote{
		ID:            d.ID,
		Symbol:        d.Symbol,
		Price:         d.Price,
		ChangePercent: d.ChangePercent,
	}
}

// ToDomainMarketQuote converts a model MarketQuote to its domain form
func ToDomainMarketQuote(m models.MarketQuote) domain.MarketQuote {
	return domain.MarketQuote{
		ID:            m.ID,
		Symbol:        m.Symbol,
		Price:         m.Price,
		ChangePercent: m.ChangePercent,
	}
}

// ToDomainMarketQuoteSlice converts a slice of model quotes.
func ToDomainMarketQuoteSlice(ms []models.MarketQuote) []domain.MarketQuote {
	ds := make([]domain.MarketQuote, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainMarketQuote(m)
	}
	return ds
}
