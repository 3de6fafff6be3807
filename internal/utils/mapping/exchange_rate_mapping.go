package mapping

import (
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ID:        d.ID,
		Type:      d.Type,
		Buy:       d.Buy,
		Sell:      d.Sell,
		Trend:     string(d.Trend),
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ID:        m.ID,
		Type:      m.Type,
		Buy:       m.Buy,
		Sell:      m.Sell,
		Trend:     domain.Trend(m.Trend),
		UpdatedAt: m.UpdatedAt,
	}
}

// ToDomainExchangeRateSlice converts a slice of model rates.
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	ds := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeRate(m)
	}
	return ds
}
