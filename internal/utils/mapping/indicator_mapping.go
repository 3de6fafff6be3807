package mapping

import (
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/models"
)

// ToModelIndicator converts a domain EconomicIndicator to its model
func ToModelIndicator(d domain.EconomicIndicator) models.EconomicIndicator {
	return models.EconomicIndicator{
		ID:          d.ID,
		Key:         d.Key,
		Label:       d.Label,
		Value:       d.Value,
		Category:    string(d.Category),
		Trend:       d.Trend,
		Description: d.Description,
	}
}

// ToDomainIndicator converts a model EconomicIndicator to its domain form
func ToDomainIndicator(m models.EconomicIndicator) domain.EconomicIndicator {
	return domain.EconomicIndicator{
		ID:          m.ID,
		Key:         m.Key,
		Label:       m.Label,
		Value:       m.Value,
		Category:    domain.IndicatorCategory(m.Category),
		Trend:       m.Trend,
		Description: m.Description,
	}
}

// ToDomainIndicatorSlice converts a slice of model indicators.
func ToDomainIndicatorSlice(ms []models.EconomicIndicator) []domain.EconomicIndicator {
	ds := make([]domain.EconomicIndicator, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainIndicator(m)
	}
	return ds
}
