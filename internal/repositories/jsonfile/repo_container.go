package jsonfile

import (
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
)

// NewRepositoryProvider exposes every collection of the data file through the
// repository interfaces.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: &exchangeRateRepository{store: store},
		IndicatorRepo:    &indicatorRepository{store: store},
		ChartRepo:        &chartRepository{store: store},
		MarketQuoteRepo:  &marketQuoteRepository{store: store},
		NewsRepo:         &newsRepository{store: store},
	}
}
