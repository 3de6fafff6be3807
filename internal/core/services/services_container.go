package services

import (
	portscache "github.com/SscSPs/macro_dashboard_app/internal/core/ports/cache"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/macro_dashboard_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// chartCache is required; pass a no-op cache to disable chart caching.
func NewServiceContainer(repos portsrepo.RepositoryProvider, chartCache portscache.ChartCache, seedOpts ...StaticDataOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo),
		Indicator:    NewIndicatorService(repos.IndicatorRepo),
		Chart:        NewChartService(repos.ChartRepo, chartCache),
		MarketQuote:  NewMarketQuoteService(repos.MarketQuoteRepo),
		News:         NewNewsService(repos.NewsRepo),
		StaticData:   NewStaticDataService(repos, chartCache, seedOpts...),
	}
}
