package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	ExchangeRate ExchangeRateSvcFacade
	Indicator    IndicatorSvcFacade
	Chart        ChartSvcFacade
	MarketQuote  MarketQuoteSvcFacade
	News         NewsSvcFacade
	StaticData   StaticDataService
}

// StaticDataService populates empty collections with the default dashboard data.
type StaticDataService interface {
	// InitializeStaticData seeds each collection independently, and only when it is empty.
	InitializeStaticData(ctx context.Context) error
}
