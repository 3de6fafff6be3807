package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// Exactly one backend (postgres or the JSON data file) fills it per process.
type RepositoryProvider struct {
	ExchangeRateRepo ExchangeRateRepositoryFacade
	IndicatorRepo    IndicatorRepositoryFacade
	ChartRepo        ChartRepositoryFacade
	MarketQuoteRepo  MarketQuoteRepositoryFacade
	NewsRepo         NewsRepositoryFacade
}
