package pgsql

import (
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		IndicatorRepo:    newPgxIndicatorRepository(dbPool),
		ChartRepo:        newPgxChartRepository(dbPool),
		MarketQuoteRepo:  newPgxMarketQuoteRepository(dbPool),
		NewsRepo:         newPgxNewsRepository(dbPool),
	}
}
