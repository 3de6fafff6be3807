package services_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/macro_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/macro_dashboard_app/internal/core/services"
	"github.com/SscSPs/macro_dashboard_app/internal/repositories/jsonfile"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type StaticDataServiceTestSuite struct {
	suite.Suite
	ctx    context.Context
	repos  portsrepo.RepositoryProvider
	cache  *MockChartCache
	seeder portssvc.StaticDataService
	now    time.Time
}

func (suite *StaticDataServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2026, 3, 15, 18, 30, 0, 0, time.UTC)

	store, err := jsonfile.NewStore(filepath.Join(suite.T().TempDir(), "dashboard.json"))
	suite.Require().NoError(err)
	suite.repos = jsonfile.NewRepositoryProvider(store)

	suite.cache = new(MockChartCache)
	suite.cache.On("InvalidateAll", mock.Anything).Return(nil).Maybe()

	calls := 0
	suite.seeder = services.NewStaticDataService(suite.repos, suite.cache,
		services.WithSeedClock(func() time.Time { return suite.now }),
		services.WithSeedRandom(func() float64 {
			calls++
			return float64(calls%100) / 100
		}),
	)
}

type snapshot struct {
	rates      []domain.ExchangeRate
	indicators []domain.EconomicIndicator
	charts     []domain.ChartDataPoint
	quotes     []domain.MarketQuote
	news       []domain.NewsItem
}

func (suite *StaticDataServiceTestSuite) snapshot() snapshot {
	var s snapshot
	var err error
	s.rates, err = suite.repos.ExchangeRateRepo.ListExchangeRates(suite.ctx)
	suite.Require().NoError(err)
	s.indicators, err = suite.repos.IndicatorRepo.ListIndicators(suite.ctx)
	suite.Require().NoError(err)
	s.charts, err = suite.repos.ChartRepo.ListChartPoints(suite.ctx, nil)
	suite.Require().NoError(err)
	s.quotes, err = suite.repos.MarketQuoteRepo.ListMarketQuotes(suite.ctx)
	suite.Require().NoError(err)
	s.news, err = suite.repos.NewsRepo.ListNews(suite.ctx)
	suite.Require().NoError(err)
	return s
}

func (suite *StaticDataServiceTestSuite) TestSeedPopulatesEmptyStore() {
	suite.Require().NoError(suite.seeder.InitializeStaticData(suite.ctx))
	s := suite.snapshot()

	suite.Require().Len(s.rates, 2)
	suite.Equal("official", s.rates[0].Type)
	suite.True(s.rates[0].Buy.Equal(decimal.RequireFromString("850")))
	suite.True(s.rates[0].Sell.Equal(decimal.RequireFromString("900")))
	suite.Equal(domain.TrendStable, s.rates[0].Trend)
	suite.Equal("blue", s.rates[1].Type)
	suite.Equal(domain.TrendUp, s.rates[1].Trend)

	suite.Require().Len(s.indicators, 5)
	keys := make([]string, 0, len(s.indicators))
	for _, ind := range s.indicators {
		keys = append(keys, ind.Key)
	}
	suite.Equal([]string{"tna", "gdp", "reserves", "public_debt", "external_debt"}, keys)
	suite.Require().NotNil(s.indicators[2].Description)
	suite.Equal("↓ 23,15%", *s.indicators[2].Description)

	suite.Require().Len(s.quotes, 2)
	suite.Equal("IDA MERVAL", s.quotes[0].Symbol)
	suite.True(s.quotes[1].ChangePercent.Equal(decimal.RequireFromString("2.80")))

	suite.Require().Len(s.news, 2)
	suite.Equal("Oficial", s.news[0].Source)
	suite.Equal("BCRA", s.news[1].Source)
}

func (suite *StaticDataServiceTestSuite) TestSeedChartSeries() {
	suite.Require().NoError(suite.seeder.InitializeStaticData(suite.ctx))
	s := suite.snapshot()
	suite.cache.AssertCalled(suite.T(), "InvalidateAll", suite.ctx)

	suite.Require().Len(s.charts, len(services.ChartSeedSeries)*services.ChartSeedDays)

	low, high := decimal.NewFromInt(50), decimal.NewFromInt(150)
	perSeries := map[string][]string{}
	for _, p := range s.charts {
		perSeries[p.SeriesName] = append(perSeries[p.SeriesName], p.Time)
		suite.True(p.Value.GreaterThanOrEqual(low) && p.Value.LessThanOrEqual(high), "value %s out of range", p.Value)
		suite.True(p.Value.Equal(p.Value.Round(2)), "value %s has more than two decimals", p.Value)
	}

	suite.Len(perSeries, 8)
	for _, name := range services.ChartSeedSeries {
		dates := perSeries[name]
		suite.Require().Len(dates, services.ChartSeedDays, name)
		suite.Equal("2026-02-13", dates[0], name)
		suite.Equal("2026-03-15", dates[len(dates)-1], name)
	}
}

func (suite *StaticDataServiceTestSuite) TestSeedTwiceIsIdempotent() {
	suite.Require().NoError(suite.seeder.InitializeStaticData(suite.ctx))
	first := suite.snapshot()

	suite.now = suite.now.Add(48 * time.Hour)
	suite.Require().NoError(suite.seeder.InitializeStaticData(suite.ctx))
	second := suite.snapshot()

	suite.Equal(first, second)
	suite.cache.AssertNumberOfCalls(suite.T(), "InvalidateAll", 1)
}

func (suite *StaticDataServiceTestSuite) TestSeedKeepsCacheWhenChartsExist() {
	_, err := suite.repos.ChartRepo.AddChartPoint(suite.ctx, domain.ChartDataPoint{
		SeriesName: "EMAE", Time: "2026-03-01", Value: decimal.RequireFromString("101"),
	})
	suite.Require().NoError(err)

	suite.Require().NoError(suite.seeder.InitializeStaticData(suite.ctx))

	suite.Len(suite.snapshot().charts, 1)
	suite.cache.AssertNotCalled(suite.T(), "InvalidateAll", mock.Anything)
}

func (suite *StaticDataServiceTestSuite) TestSeedFillsOnlyEmptyCollections() {
	custom := domain.ExchangeRate{
		Type: "mep", Buy: decimal.RequireFromString("1000"), Sell: decimal.RequireFromString("1010"), Trend: domain.TrendDown,
	}
	_, err := suite.repos.ExchangeRateRepo.CreateExchangeRate(suite.ctx, custom)
	suite.Require().NoError(err)
	before := suite.snapshot().rates

	suite.Require().NoError(suite.seeder.InitializeStaticData(suite.ctx))
	s := suite.snapshot()

	suite.Equal(before, s.rates)
	suite.Len(s.indicators, 5)
	suite.Len(s.quotes, 2)
	suite.Len(s.charts, 8*31)
	suite.Len(s.news, 2)
}

func TestStaticDataService(t *testing.T) {
	suite.Run(t, new(StaticDataServiceTestSuite))
}
