package services_test

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portscache "github.com/SscSPs/macro_dashboard_app/internal/core/ports/cache"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) CreateExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) UpdateExchangeRate(ctx context.Context, rateType string, patch domain.ExchangeRatePatch) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateType, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*MockExchangeRateRepository)(nil)

// --- Mock IndicatorRepository ---
type MockIndicatorRepository struct {
	mock.Mock
}

func (m *MockIndicatorRepository) ListIndicators(ctx context.Context) ([]domain.EconomicIndicator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EconomicIndicator), args.Error(1)
}

func (m *MockIndicatorRepository) CreateIndicator(ctx context.Context, indicator domain.EconomicIndicator) (*domain.EconomicIndicator, error) {
	args := m.Called(ctx, indicator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EconomicIndicator), args.Error(1)
}

func (m *MockIndicatorRepository) UpdateIndicator(ctx context.Context, key string, patch domain.EconomicIndicatorPatch) (*domain.EconomicIndicator, error) {
	args := m.Called(ctx, key, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EconomicIndicator), args.Error(1)
}

var _ portsrepo.IndicatorRepositoryFacade = (*MockIndicatorRepository)(nil)

// --- Mock ChartRepository ---
type MockChartRepository struct {
	mock.Mock
}

func (m *MockChartRepository) ListChartPoints(ctx context.Context, seriesName *string) ([]domain.ChartDataPoint, error) {
	args := m.Called(ctx, seriesName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartDataPoint), args.Error(1)
}

func (m *MockChartRepository) AddChartPoint(ctx context.Context, point domain.ChartDataPoint) (*domain.ChartDataPoint, error) {
	args := m.Called(ctx, point)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartDataPoint), args.Error(1)
}

var _ portsrepo.ChartRepositoryFacade = (*MockChartRepository)(nil)

// --- Mock MarketQuoteRepository ---
type MockMarketQuoteRepository struct {
	mock.Mock
}

func (m *MockMarketQuoteRepository) ListMarketQuotes(ctx context.Context) ([]domain.MarketQuote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketQuote), args.Error(1)
}

func (m *MockMarketQuoteRepository) CreateMarketQuote(ctx context.Context, quote domain.MarketQuote) (*domain.MarketQuote, error) {
	args := m.Called(ctx, quote)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketQuote), args.Error(1)
}

func (m *MockMarketQuoteRepository) UpdateMarketQuote(ctx context.Context, symbol string, patch domain.MarketQuotePatch) (*domain.MarketQuote, error) {
	args := m.Called(ctx, symbol, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketQuote), args.Error(1)
}

var _ portsrepo.MarketQuoteRepositoryFacade = (*MockMarketQuoteRepository)(nil)

// --- Mock NewsRepository ---
type MockNewsRepository struct {
	mock.Mock
}

func (m *MockNewsRepository) ListNews(ctx context.Context) ([]domain.NewsItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NewsItem), args.Error(1)
}

func (m *MockNewsRepository) AddNews(ctx context.Context, item domain.NewsItem) (*domain.NewsItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsItem), args.Error(1)
}

var _ portsrepo.NewsRepositoryFacade = (*MockNewsRepository)(nil)

// --- Mock ChartCache ---
type MockChartCache struct {
	mock.Mock
}

func (m *MockChartCache) Generation(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockChartCache) Get(ctx context.Context, key string) (domain.ChartSeries, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(domain.ChartSeries), args.Bool(1), args.Error(2)
}

func (m *MockChartCache) Set(ctx context.Context, key string, series domain.ChartSeries) error {
	args := m.Called(ctx, key, series)
	return args.Error(0)
}

func (m *MockChartCache) InvalidateAll(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portscache.ChartCache = (*MockChartCache)(nil)
