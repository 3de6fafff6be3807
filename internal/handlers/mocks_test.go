package handlers_test

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portssvc "github.com/SscSPs/macro_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/macro_dashboard_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) UpdateExchangeRate(ctx context.Context, rateType string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateType, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock IndicatorService ---
type MockIndicatorService struct {
	mock.Mock
}

func (m *MockIndicatorService) ListIndicators(ctx context.Context) ([]domain.EconomicIndicator, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EconomicIndicator), args.Error(1)
}

func (m *MockIndicatorService) UpdateIndicator(ctx context.Context, key string, req dto.UpdateIndicatorRequest) (*domain.EconomicIndicator, error) {
	args := m.Called(ctx, key, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EconomicIndicator), args.Error(1)
}

var _ portssvc.IndicatorSvcFacade = (*MockIndicatorService)(nil)

// --- Mock ChartService ---
type MockChartService struct {
	mock.Mock
}

func (m *MockChartService) GetChartSeries(ctx context.Context, seriesName *string) (domain.ChartSeries, error) {
	args := m.Called(ctx, seriesName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.ChartSeries), args.Error(1)
}

func (m *MockChartService) AddChartPoint(ctx context.Context, req dto.CreateChartPointRequest) (*domain.ChartDataPoint, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartDataPoint), args.Error(1)
}

var _ portssvc.ChartSvcFacade = (*MockChartService)(nil)

// --- Mock MarketQuoteService ---
type MockMarketQuoteService struct {
	mock.Mock
}

func (m *MockMarketQuoteService) ListMarketQuotes(ctx context.Context) ([]domain.MarketQuote, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MarketQuote), args.Error(1)
}

func (m *MockMarketQuoteService) UpdateMarketQuote(ctx context.Context, symbol string, req dto.UpdateMarketQuoteRequest) (*domain.MarketQuote, error) {
	args := m.Called(ctx, symbol, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MarketQuote), args.Error(1)
}

var _ portssvc.MarketQuoteSvcFacade = (*MockMarketQuoteService)(nil)

// --- Mock NewsService ---
type MockNewsService struct {
	mock.Mock
}

func (m *MockNewsService) ListNews(ctx context.Context) ([]domain.NewsItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.NewsItem), args.Error(1)
}

func (m *MockNewsService) AddNews(ctx context.Context, req dto.CreateNewsRequest) (*domain.NewsItem, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NewsItem), args.Error(1)
}

var _ portssvc.NewsSvcFacade = (*MockNewsService)(nil)

func strPtr(s string) *string { return &s }
