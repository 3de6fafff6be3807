package services

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portscache "github.com/SscSPs/macro_dashboard_app/internal/core/ports/cache"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/macro_dashboard_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// ChartSeedSeries are the series created on an empty chart collection.
var ChartSeedSeries = []string{
	"Alquileres", "Salarios", "Aprobación", "Inflación",
	"Canasta Básica", "EMAE", "Desocupación", "Supermercados",
}

// ChartSeedDays is the number of daily points per seeded series, ending today.
const ChartSeedDays = 31

func strPtr(s string) *string { return &s }

func defaultExchangeRates() []domain.ExchangeRate {
	return []domain.ExchangeRate{
		{Type: "official", Buy: decimal.RequireFromString("850.00"), Sell: decimal.RequireFromString("900.00"), Trend: domain.TrendStable},
		{Type: "blue", Buy: decimal.RequireFromString("1100.00"), Sell: decimal.RequireFromString("1150.00"), Trend: domain.TrendUp},
	}
}

func defaultIndicators() []domain.EconomicIndicator {
	return []domain.EconomicIndicator{
		{Key: "tna", Label: "Tasa Nominal Anual", Value: "10%", Category: domain.CategoryCentralBank},
		{Key: "gdp", Label: "PBI Anual", Value: "$193.567.008 Millones", Category: domain.CategoryCentralBank},
		{
			Key: "reserves", Label: "Reservas Internacionales", Value: "US$147,289 Millones",
			Category: domain.CategoryCentralBank, Trend: strPtr(string(domain.TrendDown)), Description: strPtr("↓ 23,15%"),
		},
		{Key: "public_debt", Label: "Deuda Pública", Value: "$1.144 Mil Millones", Category: domain.CategoryDebt, Description: strPtr("0,59% del PBI")},
		{Key: "external_debt", Label: "Deuda Externa", Value: "$0,00", Category: domain.CategoryDebt},
	}
}

func defaultMarketQuotes() []domain.MarketQuote {
	return []domain.MarketQuote{
		{Symbol: "IDA MERVAL", Price: decimal.RequireFromString("83983.17"), ChangePercent: decimal.RequireFromString("0.41")},
		{Symbol: "JOYERIA", Price: decimal.RequireFromString("171628.89"), ChangePercent: decimal.RequireFromString("2.80")},
	}
}

func defaultNews(now time.Time) []domain.NewsItem {
	return []domain.NewsItem{
		{
			Title:       "Nuevo anuncio económico",
			Content:     "El gobierno anuncia nuevas medidas para estabilizar el mercado cambiario.",
			Source:      "Oficial",
			PublishedAt: now,
		},
		{
			Title:       "Actualización de reservas",
			Content:     "El Banco Central informa un aumento en las reservas de moneda extranjera.",
			Source:      "BCRA",
			PublishedAt: now,
		},
	}
}

// StaticDataOption configures the seeder.
type StaticDataOption func(*staticDataService)

// WithSeedClock overrides the clock used for chart dates and news timestamps.
func WithSeedClock(now func() time.Time) StaticDataOption {
	return func(s *staticDataService) { s.now = now }
}

// WithSeedRandom overrides the source of chart values. f must return values in [0,1).
func WithSeedRandom(f func() float64) StaticDataOption {
	return func(s *staticDataService) { s.randFloat = f }
}

type staticDataService struct {
	BaseService
	repos      portsrepo.RepositoryProvider
	chartCache portscache.ChartCache
	now        func() time.Time
	randFloat  func() float64
}

// NewStaticDataService returns the seeder for the given repositories. chartCache is
// invalidated whenever chart points are seeded.
func NewStaticDataService(repos portsrepo.RepositoryProvider, chartCache portscache.ChartCache, opts ...StaticDataOption) portssvc.StaticDataService {
	s := &staticDataService{
		repos:      repos,
		chartCache: chartCache,
		now:        time.Now,
		randFloat:  rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// InitializeStaticData fills every empty collection with its defaults. Populated
// collections are left alone, so running it twice is a no-op.
func (s *staticDataService) InitializeStaticData(ctx context.Context) error {
	now := s.now().UTC()

	seeders := map[domain.EntityKind]func(context.Context, time.Time) (int, error){
		domain.KindExchangeRate:      s.seedExchangeRates,
		domain.KindEconomicIndicator: s.seedIndicators,
		domain.KindMarketQuote:       s.seedMarketQuotes,
		domain.KindChartDataPoint:    s.seedChartPoints,
		domain.KindNewsItem:          s.seedNews,
	}

	for _, kind := range domain.AllEntityKinds {
		inserted, err := seeders[kind](ctx, now)
		if err != nil {
			s.LogError(ctx, err, "Failed to seed collection", slog.String("collection", string(kind)))
			return fmt.Errorf("failed to seed %s: %w", kind, err)
		}
		if inserted == 0 {
			s.LogDebug(ctx, "Collection already populated, skipping seed", slog.String("collection", string(kind)))
			continue
		}
		s.LogInfo(ctx, "Seeded collection", slog.String("collection", string(kind)), slog.Int("records", inserted))
	}
	return nil
}

func (s *staticDataService) seedExchangeRates(ctx context.Context, now time.Time) (int, error) {
	existing, err := s.repos.ExchangeRateRepo.ListExchangeRates(ctx)
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	rates := defaultExchangeRates()
	for _, rate := range rates {
		rate.UpdatedAt = now
		if _, err := s.repos.ExchangeRateRepo.CreateExchangeRate(ctx, rate); err != nil {
			return 0, err
		}
	}
	return len(rates), nil
}

func (s *staticDataService) seedIndicators(ctx context.Context, _ time.Time) (int, error) {
	existing, err := s.repos.IndicatorRepo.ListIndicators(ctx)
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	indicators := defaultIndicators()
	for _, ind := range indicators {
		if _, err := s.repos.IndicatorRepo.CreateIndicator(ctx, ind); err != nil {
			return 0, err
		}
	}
	return len(indicators), nil
}

func (s *staticDataService) seedMarketQuotes(ctx context.Context, _ time.Time) (int, error) {
	existing, err := s.repos.MarketQuoteRepo.ListMarketQuotes(ctx)
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	quotes := defaultMarketQuotes()
	for _, q := range quotes {
		if _, err := s.repos.MarketQuoteRepo.CreateMarketQuote(ctx, q); err != nil {
			return 0, err
		}
	}
	return len(quotes), nil
}

// seedChartPoints writes ChartSeedDays daily points per series, oldest first, with
// values in [50,150] rounded to two places. Cached aggregations are dropped once
// anything was written, even if a later insert fails.
func (s *staticDataService) seedChartPoints(ctx context.Context, now time.Time) (inserted int, err error) {
	existing, err := s.repos.ChartRepo.ListChartPoints(ctx, nil)
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	defer func() {
		if inserted == 0 {
			return
		}
		if cacheErr := s.chartCache.InvalidateAll(ctx); cacheErr != nil {
			s.LogWarn(ctx, cacheErr, "Chart cache invalidation after seed failed")
		}
	}()

	for _, series := range ChartSeedSeries {
		for i := ChartSeedDays - 1; i >= 0; i-- {
			point := domain.ChartDataPoint{
				SeriesName: series,
				Time:       today.AddDate(0, 0, -i).Format(domain.ChartDateLayout),
				Value:      decimal.NewFromFloat(s.randFloat()*100 + 50).Round(2),
			}
			if _, err := s.repos.ChartRepo.AddChartPoint(ctx, point); err != nil {
				return inserted, err
			}
			inserted++
		}
	}
	return inserted, nil
}

func (s *staticDataService) seedNews(ctx context.Context, now time.Time) (int, error) {
	existing, err := s.repos.NewsRepo.ListNews(ctx)
	if err != nil || len(existing) > 0 {
		return 0, err
	}
	items := defaultNews(now)
	for _, item := range items {
		if _, err := s.repos.NewsRepo.AddNews(ctx, item); err != nil {
			return 0, err
		}
	}
	return len(items), nil
}
