package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/macro_dashboard_app/internal/apperrors"
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portscache "github.com/SscSPs/macro_dashboard_app/internal/core/ports/cache"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/macro_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/macro_dashboard_app/internal/dto"
	"github.com/SscSPs/macro_dashboard_app/internal/utils/aggregation"
)

// ChartService reads chart points and groups them by series. Aggregated results are
// cached per filter; the store stays the source of truth.
type ChartService struct {
	BaseService
	chartRepo  portsrepo.ChartRepositoryFacade
	chartCache portscache.ChartCache
}

// NewChartService creates a ChartService. chartCache must not be nil; callers without
// Redis pass a no-op cache.
func NewChartService(repo portsrepo.ChartRepositoryFacade, chartCache portscache.ChartCache) *ChartService {
	return &ChartService{chartRepo: repo, chartCache: chartCache}
}

var _ portssvc.ChartSvcFacade = (*ChartService)(nil)

func (s *ChartService) GetChartSeries(ctx context.Context, seriesName *string) (domain.ChartSeries, error) {
	// The generation is read before listing so a concurrent insert can only make
	// this write unreachable, never stale.
	useCache := true
	gen, err := s.chartCache.Generation(ctx)
	if err != nil {
		s.LogWarn(ctx, err, "Chart cache generation read failed")
		useCache = false
	}
	key := portscache.ChartKey(gen, seriesName)

	if useCache {
		cached, ok, err := s.chartCache.Get(ctx, key)
		if err != nil {
			s.LogWarn(ctx, err, "Chart cache read failed", slog.String("key", key))
		} else if ok {
			s.LogDebug(ctx, "Chart cache hit", slog.String("key", key))
			return cached, nil
		}
	}

	points, err := s.chartRepo.ListChartPoints(ctx, seriesName)
	if err != nil {
		s.LogError(ctx, err, "Failed to list chart points from repository")
		return nil, fmt.Errorf("failed to list chart points in service: %w", err)
	}

	series := aggregation.AggregateChartSeries(points)
	s.LogDebug(ctx, "Aggregated chart series",
		slog.Int("points", len(points)),
		slog.Any("series", aggregation.SeriesNames(points)),
	)

	if useCache {
		if err := s.chartCache.Set(ctx, key, series); err != nil {
			s.LogWarn(ctx, err, "Chart cache write failed", slog.String("key", key))
		}
	}
	return series, nil
}

// AddChartPoint appends a point and drops every cached aggregation.
func (s *ChartService) AddChartPoint(ctx context.Context, req dto.CreateChartPointRequest) (*domain.ChartDataPoint, error) {
	seriesName := strings.TrimSpace(req.SeriesName)
	if seriesName == "" {
		return nil, apperrors.NewValidationError("seriesName must not be empty")
	}
	if _, err := time.Parse(domain.ChartDateLayout, req.Time); err != nil {
		return nil, apperrors.NewValidationError("time must be a date in YYYY-MM-DD format")
	}
	if req.Value == nil {
		return nil, apperrors.NewValidationError("value is required")
	}

	created, err := s.chartRepo.AddChartPoint(ctx, domain.ChartDataPoint{
		SeriesName: seriesName,
		Time:       req.Time,
		Value:      *req.Value,
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add chart point", slog.String("series", seriesName))
		return nil, fmt.Errorf("failed to add chart point in service: %w", err)
	}

	if err := s.chartCache.InvalidateAll(ctx); err != nil {
		s.LogWarn(ctx, err, "Chart cache invalidation failed")
	}

	s.LogInfo(ctx, "Chart point added", slog.String("series", created.SeriesName), slog.String("time", created.Time))
	return created, nil
}
