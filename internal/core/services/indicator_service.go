package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/macro_dashboard_app/internal/apperrors"
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/macro_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/macro_dashboard_app/internal/dto"
)

type IndicatorService struct {
	BaseService
	indicatorRepo portsrepo.IndicatorRepositoryFacade
}

func NewIndicatorService(repo portsrepo.IndicatorRepositoryFacade) *IndicatorService {
	return &IndicatorService{indicatorRepo: repo}
}

var _ portssvc.IndicatorSvcFacade = (*IndicatorService)(nil)

func (s *IndicatorService) ListIndicators(ctx context.Context) ([]domain.EconomicIndicator, error) {
	indicators, err := s.indicatorRepo.ListIndicators(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list indicators from repository")
		return nil, fmt.Errorf("failed to list indicators in service: %w", err)
	}
	if indicators == nil {
		return []domain.EconomicIndicator{}, nil
	}
	return indicators, nil
}

// UpdateIndicator merges req into the indicator identified by key. Value is display
// text and is stored as given.
func (s *IndicatorService) UpdateIndicator(ctx context.Context, key string, req dto.UpdateIndicatorRequest) (*domain.EconomicIndicator, error) {
	if strings.TrimSpace(key) == "" {
		return nil, apperrors.NewValidationError("key must not be empty")
	}
	if req.Key != nil && strings.TrimSpace(*req.Key) == "" {
		return nil, apperrors.NewValidationError("key must not be empty")
	}

	updated, err := s.indicatorRepo.UpdateIndicator(ctx, key, req.ToPatch())
	if err != nil {
		s.LogWarn(ctx, err, "Failed to update indicator", slog.String("key", key))
		return nil, fmt.Errorf("failed to update indicator in service: %w", err)
	}

	s.LogInfo(ctx, "Indicator updated", slog.String("key", updated.Key))
	return updated, nil
}
