package repositories

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
)

// IndicatorReader defines read operations for economic indicators
type IndicatorReader interface {
	ListIndicators(ctx context.Context) ([]domain.EconomicIndicator, error)
}

// IndicatorWriter defines write operations for economic indicators
type IndicatorWriter interface {
	// CreateIndicator appends an indicator. A taken Key yields apperrors.ErrDuplicate.
	CreateIndicator(ctx context.Context, indicator domain.EconomicIndicator) (*domain.EconomicIndicator, error)

	// UpdateIndicator merges patch into the indicator identified by key.
	UpdateIndicator(ctx context.Context, key string, patch domain.EconomicIndicatorPatch) (*domain.EconomicIndicator, error)
}

// IndicatorRepositoryFacade combines all indicator-related repository interfaces
type IndicatorRepositoryFacade interface {
	IndicatorReader
	IndicatorWriter
}
