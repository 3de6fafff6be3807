package services

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/dto"
)

type IndicatorReaderSvc interface {
	ListIndicators(ctx context.Context) ([]domain.EconomicIndicator, error)
}

type IndicatorWriterSvc interface {
	UpdateIndicator(ctx context.Context, key string, req dto.UpdateIndicatorRequest) (*domain.EconomicIndicator, error)
}

// IndicatorSvcFacade combines all indicator-related service interfaces
type IndicatorSvcFacade interface {
	IndicatorReaderSvc
	IndicatorWriterSvc
}
