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
	"github.com/shopspring/decimal"
)

// ExchangeRateService provides business logic for dollar quotes.
type ExchangeRateService struct {
	BaseService
	exchangeRateRepo portsrepo.ExchangeRateRepositoryFacade
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(repo portsrepo.ExchangeRateRepositoryFacade) *ExchangeRateService {
	return &ExchangeRateService{exchangeRateRepo: repo}
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

func (s *ExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	rates, err := s.exchangeRateRepo.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates from repository")
		return nil, fmt.Errorf("failed to list exchange rates in service: %w", err)
	}
	if rates == nil {
		return []domain.ExchangeRate{}, nil
	}
	return rates, nil
}

// CreateExchangeRate persists a new rate. Trend defaults to stable.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRate, error) {
	rateType := strings.TrimSpace(req.Type)
	if rateType == "" {
		return nil, apperrors.NewValidationError("type must not be empty")
	}
	if err := validateNonNegative("buy", req.Buy); err != nil {
		return nil, err
	}
	if err := validateNonNegative("sell", req.Sell); err != nil {
		return nil, err
	}

	trend := domain.TrendStable
	if req.Trend != "" {
		trend = domain.Trend(req.Trend)
	}

	rate := domain.ExchangeRate{
		Type:  rateType,
		Buy:   *req.Buy,
		Sell:  *req.Sell,
		Trend: trend,
	}

	created, err := s.exchangeRateRepo.CreateExchangeRate(ctx, rate)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to create exchange rate", slog.String("type", rateType))
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate created", slog.String("type", created.Type), slog.String("rate_id", created.ID))
	return created, nil
}

// UpdateExchangeRate applies a partial update and refreshes updatedAt.
func (s *ExchangeRateService) UpdateExchangeRate(ctx context.Context, rateType string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRate, error) {
	if strings.TrimSpace(rateType) == "" {
		return nil, apperrors.NewValidationError("type must not be empty")
	}
	if req.Type != nil && strings.TrimSpace(*req.Type) == "" {
		return nil, apperrors.NewValidationError("type must not be empty")
	}
	if err := validateNonNegative("buy", req.Buy); err != nil {
		return nil, err
	}
	if err := validateNonNegative("sell", req.Sell); err != nil {
		return nil, err
	}

	updated, err := s.exchangeRateRepo.UpdateExchangeRate(ctx, rateType, req.ToPatch())
	if err != nil {
		s.LogWarn(ctx, err, "Failed to update exchange rate", slog.String("type", rateType))
		return nil, fmt.Errorf("failed to update exchange rate in service: %w", err)
	}

	s.LogInfo(ctx, "Exchange rate updated", slog.String("type", updated.Type))
	return updated, nil
}

// validateNonNegative rejects negative prices. A nil value means absent and passes.
func validateNonNegative(field string, v *decimal.Decimal) error {
	if v != nil && v.IsNegative() {
		return apperrors.NewValidationError(field + " must not be negative")
	}
	return nil
}
