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

type MarketQuoteService struct {
	BaseService
	marketQuoteRepo portsrepo.MarketQuoteRepositoryFacade
}

func NewMarketQuoteService(repo portsrepo.MarketQuoteRepositoryFacade) *MarketQuoteService {
	return &MarketQuoteService{marketQuoteRepo: repo}
}

var _ portssvc.MarketQuoteSvcFacade = (*MarketQuoteService)(nil)

func (s *MarketQuoteService) ListMarketQuotes(ctx context.Context) ([]domain.MarketQuote, error) {
	quotes, err := s.marketQuoteRepo.ListMarketQuotes(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list market quotes from repository")
		return nil, fmt.Errorf("failed to list market quotes in service: %w", err)
	}
	if quotes == nil {
		return []domain.MarketQuote{}, nil
	}
	return quotes, nil
}

// UpdateMarketQuote applies a partial update. ChangePercent may be negative, Price may not.
func (s *MarketQuoteService) UpdateMarketQuote(ctx context.Context, symbol string, req dto.UpdateMarketQuoteRequest) (*domain.MarketQuote, error) {
	if strings.TrimSpace(symbol) == "" {
		return nil, apperrors.NewValidationError("symbol must not be empty")
	}
	if req.Symbol != nil && strings.TrimSpace(*req.Symbol) == "" {
		return nil, apperrors.NewValidationError("symbol must not be empty")
	}
	if err := validateNonNegative("price", req.Price); err != nil {
		return nil, err
	}

	updated, err := s.marketQuoteRepo.UpdateMarketQuote(ctx, symbol, req.ToPatch())
	if err != nil {
		s.LogWarn(ctx, err, "Failed to update market quote", slog.String("symbol", symbol))
		return nil, fmt.Errorf("failed to update market quote in service: %w", err)
	}

	s.LogInfo(ctx, "Market quote updated", slog.String("symbol", updated.Symbol))
	return updated, nil
}
