package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/macro_dashboard_app/internal/apperrors"
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/core/services"
	"github.com/SscSPs/macro_dashboard_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIndicatorService_UpdateIndicator(t *testing.T) {
	ctx := context.Background()
	repo := new(MockIndicatorRepository)
	svc := services.NewIndicatorService(repo)

	category := domain.IndicatorCategory("reserves")
	updated := &domain.EconomicIndicator{ID: "1", Key: "reserves", Label: "Reservas", Value: "US$30.000 Millones", Category: category}
	repo.On("UpdateIndicator", ctx, "reserves", domain.EconomicIndicatorPatch{
		Value:    strPtr("US$30.000 Millones"),
		Category: &category,
	}).Return(updated, nil).Once()

	got, err := svc.UpdateIndicator(ctx, "reserves", dto.UpdateIndicatorRequest{
		Value:    strPtr("US$30.000 Millones"),
		Category: strPtr("reserves"),
	})

	require.NoError(t, err)
	assert.Equal(t, updated, got)
	repo.AssertExpectations(t)
}

func TestIndicatorService_UpdateIndicator_Errors(t *testing.T) {
	ctx := context.Background()
	repo := new(MockIndicatorRepository)
	svc := services.NewIndicatorService(repo)

	_, err := svc.UpdateIndicator(ctx, "tna", dto.UpdateIndicatorRequest{Key: strPtr("")})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	repo.On("UpdateIndicator", ctx, "unknown", mock.Anything).Return(nil, apperrors.NewNotFoundError("indicator 'unknown' not found")).Once()
	_, err = svc.UpdateIndicator(ctx, "unknown", dto.UpdateIndicatorRequest{Value: strPtr("1%")})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	repo.On("UpdateIndicator", ctx, "tna", mock.Anything).Return(nil, apperrors.NewConflictError("indicator 'gdp' already exists")).Once()
	_, err = svc.UpdateIndicator(ctx, "tna", dto.UpdateIndicatorRequest{Key: strPtr("gdp")})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestIndicatorService_ListIndicators(t *testing.T) {
	ctx := context.Background()
	repo := new(MockIndicatorRepository)
	repo.On("ListIndicators", ctx).Return(nil, nil).Once()

	got, err := services.NewIndicatorService(repo).ListIndicators(ctx)

	require.NoError(t, err)
	assert.Equal(t, []domain.EconomicIndicator{}, got)
}
