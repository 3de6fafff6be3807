package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/macro_dashboard_app/internal/apperrors"
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portssvc "github.com/SscSPs/macro_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/macro_dashboard_app/internal/core/services"
	"github.com/SscSPs/macro_dashboard_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRepo *MockExchangeRateRepository
	service  portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockExchangeRateRepository)
	suite.service = services.NewExchangeRateService(suite.mockRepo)
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_Success() {
	ctx := context.Background()
	expected := []domain.ExchangeRate{
		{ID: "1", Type: "official", Buy: decimal.RequireFromString("850"), Sell: decimal.RequireFromString("900"), Trend: domain.TrendStable},
		{ID: "2", Type: "blue", Buy: decimal.RequireFromString("1100"), Sell: decimal.RequireFromString("1150"), Trend: domain.TrendUp},
	}
	suite.mockRepo.On("ListExchangeRates", ctx).Return(expected, nil).Once()

	rates, err := suite.service.ListExchangeRates(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, rates)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListExchangeRates", ctx).Return(nil, nil).Once()

	rates, err := suite.service.ListExchangeRates(ctx)

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.Empty(rates)
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_StorageError() {
	ctx := context.Background()
	storageErr := apperrors.NewStorageError("failed to read data file", assert.AnError)
	suite.mockRepo.On("ListExchangeRates", ctx).Return(nil, storageErr).Once()

	rates, err := suite.service.ListExchangeRates(ctx)

	suite.Nil(rates)
	suite.ErrorIs(err, apperrors.ErrStorageUnavailable)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_DefaultsTrendToStable() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{Type: " mep ", Buy: decPtr("1000.50"), Sell: decPtr("1020.75")}

	suite.mockRepo.On("CreateExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.Type == "mep" && r.Trend == domain.TrendStable &&
			r.Buy.Equal(decimal.RequireFromString("1000.50")) && r.Sell.Equal(decimal.RequireFromString("1020.75"))
	})).Return(&domain.ExchangeRate{ID: "new", Type: "mep", Trend: domain.TrendStable}, nil).Once()

	created, err := suite.service.CreateExchangeRate(ctx, req)

	suite.Require().NoError(err)
	suite.Equal("new", created.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_NegativeBuyRejected() {
	req := dto.CreateExchangeRateRequest{Type: "mep", Buy: decPtr("-1"), Sell: decPtr("10")}

	created, err := suite.service.CreateExchangeRate(context.Background(), req)

	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreateExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreateExchangeRate_DuplicateType() {
	ctx := context.Background()
	req := dto.CreateExchangeRateRequest{Type: "official", Buy: decPtr("1"), Sell: decPtr("2")}
	suite.mockRepo.On("CreateExchangeRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).
		Return(nil, apperrors.NewConflictError("exchange rate type 'official' already exists")).Once()

	_, err := suite.service.CreateExchangeRate(ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate_BuyOnlyPatch() {
	ctx := context.Background()
	req := dto.UpdateExchangeRateRequest{Buy: decPtr("870.00")}
	updated := &domain.ExchangeRate{
		ID: "1", Type: "official",
		Buy: decimal.RequireFromString("870.00"), Sell: decimal.RequireFromString("900.00"),
		Trend: domain.TrendStable, UpdatedAt: time.Now().UTC(),
	}

	suite.mockRepo.On("UpdateExchangeRate", ctx, "official", mock.MatchedBy(func(p domain.ExchangeRatePatch) bool {
		return p.Buy != nil && p.Buy.Equal(decimal.RequireFromString("870")) &&
			p.Sell == nil && p.Trend == nil && p.Type == nil
	})).Return(updated, nil).Once()

	rate, err := suite.service.UpdateExchangeRate(ctx, "official", req)

	suite.Require().NoError(err)
	suite.Equal(updated, rate)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("UpdateExchangeRate", ctx, "crypto", mock.AnythingOfType("domain.ExchangeRatePatch")).
		Return(nil, apperrors.NewNotFoundError("exchange rate 'crypto' not found")).Once()

	rate, err := suite.service.UpdateExchangeRate(ctx, "crypto", dto.UpdateExchangeRateRequest{Buy: decPtr("1")})

	suite.Nil(rate)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExchangeRateServiceTestSuite) TestUpdateExchangeRate_InvalidInput() {
	testCases := []struct {
		name     string
		rateType string
		req      dto.UpdateExchangeRateRequest
	}{
		{"blank path type", "  ", dto.UpdateExchangeRateRequest{}},
		{"blank new type", "official", dto.UpdateExchangeRateRequest{Type: strPtr(" ")}},
		{"negative sell", "official", dto.UpdateExchangeRateRequest{Sell: decPtr("-0.01")}},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			_, err := suite.service.UpdateExchangeRate(context.Background(), tc.rateType, tc.req)
			suite.ErrorIs(err, apperrors.ErrValidation)
		})
	}
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func TestExchangeRateService(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
