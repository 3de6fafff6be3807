package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/macro_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/macro_dashboard_app/internal/dto"
	"github.com/SscSPs/macro_dashboard_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.PUT("/:type", h.updateExchangeRate)
	}
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Returns every dollar quote in storage order
// @Tags exchange rates
// @Produce  json
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve exchange rates"
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve exchange rates")
		return
	}

	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Adds a dollar quote with a unique type. Trend defaults to "stable".
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 409 {object} dto.ErrorResponse "Exchange rate type already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to create exchange rate"
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondWithBindError(c, logger, &req, err)
		return
	}

	logger.Info("Received request to create exchange rate", slog.String("type", req.Type))

	created, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create exchange rate")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(created))
}

// updateExchangeRate godoc
// @Summary Update an exchange rate
// @Description Applies a partial update to the rate identified by type and refreshes updatedAt
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   type path string true "Rate type, e.g. official or blue"
// @Param   rate body dto.UpdateExchangeRateRequest true "Fields to change"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} dto.ErrorResponse "Rate not found"
// @Failure 409 {object} dto.ErrorResponse "Exchange rate type already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to update exchange rate"
// @Router /exchange-rates/{type} [put]
func (h *exchangeRateHandler) updateExchangeRate(c *gin.Context) {
	rateType := c.Param("type")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("type", rateType))

	var req dto.UpdateExchangeRateRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondWithBindError(c, logger, &req, err)
		return
	}

	updated, err := h.exchangeRateService.UpdateExchangeRate(c.Request.Context(), rateType, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update exchange rate")
		return
	}

	logger.Info("Exchange rate updated successfully")
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(updated))
}
