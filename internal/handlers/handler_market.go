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

type marketHandler struct {
	marketQuoteService portssvc.MarketQuoteSvcFacade
}

func newMarketHandler(ms portssvc.MarketQuoteSvcFacade) *marketHandler {
	return &marketHandler{marketQuoteService: ms}
}

func registerMarketRoutes(rg *gin.RouterGroup, marketQuoteService portssvc.MarketQuoteSvcFacade) {
	h := newMarketHandler(marketQuoteService)

	market := rg.Group("/market")
	{
		market.GET("", h.listMarketQuotes)
		market.PUT("/:symbol", h.updateMarketQuote)
	}
}

// listMarketQuotes godoc
// @Summary List market quotes
// @Tags market
// @Produce  json
// @Success 200 {array} dto.MarketQuoteResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve market quotes"
// @Router /market [get]
func (h *marketHandler) listMarketQuotes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	quotes, err := h.marketQuoteService.ListMarketQuotes(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve market quotes")
		return
	}

	c.JSON(http.StatusOK, dto.ToListMarketQuoteResponse(quotes))
}

// updateMarketQuote godoc
// @Summary Update a market quote
// @Tags market
// @Accept  json
// @Produce  json
// @Param   symbol path string true "Quote symbol, e.g. IDA MERVAL"
// @Param   quote body dto.UpdateMarketQuoteRequest true "Fields to change"
// @Success 200 {object} dto.MarketQuoteResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} dto.ErrorResponse "Symbol not found"
// @Failure 409 {object} dto.ErrorResponse "Symbol already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to update market quote"
// @Router /market/{symbol} [put]
func (h *marketHandler) updateMarketQuote(c *gin.Context) {
	symbol := c.Param("symbol")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("symbol", symbol))

	var req dto.UpdateMarketQuoteRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondWithBindError(c, logger, &req, err)
		return
	}

	updated, err := h.marketQuoteService.UpdateMarketQuote(c.Request.Context(), symbol, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update market quote")
		return
	}

	c.JSON(http.StatusOK, dto.ToMarketQuoteResponse(updated))
}
