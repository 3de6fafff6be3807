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

type indicatorHandler struct {
	indicatorService portssvc.IndicatorSvcFacade
}

func newIndicatorHandler(is portssvc.IndicatorSvcFacade) *indicatorHandler {
	return &indicatorHandler{indicatorService: is}
}

func registerIndicatorRoutes(rg *gin.RouterGroup, indicatorService portssvc.IndicatorSvcFacade) {
	h := newIndicatorHandler(indicatorService)

	indicators := rg.Group("/indicators")
	{
		indicators.GET("", h.listIndicators)
		indicators.PUT("/:key", h.updateIndicator)
	}
}

// listIndicators godoc
// @Summary List economic indicators
// @Tags indicators
// @Produce  json
// @Success 200 {array} dto.IndicatorResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve indicators"
// @Router /indicators [get]
func (h *indicatorHandler) listIndicators(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	indicators, err := h.indicatorService.ListIndicators(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve indicators")
		return
	}

	c.JSON(http.StatusOK, dto.ToListIndicatorResponse(indicators))
}

// updateIndicator godoc
// @Summary Update an economic indicator
// @Description Applies a partial update. The value is display text and is stored as given.
// @Tags indicators
// @Accept  json
// @Produce  json
// @Param   key path string true "Indicator key, e.g. reserves"
// @Param   indicator body dto.UpdateIndicatorRequest true "Fields to change"
// @Success 200 {object} dto.IndicatorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} dto.ErrorResponse "Indicator not found"
// @Failure 409 {object} dto.ErrorResponse "Indicator key already exists"
// @Failure 500 {object} dto.ErrorResponse "Failed to update indicator"
// @Router /indicators/{key} [put]
func (h *indicatorHandler) updateIndicator(c *gin.Context) {
	key := c.Param("key")
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("key", key))

	var req dto.UpdateIndicatorRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondWithBindError(c, logger, &req, err)
		return
	}

	updated, err := h.indicatorService.UpdateIndicator(c.Request.Context(), key, req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update indicator")
		return
	}

	c.JSON(http.StatusOK, dto.ToIndicatorResponse(updated))
}
