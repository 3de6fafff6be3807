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

type chartHandler struct {
	chartService portssvc.ChartSvcFacade
}

func newChartHandler(cs portssvc.ChartSvcFacade) *chartHandler {
	return &chartHandler{chartService: cs}
}

func registerChartRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSvcFacade) {
	h := newChartHandler(chartService)

	charts := rg.Group("/charts")
	{
		charts.GET("", h.getChartData)
		charts.POST("", h.addChartPoint)
	}
}

// getChartData godoc
// @Summary Get chart series
// @Description Returns chart points grouped by series name, each series in insertion order
// @Tags charts
// @Produce  json
// @Param   series query string false "Only return this series"
// @Success 200 {object} dto.ChartDataResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve chart data"
// @Router /charts [get]
func (h *chartHandler) getChartData(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var seriesName *string
	if s := c.Query("series"); s != "" {
		seriesName = &s
	}

	series, err := h.chartService.GetChartSeries(c.Request.Context(), seriesName)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve chart data")
		return
	}

	c.JSON(http.StatusOK, dto.ToChartDataResponse(series))
}

// addChartPoint godoc
// @Summary Add a chart data point
// @Tags charts
// @Accept  json
// @Produce  json
// @Param   point body dto.CreateChartPointRequest true "Chart point"
// @Success 201 {object} dto.ChartPointResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 500 {object} dto.ErrorResponse "Failed to add chart point"
// @Router /charts [post]
func (h *chartHandler) addChartPoint(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateChartPointRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondWithBindError(c, logger, &req, err)
		return
	}

	created, err := h.chartService.AddChartPoint(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add chart point")
		return
	}

	logger.Info("Chart point added", slog.String("series", created.SeriesName))
	c.JSON(http.StatusCreated, dto.ToChartPointResponse(created))
}
