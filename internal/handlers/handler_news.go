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

type newsHandler struct {
	newsService portssvc.NewsSvcFacade
}

func newNewsHandler(ns portssvc.NewsSvcFacade) *newsHandler {
	return &newsHandler{newsService: ns}
}

func registerNewsRoutes(rg *gin.RouterGroup, newsService portssvc.NewsSvcFacade) {
	h := newNewsHandler(newsService)

	news := rg.Group("/news")
	{
		news.GET("", h.listNews)
		news.POST("", h.addNews)
	}
}

// listNews godoc
// @Summary List news
// @Description Returns news ordered by publication time, oldest first
// @Tags news
// @Produce  json
// @Success 200 {array} dto.NewsResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve news"
// @Router /news [get]
func (h *newsHandler) listNews(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	items, err := h.newsService.ListNews(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve news")
		return
	}

	c.JSON(http.StatusOK, dto.ToListNewsResponse(items))
}

// addNews godoc
// @Summary Add a news item
// @Description publishedAt defaults to the current time
// @Tags news
// @Accept  json
// @Produce  json
// @Param   news body dto.CreateNewsRequest true "News item"
// @Success 201 {object} dto.NewsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 500 {object} dto.ErrorResponse "Failed to add news"
// @Router /news [post]
func (h *newsHandler) addNews(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateNewsRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		respondWithBindError(c, logger, &req, err)
		return
	}

	created, err := h.newsService.AddNews(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add news")
		return
	}

	logger.Info("News item added", slog.String("news_id", created.ID))
	c.JSON(http.StatusCreated, dto.ToNewsResponse(created))
}
