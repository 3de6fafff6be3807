package services

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	"github.com/SscSPs/macro_dashboard_app/internal/dto"
)

type NewsReaderSvc interface {
	// ListNews returns news ordered by publication time, oldest first.
	ListNews(ctx context.Context) ([]domain.NewsItem, error)
}

type NewsWriterSvc interface {
	AddNews(ctx context.Context, req dto.CreateNewsRequest) (*domain.NewsItem, error)
}

// NewsSvcFacade combines all news-related service interfaces
type NewsSvcFacade interface {
	NewsReaderSvc
	NewsWriterSvc
}
