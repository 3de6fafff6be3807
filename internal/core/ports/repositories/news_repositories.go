package repositories

import (
	"context"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
)

// NewsReader defines read operations for news items
type NewsReader interface {
	// ListNews returns items ordered by PublishedAt ascending.
	ListNews(ctx context.Context) ([]domain.NewsItem, error)
}

// NewsWriter defines write operations for news items
type NewsWriter interface {
	AddNews(ctx context.Context, item domain.NewsItem) (*domain.NewsItem, error)
}

// NewsRepositoryFacade combines all news-related repository interfaces
type NewsRepositoryFacade interface {
	NewsReader
	NewsWriter
}
