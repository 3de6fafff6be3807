package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/macro_dashboard_app/internal/apperrors"
	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/macro_dashboard_app/internal/core/ports/services"
	"github.com/SscSPs/macro_dashboard_app/internal/dto"
)

type NewsService struct {
	BaseService
	newsRepo portsrepo.NewsRepositoryFacade
	now      func() time.Time
}

func NewNewsService(repo portsrepo.NewsRepositoryFacade) *NewsService {
	return &NewsService{newsRepo: repo, now: time.Now}
}

var _ portssvc.NewsSvcFacade = (*NewsService)(nil)

func (s *NewsService) ListNews(ctx context.Context) ([]domain.NewsItem, error) {
	items, err := s.newsRepo.ListNews(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list news from repository")
		return nil, fmt.Errorf("failed to list news in service: %w", err)
	}
	if items == nil {
		return []domain.NewsItem{}, nil
	}
	return items, nil
}

// AddNews stores a headline. PublishedAt defaults to the current time in UTC.
func (s *NewsService) AddNews(ctx context.Context, req dto.CreateNewsRequest) (*domain.NewsItem, error) {
	item := domain.NewsItem{
		Title:   strings.TrimSpace(req.Title),
		Content: req.Content,
		Source:  strings.TrimSpace(req.Source),
	}
	if item.Title == "" {
		return nil, apperrors.NewValidationError("title must not be empty")
	}
	if item.Source == "" {
		return nil, apperrors.NewValidationError("source must not be empty")
	}
	if req.PublishedAt != nil {
		item.PublishedAt = req.PublishedAt.UTC()
	} else {
		item.PublishedAt = s.now().UTC()
	}

	created, err := s.newsRepo.AddNews(ctx, item)
	if err != nil {
		s.LogError(ctx, err, "Failed to add news item")
		return nil, fmt.Errorf("failed to add news in service: %w", err)
	}

	s.LogInfo(ctx, "News item added", slog.String("news_id", created.ID), slog.String("source", created.Source))
	return created, nil
}
