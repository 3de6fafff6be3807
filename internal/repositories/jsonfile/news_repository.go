package jsonfile

import (
	"context"
	"sort"

	"github.com/SscSPs/macro_dashboard_app/internal/core/domain"
	portsrepo "github.com/SscSPs/macro_dashboard_app/internal/core/ports/repositories"
	"github.com/SscSPs/macro_dashboard_app/internal/utils/mapping"
	"github.com/google/uuid"
)

type newsRepository struct {
	store *Store
}

var _ portsrepo.NewsRepositoryFacade = (*newsRepository)(nil)

// ListNews returns items by publication time; ties keep file order.
func (r *newsRepository) ListNews(ctx context.Context) ([]domain.NewsItem, error) {
	var items []domain.NewsItem
	err := r.store.view(ctx, func(doc *Document) error {
		items = mapping.ToDomainNewsSlice(doc.News)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.Before(items[j].PublishedAt)
	})
	return items, nil
}

func (r *newsRepository) AddNews(ctx context.Context, item domain.NewsItem) (*domain.NewsItem, error) {
	err := r.store.update(ctx, func(doc *Document) error {
		if item.ID == "" {
			item.ID = uuid.NewString()
		}
		if item.PublishedAt.IsZero() {
			item.PublishedAt = r.store.now().UTC()
		}
		doc.News = append(doc.News, mapping.ToModelNewsItem(item))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}
